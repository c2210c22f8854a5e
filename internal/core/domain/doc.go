// Package domain defines the core business entities for Tagsmith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - NodeRef: An opaque reference to a document in the content repository
//   - TagTask: A request to apply tags to one node
//   - TaskRecord: The journalled outcome of a processed task
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
