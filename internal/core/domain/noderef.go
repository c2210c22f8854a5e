package domain

import "strings"

// NodeRef is an opaque reference to a document in the content repository,
// formatted as "scheme://store/uuid" (e.g. "workspace://SpacesStore/1234-5678").
// Only the trailing segment is meaningful to Tagsmith; the rest is supplied
// and interpreted by the repository.
type NodeRef string

// ID returns the node id: the final "/"-delimited segment of the reference.
//
// A reference with no "/" separator is returned whole. The upstream service
// behaved this way and callers rely on it for ad-hoc invocations that pass a
// bare node id instead of a full reference, so it is deliberate behaviour,
// not an error path.
func (r NodeRef) ID() string {
	s := string(r)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// String returns the full reference string.
func (r NodeRef) String() string {
	return string(r)
}
