// Package alfresco implements the tag applicator against an Alfresco
// content repository.
//
// The package talks to the Alfresco REST API v1 node tags collection:
//
//	GET  {base}/api/-default-/public/alfresco/versions/1/nodes/{id}/tags
//	POST {base}/api/-default-/public/alfresco/versions/1/nodes/{id}/tags
//
// The POST endpoint accepts either a single body {"tag": "x"} or a JSON
// array of such objects for bulk creation. Alfresco answers 409 Conflict
// when a tag already exists on the node; this package treats 409 as the
// idempotency signal ("desired state already achieved"), never as an error.
//
// # Architecture
//
// Two interchangeable strategies implement [driven.TagApplicator]:
//
//   - PerTagApplicator: one POST per requested tag, sequential, in input
//     order. A non-2xx/non-409 response aborts the remaining tags.
//   - BulkApplicator: one GET of the node's existing tags, a set difference
//     against the request, then at most one POST carrying only the missing
//     tags. A 409 on the write covers the race where another actor added
//     the same tags between read and write.
//
// A shared Client handles authentication, timeouts, and optional proactive
// rate limiting.
//
// # Authentication
//
// Two authentication methods are supported:
//
//   - Basic: username/password sent as HTTP Basic credentials, the native
//     Alfresco scheme.
//   - Bearer: a static token for repositories fronted by an SSO gateway,
//     attached via an oauth2 static token source.
//
// Credentials are fetched from the provider on demand so rotated passwords
// are picked up without restarting a long-running worker.
//
// # Error Handling
//
// Failures surface unchanged to the caller: a non-2xx/non-409 status becomes
// an [*APIError] carrying the status code, response message and URL; network
// and timeout errors propagate wrapped with the failing operation. There are
// no retries and no backoff here - redelivery is the queue layer's job.
//
// # Limitations
//
//   - Tags are created, never removed (no untag operation).
//   - No request batching limit is enforced on bulk writes; the repository's
//     own limits apply.
package alfresco
