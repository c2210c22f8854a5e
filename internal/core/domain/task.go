package domain

import "time"

// TaskOutcome classifies how a tag task finished.
type TaskOutcome string

const (
	// OutcomeApplied means at least one tag was written to the node.
	OutcomeApplied TaskOutcome = "applied"
	// OutcomeNoop means the request was empty after normalization and no
	// network call was issued.
	OutcomeNoop TaskOutcome = "noop"
	// OutcomeFailed means the apply surfaced an error.
	OutcomeFailed TaskOutcome = "failed"
)

// TagTask is a request to ensure a set of tags exists on one node.
// Tasks arrive from the queue as JSON or are minted locally by the CLI.
type TagTask struct {
	// ID is the unique task identifier (UUID).
	ID string `json:"id"`
	// NodeRef identifies the target document.
	NodeRef NodeRef `json:"node_ref"`
	// Tags are the requested labels, in submission order.
	Tags []string `json:"tags"`
	// EnqueuedAt is when the task was published, if the producer set it.
	EnqueuedAt time.Time `json:"enqueued_at,omitempty"`
}

// TaskRecord is the journalled outcome of one processed task.
type TaskRecord struct {
	// TaskID is the processed task's identifier.
	TaskID string
	// NodeRef is the target document reference.
	NodeRef NodeRef
	// Requested is the number of tags in the task after normalization.
	Requested int
	// Outcome classifies the result.
	Outcome TaskOutcome
	// Error holds the surfaced error text when Outcome is OutcomeFailed.
	Error string
	// ProcessedAt is when processing finished.
	ProcessedAt time.Time
}
