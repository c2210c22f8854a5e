package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driving"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// Ensure TaggingService implements the interface.
var _ driving.TaggingService = (*TaggingService)(nil)

// TaggingService orchestrates tag application: normalize the request, apply
// through the configured strategy, journal the outcome.
type TaggingService struct {
	applicator driven.TagApplicator
	journal    driven.TaskJournal // optional, may be nil
	now        func() time.Time
}

// NewTaggingService creates the service. journal may be nil; the worker then
// keeps no local history.
func NewTaggingService(applicator driven.TagApplicator, journal driven.TaskJournal) *TaggingService {
	return &TaggingService{
		applicator: applicator,
		journal:    journal,
		now:        time.Now,
	}
}

// Process applies one tag task. The returned record describes the outcome
// even when err is non-nil. Apply errors propagate unchanged; journal
// failures are logged and swallowed so observability cannot fail a task.
func (s *TaggingService) Process(ctx context.Context, task domain.TagTask) (domain.TaskRecord, error) {
	rec := domain.TaskRecord{
		TaskID:  task.ID,
		NodeRef: task.NodeRef,
	}

	tags := domain.NormalizeTags(task.Tags)
	rec.Requested = len(tags)

	if task.NodeRef == "" && len(tags) > 0 {
		rec.Outcome = domain.OutcomeFailed
		rec.Error = domain.ErrInvalidInput.Error()
		rec.ProcessedAt = s.now()
		s.record(ctx, rec)
		return rec, fmt.Errorf("%w: empty node reference", domain.ErrInvalidInput)
	}

	if len(tags) == 0 {
		rec.Outcome = domain.OutcomeNoop
		rec.ProcessedAt = s.now()
		s.record(ctx, rec)
		return rec, nil
	}

	err := s.applicator.ApplyTags(ctx, task.NodeRef, tags)
	rec.ProcessedAt = s.now()
	if err != nil {
		rec.Outcome = domain.OutcomeFailed
		rec.Error = err.Error()
		s.record(ctx, rec)
		return rec, err
	}

	rec.Outcome = domain.OutcomeApplied
	s.record(ctx, rec)
	return rec, nil
}

// ListTags returns the node's current tags.
func (s *TaggingService) ListTags(ctx context.Context, ref domain.NodeRef) ([]string, error) {
	return s.applicator.ListTags(ctx, ref)
}

// History returns the most recent journalled records, newest first.
func (s *TaggingService) History(ctx context.Context, limit int) ([]domain.TaskRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.Recent(ctx, limit)
}

// record journals an outcome, best effort.
func (s *TaggingService) record(ctx context.Context, rec domain.TaskRecord) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, rec); err != nil {
		logger.Warn("journal write failed: task=%s: %v", rec.TaskID, err)
	}
}
