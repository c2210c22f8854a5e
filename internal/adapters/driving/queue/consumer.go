// Package queue drives the tagging service from a NATS JetStream stream.
//
// Tasks arrive as JSON-encoded domain.TagTask messages. The consumer maps
// each task's outcome onto broker acknowledgements: success (including
// absorbed 409s and no-ops) acks, a surfaced error naks so the broker
// redelivers, and an undecodable payload terminates so a poison message
// cannot loop forever. Retry and backoff policy live entirely in the broker;
// the consumer itself never retries in-process.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driving"
	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// Defaults for the consumer configuration.
const (
	DefaultStream  = "TAGTASKS"
	DefaultSubject = "tagtasks.apply"
	DefaultDurable = "tagsmith-worker"
)

// Config holds the queue consumer configuration.
type Config struct {
	// URL is the NATS server URL. Empty selects nats.DefaultURL.
	URL string
	// Stream is the JetStream stream name.
	Stream string
	// Subject is the subject tasks are published on.
	Subject string
	// Durable is the durable consumer name, so redeliveries survive
	// worker restarts.
	Durable string
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.URL == "" {
		c.URL = nats.DefaultURL
	}
	if c.Stream == "" {
		c.Stream = DefaultStream
	}
	if c.Subject == "" {
		c.Subject = DefaultSubject
	}
	if c.Durable == "" {
		c.Durable = DefaultDurable
	}
	return c
}

// Consumer consumes tag tasks from JetStream and drives the tagging service.
type Consumer struct {
	cfg Config
	svc driving.TaggingService
}

// NewConsumer creates a queue consumer for the tagging service.
func NewConsumer(cfg Config, svc driving.TaggingService) *Consumer {
	return &Consumer{cfg: cfg.withDefaults(), svc: svc}
}

// Run connects to NATS, ensures the stream and durable consumer exist, and
// consumes tasks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	nc, err := nats.Connect(c.cfg.URL,
		nats.Name("tagsmith-worker"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS at %s: %w", c.cfg.URL, err)
	}
	defer nc.Drain()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("initialising JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     c.cfg.Stream,
		Subjects: []string{subjectRoot(c.cfg.Subject) + ".>"},
	})
	if err != nil {
		return fmt.Errorf("ensuring stream %s: %w", c.cfg.Stream, err)
	}

	consumer, err := js.CreateOrUpdateConsumer(ctx, c.cfg.Stream, jetstream.ConsumerConfig{
		Durable:       c.cfg.Durable,
		FilterSubject: c.cfg.Subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("ensuring consumer %s: %w", c.cfg.Durable, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		c.handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("starting consumer: %w", err)
	}
	defer consumeCtx.Stop()

	logger.Info("worker consuming: stream=%s subject=%s durable=%s",
		c.cfg.Stream, c.cfg.Subject, c.cfg.Durable)

	<-ctx.Done()
	return ctx.Err()
}

// handle processes one message and maps the outcome to an acknowledgement.
func (c *Consumer) handle(ctx context.Context, msg jetstream.Msg) {
	task, err := decodeTask(msg.Data())
	if err != nil {
		// A payload that cannot decode will never succeed; drop it
		// instead of letting the broker redeliver it forever.
		logger.Error("dropping undecodable task: %v", err)
		if termErr := msg.Term(); termErr != nil {
			logger.Warn("terminate failed: %v", termErr)
		}
		return
	}

	rec, err := c.svc.Process(ctx, task)
	if err != nil {
		logger.Error("task failed: id=%s node=%s: %v", task.ID, task.NodeRef, err)
		if nakErr := msg.Nak(); nakErr != nil {
			logger.Warn("nak failed: task=%s: %v", task.ID, nakErr)
		}
		return
	}

	logger.Debug("task done: id=%s outcome=%s requested=%d", task.ID, rec.Outcome, rec.Requested)
	if ackErr := msg.Ack(); ackErr != nil {
		logger.Warn("ack failed: task=%s: %v", task.ID, ackErr)
	}
}

// decodeTask parses and validates one task payload.
func decodeTask(data []byte) (domain.TagTask, error) {
	var task domain.TagTask
	if err := json.Unmarshal(data, &task); err != nil {
		return domain.TagTask{}, fmt.Errorf("decoding task: %w", err)
	}
	if task.NodeRef == "" {
		return domain.TagTask{}, fmt.Errorf("%w: task has no node_ref", domain.ErrInvalidInput)
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now()
	}
	return task, nil
}

// subjectRoot returns the first token of a subject, used to scope the
// stream's subject space.
func subjectRoot(subject string) string {
	if i := strings.Index(subject, "."); i > 0 {
		return subject[:i]
	}
	return subject
}
