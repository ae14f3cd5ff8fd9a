package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	js "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/messaging"
)

const (
	// DispatchEmailRequestedSubject is appended to the subject prefix for email dispatch requests
	DispatchEmailRequestedSubject = "dispatch.email.requested"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// CreateStream makes the publisher create or update the stream on startup
	CreateStream bool
	// RetryMaxElapsed bounds the total time spent retrying one publish
	RetryMaxElapsed time.Duration
}

type publisher struct {
	nc              adapter.NatsConn
	js              adapter.JetStream
	subjectPrefix   string
	retryMaxElapsed time.Duration
	json            adapter.JSON
	jcs             adapter.JCS
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, stream, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = "sharing"
	}

	if cfg.CreateStream {
		_, err := stream.CreateOrUpdateStream(ctx, js.StreamConfig{
			Name:     cfg.StreamName,
			Subjects: []string{prefix + ".>"},
			// Duplicate window matches the message ID derivation: identical payloads within
			// the window are stored once
			Duplicates: 2 * time.Minute,
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
		}
	}

	retryMaxElapsed := cfg.RetryMaxElapsed
	if retryMaxElapsed == 0 {
		retryMaxElapsed = 10 * time.Second
	}

	return &publisher{
		nc:              nc,
		js:              stream,
		subjectPrefix:   prefix,
		retryMaxElapsed: retryMaxElapsed,
		json:            jsonAdapter,
		jcs:             jcsAdapter,
	}, nil
}

// PublishLinkEvent publishes a link event to NATS JetStream
func (p *publisher) PublishLinkEvent(ctx context.Context, msg *messaging.LinkEventMessage) error {
	logger.DebugCtx(ctx, "Publishing link event",
		zap.String("link_id", msg.Event.LinkID),
		zap.String("event_type", string(msg.Event.EventType)))

	return p.publish(ctx, p.eventSubject(msg), msg)
}

// PublishDispatchRequest publishes an email dispatch request to NATS JetStream
func (p *publisher) PublishDispatchRequest(ctx context.Context, msg *messaging.DispatchRequestMessage) error {
	logger.DebugCtx(ctx, "Publishing dispatch request", zap.String("link_id", msg.LinkID))

	return p.publish(ctx, fmt.Sprintf("%s.%s", p.subjectPrefix, DispatchEmailRequestedSubject), msg)
}

// publish marshals the payload and publishes it with a message ID derived from its
// canonical form, retrying transient failures with exponential backoff
func (p *publisher) publish(ctx context.Context, subject string, payload any) error {
	data, err := p.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msgID, err := adapter.CanonicalDigest(p.jcs, data)
	if err != nil {
		return err
	}

	operation := func() error {
		_, err := p.js.Publish(ctx, subject, data, js.WithMsgID(msgID))
		if err != nil {
			return fmt.Errorf("failed to publish to %s: %w", subject, err)
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = p.retryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Publish failed, retrying",
			zap.Error(err),
			zap.String("subject", subject),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("publish failed after %d retries: %w", attemptCount, err)
	}

	return nil
}

// eventSubject constructs the NATS subject for a link event
// Format: {prefix}.events.{link_type}.{event_type}, e.g. sharing.events.public.clicked
func (p *publisher) eventSubject(msg *messaging.LinkEventMessage) string {
	return fmt.Sprintf("%s.events.%s.%s", p.subjectPrefix, msg.LinkType, msg.Event.EventType)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
