package eventlog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/ledger"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/messaging"
	"github.com/traittune/sharing/internal/metrics"
	"github.com/traittune/sharing/internal/store"
)

// LogEventInput describes an interaction to record against a link
type LogEventInput struct {
	LinkID          string
	EventType       domain.EventType
	RecipientUserID *string
	IPAddress       *string
	UserAgent       *string
	Metadata        domain.Metadata
}

// Log is the append-only record of interactions against links
//
//go:generate mockgen -source=eventlog.go -destination=../mocks/eventlog.go -package=mocks -mock_names=Log=MockEventLog
type Log interface {
	// LogEvent appends an event to a link's log and applies the referral bonus rule.
	// Returns a NotFoundError when the link does not exist.
	LogEvent(ctx context.Context, input LogEventInput) (*domain.LinkEvent, error)
	// GetEventsForLink returns the link's events, oldest first
	GetEventsForLink(ctx context.Context, linkID string) ([]domain.LinkEvent, error)
}

// Config holds event log settings
type Config struct {
	// PublicReferralBonus is the number of tokens credited to a public link's sharer
	// when a recipient completes the test through the link
	PublicReferralBonus int64
}

type eventLog struct {
	config    Config
	links     store.LinkStore
	events    store.EventStore
	ledger    ledger.Ledger
	publisher messaging.Publisher
	clock     adapter.Clock
	ids       adapter.IDGenerator
	locks     *store.KeyedMutex
}

// New creates an event log
func New(
	config Config,
	links store.LinkStore,
	events store.EventStore,
	ledger ledger.Ledger,
	publisher messaging.Publisher,
	clock adapter.Clock,
	ids adapter.IDGenerator,
) Log {
	if config.PublicReferralBonus <= 0 {
		config.PublicReferralBonus = domain.DEFAULT_PUBLIC_REFERRAL_BONUS
	}

	return &eventLog{
		config:    config,
		links:     links,
		events:    events,
		ledger:    ledger,
		publisher: publisher,
		clock:     clock,
		ids:       ids,
		locks:     store.NewKeyedMutex(),
	}
}

// ReferralIdempotencyKey identifies the referral bonus earned by one recipient on one link
func ReferralIdempotencyKey(linkID, recipientUserID string) string {
	return fmt.Sprintf("%s:%s:%s", domain.ReasonPublicReferralBonus, linkID, recipientUserID)
}

// LogEvent appends an event to a link's log
func (l *eventLog) LogEvent(ctx context.Context, input LogEventInput) (*domain.LinkEvent, error) {
	if strings.TrimSpace(input.LinkID) == "" {
		return nil, domain.NewValidationError("link_id", "is required")
	}
	if !input.EventType.Valid() {
		return nil, domain.NewValidationError("event_type", fmt.Sprintf("unknown event type %q", input.EventType))
	}

	link, err := l.links.GetLinkByID(ctx, input.LinkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	if link == nil {
		return nil, domain.NewNotFoundError("link", input.LinkID)
	}

	event, err := l.append(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.EventsLogged.WithLabelValues(string(event.EventType)).Inc()
	logger.InfoCtx(ctx, "Link event logged",
		zap.String("link_id", event.LinkID),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.EventType)),
	)

	// No lock is held from here on
	l.applyReferralBonus(ctx, link, event)
	l.publish(ctx, link, event)

	return event, nil
}

// append assigns the timestamp and ID and persists the event while holding the link's lock,
// so events of one link are stored in the order they were timestamped
func (l *eventLog) append(ctx context.Context, input LogEventInput) (*domain.LinkEvent, error) {
	unlock := l.locks.Lock(input.LinkID)
	defer unlock()

	metadata := input.Metadata
	if metadata == nil {
		metadata = domain.Metadata{}
	}

	now := l.clock.Now()
	event := &domain.LinkEvent{
		ID:              l.ids.NewSortableID(now),
		LinkID:          input.LinkID,
		RecipientUserID: input.RecipientUserID,
		EventType:       input.EventType,
		IPAddress:       input.IPAddress,
		UserAgent:       input.UserAgent,
		Metadata:        metadata,
		CreatedAt:       now,
	}

	if err := l.events.AppendEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return event, nil
}

// applyReferralBonus credits the sharer of a public link when a recipient completes the test.
// Failures are logged; the event itself is already recorded.
func (l *eventLog) applyReferralBonus(ctx context.Context, link *domain.SharingLink, event *domain.LinkEvent) {
	if link.LinkType != domain.LinkTypePublic ||
		event.EventType != domain.EventTypeTestCompletedViaLink ||
		domain.StringValue(event.RecipientUserID) == "" {
		return
	}

	key := ReferralIdempotencyKey(link.ID, *event.RecipientUserID)
	tx, err := l.ledger.Award(ctx, ledger.AwardInput{
		UserID:         link.SharerUserID,
		TokensAmount:   l.config.PublicReferralBonus,
		ReasonCode:     domain.ReasonPublicReferralBonus,
		RelatedLinkID:  &link.ID,
		RelatedEventID: &event.ID,
		IdempotencyKey: &key,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to award referral bonus: %w", err),
			zap.String("link_id", link.ID),
			zap.String("event_id", event.ID),
			zap.String("sharer_user_id", link.SharerUserID),
		)
		return
	}

	logger.InfoCtx(ctx, "Referral bonus applied",
		zap.String("link_id", link.ID),
		zap.String("sharer_user_id", link.SharerUserID),
		zap.String("transaction_id", tx.ID),
	)
}

// publish forwards the event to the message broker. Delivery is best effort.
func (l *eventLog) publish(ctx context.Context, link *domain.SharingLink, event *domain.LinkEvent) {
	err := l.publisher.PublishLinkEvent(ctx, &messaging.LinkEventMessage{
		Event:        *event,
		LinkType:     link.LinkType,
		SharerUserID: link.SharerUserID,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish link event",
			zap.Error(err),
			zap.String("link_id", event.LinkID),
			zap.String("event_id", event.ID),
		)
	}
}

// GetEventsForLink returns the link's events, oldest first
func (l *eventLog) GetEventsForLink(ctx context.Context, linkID string) ([]domain.LinkEvent, error) {
	events, err := l.events.ListEventsByLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for link: %w", err)
	}
	return events, nil
}
