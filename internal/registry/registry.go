package registry

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/dispatch"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/eventlog"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/metrics"
	"github.com/traittune/sharing/internal/store"
)

const defaultMaxTokenAttempts = 3

// CreatePrivateEmailLinkInput represents the input for issuing a link delivered by email
type CreatePrivateEmailLinkInput struct {
	SharerUserID  string
	TargetEmail   string
	ReportID      *string
	CustomMessage *string
}

// CreatePrivateOnetimeLinkInput represents the input for issuing a one-time private link
type CreatePrivateOnetimeLinkInput struct {
	SharerUserID string
	ReportID     *string
	// ExpiresInHours sets the expiry relative to creation. Nil or zero means no expiry.
	ExpiresInHours *int
}

// CreatePublicLinkInput represents the input for issuing a public link
type CreatePublicLinkInput struct {
	SharerUserID string
	CampaignTag  *string
}

// CreateQRCodeLinkInput represents the input for issuing a QR link
type CreateQRCodeLinkInput struct {
	SharerUserID string
	ReportID     *string
}

// ConfirmDispatchInput reports the outcome of a queued email dispatch
type ConfirmDispatchInput struct {
	LinkID    string
	Delivered bool
	// Reason describes a failed delivery
	Reason string
}

// Registry issues sharing links and owns their lifecycle
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// CreatePrivateEmailLink issues a link for one email recipient and dispatches it
	CreatePrivateEmailLink(ctx context.Context, input CreatePrivateEmailLinkInput) (*domain.SharingLink, error)
	// ConfirmDispatch settles a pending email dispatch as sent or failed
	ConfirmDispatch(ctx context.Context, input ConfirmDispatchInput) (*domain.SharingLink, error)
	// CreatePrivateOnetimeLink issues a private link with an optional expiry
	CreatePrivateOnetimeLink(ctx context.Context, input CreatePrivateOnetimeLinkInput) (*domain.SharingLink, error)
	// CreatePublicLink issues a public link that earns referral bonuses
	CreatePublicLink(ctx context.Context, input CreatePublicLinkInput) (*domain.SharingLink, error)
	// CreateQRCodeLink issues a link meant to be encoded in a QR image
	CreateQRCodeLink(ctx context.Context, input CreateQRCodeLinkInput) (*domain.SharingLink, error)
	// GetByToken returns the link for a token, or nil. Expired links report status expired.
	GetByToken(ctx context.Context, token string) (*domain.SharingLink, error)
	// GetByID returns the link, or nil
	GetByID(ctx context.Context, id string) (*domain.SharingLink, error)
	// ListBySharer returns the sharer's links, newest first
	ListBySharer(ctx context.Context, sharerUserID string) ([]domain.SharingLink, error)
	// UpdateStatus sets a link's status. Returns false when the link does not exist.
	UpdateStatus(ctx context.Context, linkID string, status domain.LinkStatus) (bool, error)
	// Revoke marks a link revoked. Returns false when the link does not exist.
	Revoke(ctx context.Context, linkID string) (bool, error)
}

// Config holds registry settings
type Config struct {
	// Domain is the host used in issued URLs
	Domain string
	// MaxTokenAttempts bounds token regeneration on collision
	MaxTokenAttempts int
}

type registry struct {
	links            store.LinkStore
	events           eventlog.Log
	dispatcher       dispatch.Dispatcher
	clock            adapter.Clock
	ids              adapter.IDGenerator
	urls             domain.URLBuilder
	maxTokenAttempts int
}

// New creates a link registry
func New(
	config Config,
	links store.LinkStore,
	events eventlog.Log,
	dispatcher dispatch.Dispatcher,
	clock adapter.Clock,
	ids adapter.IDGenerator,
) Registry {
	maxAttempts := config.MaxTokenAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxTokenAttempts
	}

	return &registry{
		links:            links,
		events:           events,
		dispatcher:       dispatcher,
		clock:            clock,
		ids:              ids,
		urls:             domain.NewURLBuilder(config.Domain),
		maxTokenAttempts: maxAttempts,
	}
}

func validateSharer(sharerUserID string) error {
	if strings.TrimSpace(sharerUserID) == "" {
		return domain.NewValidationError("sharer_user_id", "is required")
	}
	return nil
}

// optional normalizes an optional string input, treating blank as absent
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	return domain.StringPtr(strings.TrimSpace(*s))
}

// newLink builds an unsaved link of the given type
func (r *registry) newLink(sharerUserID string, linkType domain.LinkType, status domain.LinkStatus) *domain.SharingLink {
	now := r.clock.Now()
	return &domain.SharingLink{
		ID:           r.ids.NewID(),
		SharerUserID: sharerUserID,
		LinkType:     linkType,
		Status:       status,
		Metadata:     domain.Metadata{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// persist assigns a fresh token and stores the link, regenerating the token on collision
func (r *registry) persist(ctx context.Context, link *domain.SharingLink) error {
	for attempt := 1; attempt <= r.maxTokenAttempts; attempt++ {
		link.UniqueToken = r.ids.NewToken()

		err := r.links.CreateLink(ctx, link)
		if err == nil {
			r.urls.Apply(link)
			metrics.LinksCreated.WithLabelValues(string(link.LinkType)).Inc()
			logger.InfoCtx(ctx, "Sharing link created",
				zap.String("link_id", link.ID),
				zap.String("link_type", string(link.LinkType)),
				zap.String("sharer_user_id", link.SharerUserID),
			)
			return nil
		}
		if !errors.Is(err, store.ErrDuplicateToken) {
			return fmt.Errorf("failed to create link: %w", err)
		}

		logger.WarnCtx(ctx, "Link token collision, regenerating",
			zap.String("link_id", link.ID),
			zap.Int("attempt", attempt),
		)
	}

	return fmt.Errorf("failed to allocate a unique token after %d attempts", r.maxTokenAttempts)
}

// logLinkEvent records a lifecycle event for a link the registry just changed.
// The link is already persisted, so a failure is logged rather than returned.
func (r *registry) logLinkEvent(ctx context.Context, link *domain.SharingLink, eventType domain.EventType) {
	_, err := r.events.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:    link.ID,
		EventType: eventType,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to log %s event: %w", eventType, err),
			zap.String("link_id", link.ID))
	}
}

// CreatePrivateEmailLink issues a link for one email recipient and dispatches it
func (r *registry) CreatePrivateEmailLink(ctx context.Context, input CreatePrivateEmailLinkInput) (*domain.SharingLink, error) {
	if err := validateSharer(input.SharerUserID); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(input.TargetEmail)
	if email == "" {
		return nil, domain.NewValidationError("target_email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, domain.NewValidationError("target_email", "is not a valid email address")
	}

	link := r.newLink(input.SharerUserID, domain.LinkTypePrivateEmail, domain.LinkStatusGenerated)
	link.TargetEmail = &addr.Address
	link.ReportID = optional(input.ReportID)
	customMessage := optional(input.CustomMessage)
	if customMessage != nil {
		link.Metadata[domain.MetadataKeyCustomMessage] = *customMessage
	}

	if err := r.persist(ctx, link); err != nil {
		return nil, err
	}

	result, err := r.dispatcher.Dispatch(ctx, dispatch.Request{
		LinkID:        link.ID,
		TargetEmail:   addr.Address,
		Token:         link.UniqueToken,
		ShareURL:      link.ShareURL,
		CustomMessage: customMessage,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Email dispatch failed",
			zap.Error(err),
			zap.String("link_id", link.ID))
		if err := r.settleDispatch(ctx, link, false, err.Error()); err != nil {
			return nil, err
		}
		return link, nil
	}

	switch result.Outcome {
	case dispatch.OutcomeDelivered:
		if err := r.settleDispatch(ctx, link, true, ""); err != nil {
			return nil, err
		}
	default:
		if err := r.markDispatchRequested(ctx, link); err != nil {
			return nil, err
		}
	}

	return link, nil
}

// markDispatchRequested records that the dispatch was handed off and awaits confirmation
func (r *registry) markDispatchRequested(ctx context.Context, link *domain.SharingLink) error {
	now := r.clock.Now()
	requestedAt := now.Format(time.RFC3339Nano)

	_, err := r.links.UpdateLinkStatus(ctx, store.UpdateLinkStatusInput{
		LinkID:    link.ID,
		Status:    domain.LinkStatusGenerated,
		UpdatedAt: now,
		Metadata:  domain.Metadata{domain.MetadataKeyDispatchRequestedAt: requestedAt},
	})
	if err != nil {
		return fmt.Errorf("failed to record dispatch request: %w", err)
	}

	link.UpdatedAt = now
	link.Metadata[domain.MetadataKeyDispatchRequestedAt] = requestedAt
	metrics.DispatchOutcomes.WithLabelValues(string(dispatch.OutcomeAccepted)).Inc()
	return nil
}

// settleDispatch moves a pending email link to sent or failed. The transition only
// applies from generated, so a dispatch is settled at most once.
func (r *registry) settleDispatch(ctx context.Context, link *domain.SharingLink, delivered bool, reason string) error {
	now := r.clock.Now()
	from := domain.LinkStatusGenerated
	input := store.UpdateLinkStatusInput{
		LinkID:     link.ID,
		Status:     domain.LinkStatusSent,
		UpdatedAt:  now,
		FromStatus: &from,
	}
	outcome := "sent"
	if !delivered {
		input.Status = domain.LinkStatusFailed
		input.Metadata = domain.Metadata{domain.MetadataKeyDispatchFailure: reason}
		outcome = "failed"
	}

	ok, err := r.links.UpdateLinkStatus(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to settle email dispatch: %w", err)
	}
	if !ok {
		return domain.NewValidationError("status", "email dispatch is already settled")
	}

	link.Status = input.Status
	link.UpdatedAt = now
	for k, v := range input.Metadata {
		link.Metadata[k] = v
	}
	metrics.DispatchOutcomes.WithLabelValues(outcome).Inc()

	if delivered {
		r.logLinkEvent(ctx, link, domain.EventTypeEmailSent)
	}

	logger.InfoCtx(ctx, "Email dispatch settled",
		zap.String("link_id", link.ID),
		zap.String("status", string(link.Status)))
	return nil
}

// ConfirmDispatch settles a pending email dispatch
func (r *registry) ConfirmDispatch(ctx context.Context, input ConfirmDispatchInput) (*domain.SharingLink, error) {
	link, err := r.links.GetLinkByID(ctx, input.LinkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	if link == nil {
		return nil, domain.NewNotFoundError("link", input.LinkID)
	}
	if link.LinkType != domain.LinkTypePrivateEmail {
		return nil, domain.NewValidationError("link_id", "is not a private email link")
	}
	if link.Status != domain.LinkStatusGenerated {
		return nil, domain.NewValidationError("status", "email dispatch is already settled")
	}

	reason := strings.TrimSpace(input.Reason)
	if !input.Delivered && reason == "" {
		reason = "delivery failed"
	}

	if err := r.settleDispatch(ctx, link, input.Delivered, reason); err != nil {
		return nil, err
	}

	r.urls.Apply(link)
	return link, nil
}

// CreatePrivateOnetimeLink issues a private link with an optional expiry
func (r *registry) CreatePrivateOnetimeLink(ctx context.Context, input CreatePrivateOnetimeLinkInput) (*domain.SharingLink, error) {
	if err := validateSharer(input.SharerUserID); err != nil {
		return nil, err
	}
	if input.ExpiresInHours != nil && *input.ExpiresInHours < 0 {
		return nil, domain.NewValidationError("expires_in_hours", "must not be negative")
	}

	link := r.newLink(input.SharerUserID, domain.LinkTypePrivateOnetime, domain.LinkStatusGenerated)
	link.ReportID = optional(input.ReportID)
	if input.ExpiresInHours != nil && *input.ExpiresInHours > 0 {
		expiresAt := link.CreatedAt.Add(time.Duration(*input.ExpiresInHours) * time.Hour)
		link.ExpiresAt = &expiresAt
	}

	if err := r.persist(ctx, link); err != nil {
		return nil, err
	}
	r.logLinkEvent(ctx, link, domain.EventTypeOnetimeLinkGenerated)

	return link, nil
}

// CreatePublicLink issues a public link
func (r *registry) CreatePublicLink(ctx context.Context, input CreatePublicLinkInput) (*domain.SharingLink, error) {
	if err := validateSharer(input.SharerUserID); err != nil {
		return nil, err
	}

	link := r.newLink(input.SharerUserID, domain.LinkTypePublic, domain.LinkStatusActive)
	if tag := optional(input.CampaignTag); tag != nil {
		link.Metadata[domain.MetadataKeyCampaignTag] = *tag
	}

	if err := r.persist(ctx, link); err != nil {
		return nil, err
	}
	r.logLinkEvent(ctx, link, domain.EventTypePublicLinkGenerated)

	return link, nil
}

// CreateQRCodeLink issues a link meant to be encoded in a QR image
func (r *registry) CreateQRCodeLink(ctx context.Context, input CreateQRCodeLinkInput) (*domain.SharingLink, error) {
	if err := validateSharer(input.SharerUserID); err != nil {
		return nil, err
	}

	link := r.newLink(input.SharerUserID, domain.LinkTypeQR, domain.LinkStatusActive)
	link.ReportID = optional(input.ReportID)

	if err := r.persist(ctx, link); err != nil {
		return nil, err
	}
	r.logLinkEvent(ctx, link, domain.EventTypeQRLinkGenerated)

	return link, nil
}

// present fills the derived fields a reader observes
func (r *registry) present(link *domain.SharingLink, now time.Time) {
	link.Status = link.EffectiveStatus(now)
	r.urls.Apply(link)
}

// GetByToken returns the link for a token, or nil
func (r *registry) GetByToken(ctx context.Context, token string) (*domain.SharingLink, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}

	link, err := r.links.GetLinkByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by token: %w", err)
	}
	if link == nil {
		return nil, nil
	}

	r.present(link, r.clock.Now())
	return link, nil
}

// GetByID returns the link, or nil
func (r *registry) GetByID(ctx context.Context, id string) (*domain.SharingLink, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}

	link, err := r.links.GetLinkByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	if link == nil {
		return nil, nil
	}

	r.present(link, r.clock.Now())
	return link, nil
}

// ListBySharer returns the sharer's links, newest first
func (r *registry) ListBySharer(ctx context.Context, sharerUserID string) ([]domain.SharingLink, error) {
	if err := validateSharer(sharerUserID); err != nil {
		return nil, err
	}

	links, err := r.links.ListLinksBySharer(ctx, sharerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	now := r.clock.Now()
	for i := range links {
		r.present(&links[i], now)
	}
	return links, nil
}

// UpdateStatus sets a link's status
func (r *registry) UpdateStatus(ctx context.Context, linkID string, status domain.LinkStatus) (bool, error) {
	if !status.Valid() {
		return false, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	ok, err := r.links.UpdateLinkStatus(ctx, store.UpdateLinkStatusInput{
		LinkID:    linkID,
		Status:    status,
		UpdatedAt: r.clock.Now(),
	})
	if err != nil {
		return false, fmt.Errorf("failed to update link status: %w", err)
	}

	if ok {
		logger.InfoCtx(ctx, "Link status updated",
			zap.String("link_id", linkID),
			zap.String("status", string(status)))
	}
	return ok, nil
}

// Revoke marks a link revoked
func (r *registry) Revoke(ctx context.Context, linkID string) (bool, error) {
	return r.UpdateStatus(ctx, linkID, domain.LinkStatusRevoked)
}
