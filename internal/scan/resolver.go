package scan

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/eventlog"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/metrics"
	"github.com/traittune/sharing/internal/registry"
)

// Action is what the caller should do after a scan
type Action string

const (
	ActionInitiateComparison   Action = "initiate_comparison"
	ActionRedirectToOnboarding Action = "redirect_to_onboarding"
)

const (
	MessageExistingUser = "Existing user scanned. Initiate comparison flow."
	MessageNewUser      = "New user scanned. Redirect to onboarding."
)

// ResolveInput is an inbound QR scan
type ResolveInput struct {
	Token          string
	ScanningUserID *string
	IPAddress      *string
	UserAgent      *string
}

// Resolution describes the action for a resolved scan
type Resolution struct {
	Action        Action  `json:"action"`
	SharerUserID  string  `json:"sharer_user_id"`
	ScannerUserID *string `json:"scanner_user_id,omitempty"`
	RedirectURL   string  `json:"redirect_url,omitempty"`
	Message       string  `json:"message"`
}

// Resolver turns QR scans into onboarding or comparison actions
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// Resolve records the scan and returns the action to take.
	// Unknown, non-QR and unusable links return an InvalidLinkError and record nothing.
	Resolve(ctx context.Context, input ResolveInput) (*Resolution, error)
}

// Config holds resolver settings
type Config struct {
	Domain string
}

type resolver struct {
	registry  registry.Registry
	events    eventlog.Log
	directory UserDirectory
	clock     adapter.Clock
	urls      domain.URLBuilder
}

// NewResolver creates a scan resolver
func NewResolver(
	config Config,
	registry registry.Registry,
	events eventlog.Log,
	directory UserDirectory,
	clock adapter.Clock,
) Resolver {
	if directory == nil {
		directory = NewTrustingDirectory()
	}

	return &resolver{
		registry:  registry,
		events:    events,
		directory: directory,
		clock:     clock,
		urls:      domain.NewURLBuilder(config.Domain),
	}
}

func (r *resolver) Resolve(ctx context.Context, input ResolveInput) (*Resolution, error) {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return nil, domain.NewInvalidLinkError(token, "no link for token")
	}

	link, err := r.registry.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}
	if link == nil {
		return nil, domain.NewInvalidLinkError(token, "no link for token")
	}
	if link.LinkType != domain.LinkTypeQR {
		return nil, domain.NewInvalidLinkError(token, "not a qr link")
	}
	if !link.IsUsable(r.clock.Now()) {
		return nil, domain.NewInvalidLinkError(token, fmt.Sprintf("link is %s", link.Status))
	}

	scanner := input.ScanningUserID
	if scanner != nil && strings.TrimSpace(*scanner) == "" {
		scanner = nil
	}

	if _, err := r.events.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          link.ID,
		EventType:       domain.EventTypeClicked,
		RecipientUserID: scanner,
		IPAddress:       input.IPAddress,
		UserAgent:       input.UserAgent,
	}); err != nil {
		return nil, fmt.Errorf("failed to log scan click: %w", err)
	}

	existing := false
	if scanner != nil {
		existing, err = r.directory.IsExistingUser(ctx, *scanner)
		if err != nil {
			// An unreachable directory degrades to the onboarding flow
			logger.WarnCtx(ctx, "User directory lookup failed",
				zap.Error(err),
				zap.String("user_id", *scanner))
			existing = false
		}
	}

	var resolution *Resolution
	if existing {
		if _, err := r.events.LogEvent(ctx, eventlog.LogEventInput{
			LinkID:          link.ID,
			EventType:       domain.EventTypeQRScannedExistingUserComparisonInit,
			RecipientUserID: scanner,
			IPAddress:       input.IPAddress,
			UserAgent:       input.UserAgent,
		}); err != nil {
			return nil, fmt.Errorf("failed to log comparison scan: %w", err)
		}

		resolution = &Resolution{
			Action:        ActionInitiateComparison,
			SharerUserID:  link.SharerUserID,
			ScannerUserID: scanner,
			Message:       MessageExistingUser,
		}
	} else {
		if _, err := r.events.LogEvent(ctx, eventlog.LogEventInput{
			LinkID:    link.ID,
			EventType: domain.EventTypeQRScannedNewUser,
			IPAddress: input.IPAddress,
			UserAgent: input.UserAgent,
		}); err != nil {
			return nil, fmt.Errorf("failed to log onboarding scan: %w", err)
		}

		resolution = &Resolution{
			Action:       ActionRedirectToOnboarding,
			SharerUserID: link.SharerUserID,
			RedirectURL:  r.urls.OnboardingURL(link.UniqueToken),
			Message:      MessageNewUser,
		}
	}

	metrics.ScansResolved.WithLabelValues(string(resolution.Action)).Inc()
	logger.InfoCtx(ctx, "QR scan resolved",
		zap.String("link_id", link.ID),
		zap.String("action", string(resolution.Action)))

	return resolution, nil
}
