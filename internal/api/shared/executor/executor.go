package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/api/shared/dto"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/eventlog"
	"github.com/traittune/sharing/internal/ledger"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/qr"
	"github.com/traittune/sharing/internal/registry"
	"github.com/traittune/sharing/internal/scan"
)

const defaultSummaryConcurrency = 8

// RequestInfo carries client details recorded on events
type RequestInfo struct {
	IPAddress *string
	UserAgent *string
}

// Executor is the API's business facade over the sharing core
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateEmailLink issues and dispatches a private email link
	CreateEmailLink(ctx context.Context, req *dto.CreateEmailLinkRequest) (*dto.LinkResponse, error)
	// CreateOnetimeLink issues a one-time private link
	CreateOnetimeLink(ctx context.Context, req *dto.CreateOnetimeLinkRequest) (*dto.LinkResponse, error)
	// CreatePublicLink issues a public link
	CreatePublicLink(ctx context.Context, req *dto.CreatePublicLinkRequest) (*dto.LinkResponse, error)
	// CreateQRLink issues a QR link
	CreateQRLink(ctx context.Context, req *dto.CreateQRLinkRequest) (*dto.LinkResponse, error)

	// GetLink returns a link by ID, or nil
	GetLink(ctx context.Context, linkID string) (*dto.LinkResponse, error)
	// GetLinkByToken returns a link by token, or nil
	GetLinkByToken(ctx context.Context, token string) (*dto.LinkResponse, error)
	// UpdateLinkStatus changes a link's status. Returns nil when the link does not exist.
	UpdateLinkStatus(ctx context.Context, linkID string, req *dto.UpdateLinkStatusRequest) (*dto.UpdateLinkStatusResponse, error)
	// ConfirmDispatch settles a queued email dispatch
	ConfirmDispatch(ctx context.Context, linkID string, req *dto.ConfirmDispatchRequest) (*dto.LinkResponse, error)

	// LogEvent records an interaction against a link
	LogEvent(ctx context.Context, linkID string, req *dto.LogEventRequest, info RequestInfo) (*dto.EventResponse, error)
	// GetEvents lists a link's events, oldest first
	GetEvents(ctx context.Context, linkID string) (*dto.EventListResponse, error)

	// RenderLinkQR renders the link's public URL as a QR image. Returns nil when the link does not exist.
	RenderLinkQR(ctx context.Context, linkID string, format string) (*qr.Image, error)
	// ResolveScan resolves a QR scan
	ResolveScan(ctx context.Context, req *dto.ScanRequest, info RequestInfo) (*dto.ScanResponse, error)

	// GetBalance returns a user's bonus balance
	GetBalance(ctx context.Context, userID string) (*dto.BalanceResponse, error)
	// GetTransactions lists a user's ledger entries
	GetTransactions(ctx context.Context, userID string) (*dto.TransactionListResponse, error)
	// AwardManual credits a manual adjustment
	AwardManual(ctx context.Context, userID string, req *dto.AwardRequest) (*dto.TransactionResponse, error)

	// GetShareSummary aggregates a sharer's links, invite progress and rewards
	GetShareSummary(ctx context.Context, userID string) (*dto.ShareSummaryResponse, error)

	// Close releases worker pools
	Close()
}

type executor struct {
	registry registry.Registry
	events   eventlog.Log
	ledger   ledger.Ledger
	resolver scan.Resolver
	renderer qr.Renderer
	pool     pond.ResultPool[*linkActivity]
}

// NewExecutor creates the API executor
func NewExecutor(
	registry registry.Registry,
	events eventlog.Log,
	ledger ledger.Ledger,
	resolver scan.Resolver,
	renderer qr.Renderer,
) Executor {
	return &executor{
		registry: registry,
		events:   events,
		ledger:   ledger,
		resolver: resolver,
		renderer: renderer,
		pool:     pond.NewResultPool[*linkActivity](defaultSummaryConcurrency),
	}
}

func (e *executor) CreateEmailLink(ctx context.Context, req *dto.CreateEmailLinkRequest) (*dto.LinkResponse, error) {
	link, err := e.registry.CreatePrivateEmailLink(ctx, registry.CreatePrivateEmailLinkInput{
		SharerUserID:  req.SharerUserID,
		TargetEmail:   req.TargetEmail,
		ReportID:      req.ReportID,
		CustomMessage: req.CustomMessage,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) CreateOnetimeLink(ctx context.Context, req *dto.CreateOnetimeLinkRequest) (*dto.LinkResponse, error) {
	link, err := e.registry.CreatePrivateOnetimeLink(ctx, registry.CreatePrivateOnetimeLinkInput{
		SharerUserID:   req.SharerUserID,
		ReportID:       req.ReportID,
		ExpiresInHours: req.ExpiresInHours,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) CreatePublicLink(ctx context.Context, req *dto.CreatePublicLinkRequest) (*dto.LinkResponse, error) {
	link, err := e.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{
		SharerUserID: req.SharerUserID,
		CampaignTag:  req.CampaignTag,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) CreateQRLink(ctx context.Context, req *dto.CreateQRLinkRequest) (*dto.LinkResponse, error) {
	link, err := e.registry.CreateQRCodeLink(ctx, registry.CreateQRCodeLinkInput{
		SharerUserID: req.SharerUserID,
		ReportID:     req.ReportID,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) GetLink(ctx context.Context, linkID string) (*dto.LinkResponse, error) {
	link, err := e.registry.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) GetLinkByToken(ctx context.Context, token string) (*dto.LinkResponse, error) {
	link, err := e.registry.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) UpdateLinkStatus(ctx context.Context, linkID string, req *dto.UpdateLinkStatusRequest) (*dto.UpdateLinkStatusResponse, error) {
	ok, err := e.registry.UpdateStatus(ctx, linkID, req.Status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &dto.UpdateLinkStatusResponse{LinkID: linkID, Status: req.Status}, nil
}

func (e *executor) ConfirmDispatch(ctx context.Context, linkID string, req *dto.ConfirmDispatchRequest) (*dto.LinkResponse, error) {
	link, err := e.registry.ConfirmDispatch(ctx, registry.ConfirmDispatchInput{
		LinkID:    linkID,
		Delivered: req.Delivered,
		Reason:    req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapLinkToDTO(link), nil
}

func (e *executor) LogEvent(ctx context.Context, linkID string, req *dto.LogEventRequest, info RequestInfo) (*dto.EventResponse, error) {
	event, err := e.events.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          linkID,
		EventType:       req.EventType,
		RecipientUserID: req.RecipientUserID,
		IPAddress:       info.IPAddress,
		UserAgent:       info.UserAgent,
		Metadata:        req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapEventToDTO(event), nil
}

func (e *executor) GetEvents(ctx context.Context, linkID string) (*dto.EventListResponse, error) {
	events, err := e.events.GetEventsForLink(ctx, linkID)
	if err != nil {
		return nil, err
	}
	return dto.MapEventsToDTO(events), nil
}

func (e *executor) RenderLinkQR(ctx context.Context, linkID string, format string) (*qr.Image, error) {
	link, err := e.registry.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}

	data := link.ShareURL
	if link.LinkType == domain.LinkTypeQR {
		data = link.QRDataURL
	}
	return e.renderer.Render(ctx, data, format)
}

func (e *executor) ResolveScan(ctx context.Context, req *dto.ScanRequest, info RequestInfo) (*dto.ScanResponse, error) {
	resolution, err := e.resolver.Resolve(ctx, scan.ResolveInput{
		Token:          req.Token,
		ScanningUserID: req.ScanningUserID,
		IPAddress:      info.IPAddress,
		UserAgent:      info.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapResolutionToDTO(resolution), nil
}

func (e *executor) GetBalance(ctx context.Context, userID string) (*dto.BalanceResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	account, err := e.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.MapBalanceToDTO(userID, account), nil
}

func (e *executor) GetTransactions(ctx context.Context, userID string) (*dto.TransactionListResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	txs, err := e.ledger.GetTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.MapTransactionsToDTO(txs), nil
}

func (e *executor) AwardManual(ctx context.Context, userID string, req *dto.AwardRequest) (*dto.TransactionResponse, error) {
	tx, err := e.ledger.Award(ctx, ledger.AwardInput{
		UserID:         userID,
		TokensAmount:   req.TokensAmount,
		ReasonCode:     domain.ReasonManualAdjustment,
		RelatedLinkID:  req.RelatedLinkID,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapTransactionToDTO(tx), nil
}

// linkActivity is the per-link slice of a share summary
type linkActivity struct {
	link                domain.SharingLink
	latestEventType     *domain.EventType
	referralCompletions int
	qrScans             int
}

// progressEvents are the recipient-facing events that describe invite progress
var progressEvents = map[domain.EventType]bool{
	domain.EventTypeEmailSent:            true,
	domain.EventTypeClicked:              true,
	domain.EventTypeRegisteredViaLink:    true,
	domain.EventTypeTestStartedViaLink:   true,
	domain.EventTypeTestCompletedViaLink: true,
	domain.EventTypeComparisonRequested:  true,
}

func (e *executor) collectActivity(ctx context.Context, link domain.SharingLink) (*linkActivity, error) {
	events, err := e.events.GetEventsForLink(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for link %s: %w", link.ID, err)
	}

	activity := &linkActivity{link: link}
	for i := range events {
		et := events[i].EventType
		if progressEvents[et] {
			activity.latestEventType = &et
		}
		switch {
		case et == domain.EventTypeTestCompletedViaLink && link.LinkType == domain.LinkTypePublic:
			activity.referralCompletions++
		case et == domain.EventTypeQRScannedNewUser || et == domain.EventTypeQRScannedExistingUserComparisonInit:
			activity.qrScans++
		}
	}
	return activity, nil
}

func (e *executor) GetShareSummary(ctx context.Context, userID string) (*dto.ShareSummaryResponse, error) {
	links, err := e.registry.ListBySharer(ctx, userID)
	if err != nil {
		return nil, err
	}

	group := e.pool.NewGroup()
	for _, link := range links {
		group.SubmitErr(func() (*linkActivity, error) {
			return e.collectActivity(ctx, link)
		})
	}
	activities, err := group.Wait()
	if err != nil {
		return nil, err
	}

	summary := &dto.ShareSummaryResponse{
		UserID:         userID,
		TotalLinks:     len(links),
		PrivateInvites: make([]dto.PrivateInviteSummary, 0),
	}
	for _, a := range activities {
		summary.PublicReferralCompletions += a.referralCompletions
		summary.QRScans += a.qrScans

		switch a.link.LinkType {
		case domain.LinkTypePrivateEmail, domain.LinkTypePrivateOnetime:
			summary.PrivateInvites = append(summary.PrivateInvites, dto.PrivateInviteSummary{
				LinkID:          a.link.ID,
				LinkType:        a.link.LinkType,
				Email:           a.link.TargetEmail,
				Status:          a.link.Status,
				LatestEventType: a.latestEventType,
				SharedAt:        a.link.CreatedAt,
			})
		}
	}

	account, err := e.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		summary.TokenBalance = account.TokenBalance
	}

	logger.DebugCtx(ctx, "Share summary built",
		zap.String("user_id", userID),
		zap.Int("links", len(links)))
	return summary, nil
}

func (e *executor) Close() {
	e.pool.StopAndWait()
}
