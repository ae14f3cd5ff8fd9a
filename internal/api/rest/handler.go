package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/api/middleware"
	"github.com/traittune/sharing/internal/api/shared/dto"
	"github.com/traittune/sharing/internal/api/shared/executor"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/logger"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateEmailLink issues a private email link
	// POST /api/v1/links/email
	CreateEmailLink(c *gin.Context)

	// CreateOnetimeLink issues a one-time private link
	// POST /api/v1/links/onetime
	CreateOnetimeLink(c *gin.Context)

	// CreatePublicLink issues a public link
	// POST /api/v1/links/public
	CreatePublicLink(c *gin.Context)

	// CreateQRLink issues a QR link
	// POST /api/v1/links/qr
	CreateQRLink(c *gin.Context)

	// GetLink retrieves a link by ID
	// GET /api/v1/links/:id
	GetLink(c *gin.Context)

	// GetLinkByToken retrieves a link by its token
	// GET /api/v1/links/token/:token
	GetLinkByToken(c *gin.Context)

	// UpdateLinkStatus changes a link's status (JWT callers must own the link)
	// PATCH /api/v1/links/:id/status
	UpdateLinkStatus(c *gin.Context)

	// ConfirmDispatch settles a queued email dispatch (API key only)
	// POST /api/v1/links/:id/dispatch-confirmation
	ConfirmDispatch(c *gin.Context)

	// LogEvent records an interaction against a link (JWT callers log as themselves)
	// POST /api/v1/links/:id/events
	LogEvent(c *gin.Context)

	// GetEvents lists a link's events
	// GET /api/v1/links/:id/events
	GetEvents(c *gin.Context)

	// RenderLinkQR renders the link URL as a QR image
	// GET /api/v1/links/:id/qr?format=png|jpeg
	RenderLinkQR(c *gin.Context)

	// ResolveScan resolves a QR scan
	// POST /api/v1/qr/scan
	ResolveScan(c *gin.Context)

	// GetBalance retrieves a user's bonus balance
	// GET /api/v1/users/:user_id/bonus
	GetBalance(c *gin.Context)

	// GetTransactions lists a user's bonus transactions
	// GET /api/v1/users/:user_id/bonus/transactions
	GetTransactions(c *gin.Context)

	// AwardTokens credits a manual adjustment (API key only)
	// POST /api/v1/users/:user_id/bonus/awards
	AwardTokens(c *gin.Context)

	// GetShareSummary aggregates a sharer's links and rewards
	// GET /api/v1/users/:user_id/share-summary
	GetShareSummary(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// resolveSharer picks the acting sharer. A JWT subject wins and must agree with the body.
func resolveSharer(c *gin.Context, bodySharer string) (string, bool) {
	subject := middleware.AuthSubject(c)
	bodySharer = strings.TrimSpace(bodySharer)

	if subject == "" {
		if bodySharer == "" {
			respondValidationError(c, "sharer_user_id is required")
			return "", false
		}
		return bodySharer, true
	}

	if bodySharer != "" && bodySharer != subject {
		respondForbidden(c, "Cannot act for another user")
		return "", false
	}
	return subject, true
}

// authorizeLinkOwner rejects a JWT caller that does not own the link.
// API-key callers act for the service and are not restricted.
func (h *handler) authorizeLinkOwner(c *gin.Context, linkID string) bool {
	subject := middleware.AuthSubject(c)
	if subject == "" {
		return true
	}

	link, err := h.executor.GetLink(c.Request.Context(), linkID)
	if err != nil {
		respondError(c, err, "Failed to get link")
		return false
	}
	if link == nil {
		respondNotFound(c, "Link not found")
		return false
	}
	if link.SharerUserID != subject {
		respondForbidden(c, "Cannot modify another user's link")
		return false
	}
	return true
}

func requestInfo(c *gin.Context) executor.RequestInfo {
	info := executor.RequestInfo{}
	if ip := c.ClientIP(); ip != "" {
		info.IPAddress = &ip
	}
	if ua := c.Request.UserAgent(); ua != "" {
		info.UserAgent = &ua
	}
	return info
}

func (h *handler) CreateEmailLink(c *gin.Context) {
	var req dto.CreateEmailLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	sharer, ok := resolveSharer(c, req.SharerUserID)
	if !ok {
		return
	}
	req.SharerUserID = sharer

	link, err := h.executor.CreateEmailLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create email link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *handler) CreateOnetimeLink(c *gin.Context) {
	var req dto.CreateOnetimeLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	sharer, ok := resolveSharer(c, req.SharerUserID)
	if !ok {
		return
	}
	req.SharerUserID = sharer

	link, err := h.executor.CreateOnetimeLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create one-time link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *handler) CreatePublicLink(c *gin.Context) {
	var req dto.CreatePublicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	sharer, ok := resolveSharer(c, req.SharerUserID)
	if !ok {
		return
	}
	req.SharerUserID = sharer

	link, err := h.executor.CreatePublicLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create public link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *handler) CreateQRLink(c *gin.Context) {
	var req dto.CreateQRLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	sharer, ok := resolveSharer(c, req.SharerUserID)
	if !ok {
		return
	}
	req.SharerUserID = sharer

	link, err := h.executor.CreateQRLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create QR link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *handler) GetLink(c *gin.Context) {
	linkID := c.Param("id")

	link, err := h.executor.GetLink(c.Request.Context(), linkID)
	if err != nil {
		respondError(c, err, "Failed to get link")
		return
	}
	if link == nil {
		respondNotFound(c, "Link not found")
		return
	}

	c.JSON(http.StatusOK, link)
}

func (h *handler) GetLinkByToken(c *gin.Context) {
	token := c.Param("token")

	link, err := h.executor.GetLinkByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, "Failed to get link")
		return
	}
	if link == nil {
		respondNotFound(c, "Link not found")
		return
	}

	c.JSON(http.StatusOK, link)
}

func (h *handler) UpdateLinkStatus(c *gin.Context) {
	linkID := c.Param("id")

	var req dto.UpdateLinkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	if !h.authorizeLinkOwner(c, linkID) {
		return
	}

	resp, err := h.executor.UpdateLinkStatus(c.Request.Context(), linkID, &req)
	if err != nil {
		respondError(c, err, "Failed to update link status")
		return
	}
	if resp == nil {
		respondNotFound(c, "Link not found")
		return
	}

	logger.InfoCtx(c.Request.Context(), "Link status changed via API",
		zap.String("link_id", linkID),
		zap.String("status", string(req.Status)),
		zap.String("subject", middleware.AuthSubject(c)))

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ConfirmDispatch(c *gin.Context) {
	linkID := c.Param("id")

	var req dto.ConfirmDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	link, err := h.executor.ConfirmDispatch(c.Request.Context(), linkID, &req)
	if err != nil {
		respondError(c, err, "Failed to confirm dispatch")
		return
	}

	c.JSON(http.StatusOK, link)
}

func (h *handler) LogEvent(c *gin.Context) {
	linkID := c.Param("id")

	var req dto.LogEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	// A JWT caller can only log events as themselves
	if subject := middleware.AuthSubject(c); subject != "" {
		recipient := strings.TrimSpace(domain.StringValue(req.RecipientUserID))
		if recipient != "" && recipient != subject {
			respondForbidden(c, "Cannot log events for another user")
			return
		}
		req.RecipientUserID = &subject
	}

	event, err := h.executor.LogEvent(c.Request.Context(), linkID, &req, requestInfo(c))
	if err != nil {
		respondError(c, err, "Failed to log event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *handler) GetEvents(c *gin.Context) {
	linkID := c.Param("id")

	events, err := h.executor.GetEvents(c.Request.Context(), linkID)
	if err != nil {
		respondError(c, err, "Failed to get events")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *handler) RenderLinkQR(c *gin.Context) {
	linkID := c.Param("id")

	img, err := h.executor.RenderLinkQR(c.Request.Context(), linkID, c.Query("format"))
	if err != nil {
		respondError(c, err, "Failed to render QR code")
		return
	}
	if img == nil {
		respondNotFound(c, "Link not found")
		return
	}

	c.Data(http.StatusOK, img.ContentType, img.Data)
}

func (h *handler) ResolveScan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	resolution, err := h.executor.ResolveScan(c.Request.Context(), &req, requestInfo(c))
	if err != nil {
		respondError(c, err, "Failed to resolve scan")
		return
	}

	c.JSON(http.StatusOK, resolution)
}

func (h *handler) GetBalance(c *gin.Context) {
	balance, err := h.executor.GetBalance(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}

func (h *handler) GetTransactions(c *gin.Context) {
	txs, err := h.executor.GetTransactions(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err, "Failed to get transactions")
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *handler) AwardTokens(c *gin.Context) {
	userID := c.Param("user_id")

	var req dto.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	tx, err := h.executor.AwardManual(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to award tokens")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *handler) GetShareSummary(c *gin.Context) {
	summary, err := h.executor.GetShareSummary(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err, "Failed to get share summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sharing-api",
	})
}
