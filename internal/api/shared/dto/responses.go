package dto

import (
	"time"

	"github.com/traittune/sharing/internal/domain"
)

// LinkResponse is a sharing link as returned by the API
type LinkResponse struct {
	ID           string            `json:"id"`
	SharerUserID string            `json:"sharer_user_id"`
	LinkType     domain.LinkType   `json:"link_type"`
	UniqueToken  string            `json:"unique_token"`
	TargetEmail  *string           `json:"target_email,omitempty"`
	ReportID     *string           `json:"report_id,omitempty"`
	Status       domain.LinkStatus `json:"status"`
	Metadata     domain.Metadata   `json:"metadata"`
	ShareURL     string            `json:"share_url,omitempty"`
	QRDataURL    string            `json:"qr_data_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	ExpiresAt    *time.Time        `json:"expires_at,omitempty"`
}

// UpdateLinkStatusResponse reports a status change
type UpdateLinkStatusResponse struct {
	LinkID string            `json:"link_id"`
	Status domain.LinkStatus `json:"status"`
}

// EventResponse is a link event as returned by the API
type EventResponse struct {
	ID              string           `json:"id"`
	LinkID          string           `json:"link_id"`
	EventType       domain.EventType `json:"event_type"`
	RecipientUserID *string          `json:"recipient_user_id,omitempty"`
	IPAddress       *string          `json:"ip_address,omitempty"`
	UserAgent       *string          `json:"user_agent,omitempty"`
	Metadata        domain.Metadata  `json:"metadata"`
	CreatedAt       time.Time        `json:"created_at"`
}

// EventListResponse lists a link's events, oldest first
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

// ScanResponse describes the action for a resolved QR scan
type ScanResponse struct {
	Action        string  `json:"action"`
	SharerUserID  string  `json:"sharer_user_id"`
	ScannerUserID *string `json:"scanner_user_id,omitempty"`
	RedirectURL   string  `json:"redirect_url,omitempty"`
	Message       string  `json:"message"`
}

// BalanceResponse is a user's bonus balance. Users without an account report zero.
type BalanceResponse struct {
	UserID       string     `json:"user_id"`
	TokenBalance int64      `json:"token_balance"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

// TransactionResponse is a ledger entry as returned by the API
type TransactionResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	TokensAmount    int64                  `json:"tokens_amount"`
	ReasonCode      domain.ReasonCode      `json:"reason_code"`
	Description     string                 `json:"description"`
	RelatedLinkID   *string                `json:"related_link_id,omitempty"`
	RelatedEventID  *string                `json:"related_event_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// TransactionListResponse lists a user's transactions, oldest first
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// PrivateInviteSummary is the progress of one private invite
type PrivateInviteSummary struct {
	LinkID          string            `json:"link_id"`
	LinkType        domain.LinkType   `json:"link_type"`
	Email           *string           `json:"email,omitempty"`
	Status          domain.LinkStatus `json:"status"`
	LatestEventType *domain.EventType `json:"latest_event_type,omitempty"`
	SharedAt        time.Time         `json:"shared_at"`
}

// ShareSummaryResponse is a sharer's overview of their links and rewards
type ShareSummaryResponse struct {
	UserID                    string                 `json:"user_id"`
	TotalLinks                int                    `json:"total_links"`
	PrivateInvites            []PrivateInviteSummary `json:"private_invites"`
	PublicReferralCompletions int                    `json:"public_referral_completions"`
	QRScans                   int                    `json:"qr_scans"`
	TokenBalance              int64                  `json:"token_balance"`
}
