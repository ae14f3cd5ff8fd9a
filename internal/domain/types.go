package domain

import (
	"time"
)

// LinkType represents the kind of sharing link
type LinkType string

const (
	LinkTypePrivateEmail   LinkType = "private_email"
	LinkTypePrivateOnetime LinkType = "private_onetime"
	LinkTypePublic         LinkType = "public"
	LinkTypeQR             LinkType = "qr"
)

// Valid reports whether the link type is one of the known link types
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypePrivateEmail, LinkTypePrivateOnetime, LinkTypePublic, LinkTypeQR:
		return true
	}
	return false
}

// LinkStatus represents the lifecycle status of a sharing link
type LinkStatus string

const (
	LinkStatusGenerated LinkStatus = "generated"
	LinkStatusSent      LinkStatus = "sent"
	LinkStatusActive    LinkStatus = "active"
	LinkStatusExpired   LinkStatus = "expired"
	LinkStatusRevoked   LinkStatus = "revoked"
	// LinkStatusFailed marks a private email link whose dispatch was not delivered
	LinkStatusFailed LinkStatus = "failed"
)

// Valid reports whether the status is one of the known statuses
func (s LinkStatus) Valid() bool {
	switch s {
	case LinkStatusGenerated, LinkStatusSent, LinkStatusActive,
		LinkStatusExpired, LinkStatusRevoked, LinkStatusFailed:
		return true
	}
	return false
}

// EventType represents the type of interaction recorded against a link
type EventType string

const (
	EventTypeClicked                             EventType = "clicked"
	EventTypeRegisteredViaLink                   EventType = "registered_via_link"
	EventTypeTestStartedViaLink                  EventType = "test_started_via_link"
	EventTypeTestCompletedViaLink                EventType = "test_completed_via_link"
	EventTypeComparisonRequested                 EventType = "comparison_requested"
	EventTypeEmailSent                           EventType = "email_sent"
	EventTypeOnetimeLinkGenerated                EventType = "onetime_link_generated"
	EventTypeQRLinkGenerated                     EventType = "qr_link_generated"
	EventTypePublicLinkGenerated                 EventType = "public_link_generated"
	EventTypeQRScannedNewUser                    EventType = "qr_scanned_new_user"
	EventTypeQRScannedExistingUserComparisonInit EventType = "qr_scanned_existing_user_comparison_init"
)

// AllEventTypes lists every known event type
var AllEventTypes = []EventType{
	EventTypeClicked,
	EventTypeRegisteredViaLink,
	EventTypeTestStartedViaLink,
	EventTypeTestCompletedViaLink,
	EventTypeComparisonRequested,
	EventTypeEmailSent,
	EventTypeOnetimeLinkGenerated,
	EventTypeQRLinkGenerated,
	EventTypePublicLinkGenerated,
	EventTypeQRScannedNewUser,
	EventTypeQRScannedExistingUserComparisonInit,
}

// Valid reports whether the event type is one of the known event types
func (t EventType) Valid() bool {
	for _, et := range AllEventTypes {
		if t == et {
			return true
		}
	}
	return false
}

// TransactionType represents the ledger side of a bonus transaction
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
)

// ReasonCode explains why bonus tokens were awarded
type ReasonCode string

const (
	ReasonPublicReferralBonus ReasonCode = "public_referral_bonus"
	ReasonManualAdjustment    ReasonCode = "manual_adjustment"
)

// Valid reports whether the reason code is known
func (r ReasonCode) Valid() bool {
	switch r {
	case ReasonPublicReferralBonus, ReasonManualAdjustment:
		return true
	}
	return false
}

// Metadata is an open key-value bag attached to links and events
type Metadata map[string]any

// Well-known metadata keys
const (
	MetadataKeyCustomMessage       = "custom_message"
	MetadataKeyCampaignTag         = "campaign_tag"
	MetadataKeyComparisonID        = "comparison_id"
	MetadataKeySource              = "source"
	MetadataKeyDispatchRequestedAt = "dispatch_requested_at"
	MetadataKeyDispatchFailure     = "dispatch_failure"
)

// SharingLink is an issued, tokenized reference a user distributes
type SharingLink struct {
	ID           string     `json:"id"`
	SharerUserID string     `json:"sharer_user_id"`
	LinkType     LinkType   `json:"link_type"`
	UniqueToken  string     `json:"unique_token"`
	TargetEmail  *string    `json:"target_email,omitempty"`
	ReportID     *string    `json:"report_id,omitempty"`
	Status       LinkStatus `json:"status"`
	Metadata     Metadata   `json:"metadata"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	ShareURL     string     `json:"share_url,omitempty"`
	QRDataURL    string     `json:"qr_data_url,omitempty"`
}

// IsExpired reports whether the link's expiry is in the past relative to now
func (l *SharingLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// EffectiveStatus returns the status a reader should observe at now.
// A past expiry wins over the stored status unless the link was revoked.
func (l *SharingLink) EffectiveStatus(now time.Time) LinkStatus {
	if l.Status == LinkStatusRevoked {
		return l.Status
	}
	if l.IsExpired(now) {
		return LinkStatusExpired
	}
	return l.Status
}

// IsUsable reports whether recipients may still interact with the link
func (l *SharingLink) IsUsable(now time.Time) bool {
	switch l.EffectiveStatus(now) {
	case LinkStatusExpired, LinkStatusRevoked, LinkStatusFailed:
		return false
	}
	return true
}

// LinkEvent is an immutable record of an interaction against a link
type LinkEvent struct {
	ID              string    `json:"id"`
	LinkID          string    `json:"link_id"`
	RecipientUserID *string   `json:"recipient_user_id,omitempty"`
	EventType       EventType `json:"event_type"`
	IPAddress       *string   `json:"ip_address,omitempty"`
	UserAgent       *string   `json:"user_agent,omitempty"`
	Metadata        Metadata  `json:"metadata"`
	CreatedAt       time.Time `json:"created_at"`
}

// BonusAccount is a user's running token balance
type BonusAccount struct {
	UserID       string    `json:"user_id"`
	TokenBalance int64     `json:"token_balance"`
	LastUpdated  time.Time `json:"last_updated"`
}

// BonusTransaction is an append-only ledger entry
type BonusTransaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TransactionType TransactionType `json:"transaction_type"`
	TokensAmount    int64           `json:"tokens_amount"`
	ReasonCode      ReasonCode      `json:"reason_code"`
	Description     string          `json:"description"`
	RelatedLinkID   *string         `json:"related_link_id,omitempty"`
	RelatedEventID  *string         `json:"related_event_id,omitempty"`
	IdempotencyKey  *string         `json:"idempotency_key,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
