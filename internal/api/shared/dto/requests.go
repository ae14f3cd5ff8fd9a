package dto

import (
	"fmt"
	"strings"

	apierrors "github.com/traittune/sharing/internal/api/shared/errors"
	"github.com/traittune/sharing/internal/domain"
)

// MAX_METADATA_KEYS bounds the metadata bag accepted on logged events
const MAX_METADATA_KEYS = 32

// stringMetadataKeys are well-known metadata keys whose values must be strings
var stringMetadataKeys = []string{
	domain.MetadataKeyCustomMessage,
	domain.MetadataKeyCampaignTag,
	domain.MetadataKeyComparisonID,
	domain.MetadataKeySource,
}

// ValidateMetadata checks the metadata bag at the API boundary
func ValidateMetadata(metadata map[string]any) error {
	if len(metadata) > MAX_METADATA_KEYS {
		return apierrors.NewValidationError(fmt.Sprintf("metadata allows at most %d keys", MAX_METADATA_KEYS))
	}
	for _, key := range stringMetadataKeys {
		v, ok := metadata[key]
		if !ok {
			continue
		}
		if _, isString := v.(string); !isString {
			return apierrors.NewValidationError(fmt.Sprintf("metadata.%s must be a string", key))
		}
	}
	return nil
}

// CreateEmailLinkRequest is the body for issuing a private email link
type CreateEmailLinkRequest struct {
	SharerUserID  string  `json:"sharer_user_id"`
	TargetEmail   string  `json:"target_email"`
	ReportID      *string `json:"report_id"`
	CustomMessage *string `json:"custom_message"`
}

// Validate validates the request body
func (r *CreateEmailLinkRequest) Validate() error {
	if strings.TrimSpace(r.TargetEmail) == "" {
		return apierrors.NewValidationError("target_email is required")
	}
	return nil
}

// CreateOnetimeLinkRequest is the body for issuing a one-time private link
type CreateOnetimeLinkRequest struct {
	SharerUserID   string  `json:"sharer_user_id"`
	ReportID       *string `json:"report_id"`
	ExpiresInHours *int    `json:"expires_in_hours"`
}

// Validate validates the request body
func (r *CreateOnetimeLinkRequest) Validate() error {
	if r.ExpiresInHours != nil && *r.ExpiresInHours < 0 {
		return apierrors.NewValidationError("expires_in_hours must not be negative")
	}
	return nil
}

// CreatePublicLinkRequest is the body for issuing a public link
type CreatePublicLinkRequest struct {
	SharerUserID string  `json:"sharer_user_id"`
	CampaignTag  *string `json:"campaign_tag"`
}

// CreateQRLinkRequest is the body for issuing a QR link
type CreateQRLinkRequest struct {
	SharerUserID string  `json:"sharer_user_id"`
	ReportID     *string `json:"report_id"`
}

// UpdateLinkStatusRequest is the body for changing a link's status
type UpdateLinkStatusRequest struct {
	Status domain.LinkStatus `json:"status"`
}

// Validate validates the request body
func (r *UpdateLinkStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid status: %q", r.Status))
	}
	return nil
}

// ConfirmDispatchRequest reports the outcome of a queued email dispatch
type ConfirmDispatchRequest struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason"`
}

// LogEventRequest is the body for recording an interaction
type LogEventRequest struct {
	EventType       domain.EventType `json:"event_type"`
	RecipientUserID *string          `json:"recipient_user_id"`
	Metadata        map[string]any   `json:"metadata"`
}

// Validate validates the request body
func (r *LogEventRequest) Validate() error {
	if !r.EventType.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid event_type: %q", r.EventType))
	}
	return ValidateMetadata(r.Metadata)
}

// ScanRequest is the body for resolving a QR scan
type ScanRequest struct {
	Token          string  `json:"token"`
	ScanningUserID *string `json:"scanning_user_id"`
}

// Validate validates the request body
func (r *ScanRequest) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return apierrors.NewValidationError("token is required")
	}
	return nil
}

// AwardRequest is the body for a manual token adjustment
type AwardRequest struct {
	TokensAmount   int64   `json:"tokens_amount"`
	Description    *string `json:"description"`
	RelatedLinkID  *string `json:"related_link_id"`
	IdempotencyKey *string `json:"idempotency_key"`
}

// Validate validates the request body
func (r *AwardRequest) Validate() error {
	if r.TokensAmount <= 0 {
		return apierrors.NewValidationError("tokens_amount must be positive")
	}
	return nil
}
