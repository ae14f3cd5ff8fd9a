package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SharingLink represents the sharing_links table - every link issued by a sharer
type SharingLink struct {
	// ID is the link identifier (uuid)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// SharerUserID is the user who issued the link
	SharerUserID string `gorm:"column:sharer_user_id;not null;type:text;index:idx_sharing_links_sharer_created,priority:1"`
	// LinkType is one of private_email, private_onetime, public, qr
	LinkType string `gorm:"column:link_type;not null;type:text"`
	// UniqueToken is the opaque token embedded in the link URL; never reassigned
	UniqueToken string `gorm:"column:unique_token;not null;type:text;uniqueIndex:idx_sharing_links_unique_token"`
	// TargetEmail is only set for private_email links
	TargetEmail *string `gorm:"column:target_email;type:text"`
	// ReportID optionally references an external report
	ReportID *string `gorm:"column:report_id;type:text"`
	// Status is the stored lifecycle status
	Status string `gorm:"column:status;not null;type:text"`
	// Metadata holds the open key-value bag (custom message, campaign tag, ...)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb;not null;default:'{}'"`
	// ExpiresAt is the optional expiry instant
	ExpiresAt *time.Time `gorm:"column:expires_at;type:timestamptz"`
	// CreatedAt is the timestamp when this link was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz;index:idx_sharing_links_sharer_created,priority:2"`
	// UpdatedAt is the timestamp when this link was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the SharingLink model
func (SharingLink) TableName() string {
	return "sharing_links"
}
