package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LinkEvent represents the link_events table - append-only interactions against a link
type LinkEvent struct {
	// ID is a ULID; its lexical order follows insertion order
	ID string `gorm:"column:id;primaryKey;type:text"`
	// LinkID references the link this event was recorded against
	LinkID string `gorm:"column:link_id;not null;type:text;index:idx_link_events_link_created,priority:1"`
	// RecipientUserID is the interacting user, when known
	RecipientUserID *string `gorm:"column:recipient_user_id;type:text"`
	// EventType is one of the closed set of event types
	EventType string  `gorm:"column:event_type;not null;type:text"`
	IPAddress *string `gorm:"column:ip_address;type:text"`
	UserAgent *string `gorm:"column:user_agent;type:text"`
	// Metadata holds event-specific values
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb;not null;default:'{}'"`
	// CreatedAt is when the interaction was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz;index:idx_link_events_link_created,priority:2"`

	// Associations
	Link SharingLink `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the LinkEvent model
func (LinkEvent) TableName() string {
	return "link_events"
}
