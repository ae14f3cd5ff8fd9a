package messaging

import (
	"context"
	"time"

	"github.com/traittune/sharing/internal/domain"
)

// LinkEventMessage is published for every event appended to a link's log
type LinkEventMessage struct {
	Event        domain.LinkEvent `json:"event"`
	LinkType     domain.LinkType  `json:"link_type"`
	SharerUserID string           `json:"sharer_user_id"`
}

// DispatchRequestMessage asks the mail worker to deliver a private email link
type DispatchRequestMessage struct {
	LinkID        string    `json:"link_id"`
	TargetEmail   string    `json:"target_email"`
	Token         string    `json:"token"`
	ShareURL      string    `json:"share_url"`
	CustomMessage *string   `json:"custom_message,omitempty"`
	RequestedAt   time.Time `json:"requested_at"`
}

// Publisher defines the interface for publishing sharing messages to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishLinkEvent publishes an appended link event
	PublishLinkEvent(ctx context.Context, msg *LinkEventMessage) error
	// PublishDispatchRequest publishes an email dispatch request
	PublishDispatchRequest(ctx context.Context, msg *DispatchRequestMessage) error
	// Close closes the connection
	Close()
}
