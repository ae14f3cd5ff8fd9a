package messaging

import "context"

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every message.
// It is used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishLinkEvent(ctx context.Context, msg *LinkEventMessage) error {
	return nil
}

func (nopPublisher) PublishDispatchRequest(ctx context.Context, msg *DispatchRequestMessage) error {
	return nil
}

func (nopPublisher) Close() {}
