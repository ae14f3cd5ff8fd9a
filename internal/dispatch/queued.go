package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/messaging"
)

type queued struct {
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewQueued returns a dispatcher that publishes dispatch requests to the message broker.
// A mail worker consumes them and reports back through the dispatch confirmation endpoint.
func NewQueued(publisher messaging.Publisher, clock adapter.Clock) Dispatcher {
	return &queued{
		publisher: publisher,
		clock:     clock,
	}
}

func (d *queued) Dispatch(ctx context.Context, req Request) (Result, error) {
	msg := &messaging.DispatchRequestMessage{
		LinkID:        req.LinkID,
		TargetEmail:   req.TargetEmail,
		Token:         req.Token,
		ShareURL:      req.ShareURL,
		CustomMessage: req.CustomMessage,
		RequestedAt:   d.clock.Now(),
	}

	if err := d.publisher.PublishDispatchRequest(ctx, msg); err != nil {
		return Result{}, fmt.Errorf("failed to enqueue email dispatch: %w", err)
	}

	logger.InfoCtx(ctx, "Email dispatch queued", zap.String("link_id", req.LinkID))

	return Result{Outcome: OutcomeAccepted}, nil
}
