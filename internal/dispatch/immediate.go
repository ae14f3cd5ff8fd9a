package dispatch

import (
	"context"

	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/logger"
)

type immediate struct{}

// NewImmediate returns a dispatcher that confirms every request synchronously.
// Delivery itself is out of this service's hands; the request is only logged.
func NewImmediate() Dispatcher {
	return &immediate{}
}

func (d *immediate) Dispatch(ctx context.Context, req Request) (Result, error) {
	logger.InfoCtx(ctx, "Email dispatched",
		zap.String("link_id", req.LinkID),
		zap.String("target_email", req.TargetEmail),
		zap.String("share_url", req.ShareURL),
	)

	return Result{Outcome: OutcomeDelivered}, nil
}
