package dispatch

import (
	"context"
)

// Outcome describes what a dispatcher did with a request
type Outcome string

const (
	// OutcomeDelivered means the email was handed to the mail provider and is confirmed
	OutcomeDelivered Outcome = "delivered"
	// OutcomeAccepted means the request was queued; confirmation arrives later
	OutcomeAccepted Outcome = "accepted"
)

// Request is an email dispatch request for a private email link
type Request struct {
	LinkID        string
	TargetEmail   string
	Token         string
	ShareURL      string
	CustomMessage *string
}

// Result is returned by a successful Dispatch
type Result struct {
	Outcome Outcome
}

// Dispatcher delivers private email links to their recipients
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch sends or enqueues the email for a link.
	// An error means the dispatch was not delivered and will not be retried.
	Dispatch(ctx context.Context, req Request) (Result, error)
}
