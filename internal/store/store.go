package store

import (
	"context"
	"errors"
	"time"

	"github.com/traittune/sharing/internal/domain"
)

// ErrDuplicateToken is returned when a link is created with a token that is already taken
var ErrDuplicateToken = errors.New("duplicate link token")

// UpdateLinkStatusInput describes a status transition for a link
type UpdateLinkStatusInput struct {
	LinkID    string
	Status    domain.LinkStatus
	UpdatedAt time.Time
	// FromStatus, when set, makes the update conditional on the current stored status
	FromStatus *domain.LinkStatus
	// Metadata entries are merged into the link's metadata
	Metadata domain.Metadata
}

// LinkStore persists sharing links
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=LinkStore=MockLinkStore,EventStore=MockEventStore,LedgerStore=MockLedgerStore,Store=MockStore
type LinkStore interface {
	// CreateLink inserts a new link. Returns ErrDuplicateToken if the token is taken.
	CreateLink(ctx context.Context, link *domain.SharingLink) error
	// GetLinkByID returns the link or nil if it does not exist
	GetLinkByID(ctx context.Context, id string) (*domain.SharingLink, error)
	// GetLinkByToken returns the link or nil if no link has the token
	GetLinkByToken(ctx context.Context, token string) (*domain.SharingLink, error)
	// ListLinksBySharer returns a sharer's links, newest first
	ListLinksBySharer(ctx context.Context, sharerUserID string) ([]domain.SharingLink, error)
	// UpdateLinkStatus applies a status transition, returning false when no link matched
	UpdateLinkStatus(ctx context.Context, input UpdateLinkStatusInput) (bool, error)
}

// EventStore persists the append-only link event log
type EventStore interface {
	// AppendEvent appends an event. Events are never updated or deleted.
	AppendEvent(ctx context.Context, event *domain.LinkEvent) error
	// ListEventsByLink returns a link's events ordered by creation time, then insertion order
	ListEventsByLink(ctx context.Context, linkID string) ([]domain.LinkEvent, error)
}

// LedgerStore persists bonus accounts and their transaction history
type LedgerStore interface {
	// CreditAccount atomically adds the transaction amount to the user's balance, creating
	// the account if needed, and appends the transaction. When the transaction carries an
	// idempotency key that was already used, the stored transaction is returned with
	// created=false and the balance is left unchanged.
	CreditAccount(ctx context.Context, tx *domain.BonusTransaction) (stored *domain.BonusTransaction, created bool, err error)
	// GetAccount returns the user's account or nil if the user was never credited
	GetAccount(ctx context.Context, userID string) (*domain.BonusAccount, error)
	// ListTransactions returns a user's transactions ordered by creation time
	ListTransactions(ctx context.Context, userID string) ([]domain.BonusTransaction, error)
}

// Store combines every persistence concern of the sharing service
type Store interface {
	LinkStore
	EventStore
	LedgerStore
}
