package ledger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/metrics"
	"github.com/traittune/sharing/internal/store"
)

// AwardInput describes a credit to a user's bonus account
type AwardInput struct {
	UserID         string
	TokensAmount   int64
	ReasonCode     domain.ReasonCode
	RelatedLinkID  *string
	RelatedEventID *string
	// Description defaults to "<n> tokens awarded for <reason>"
	Description *string
	// IdempotencyKey makes repeated awards for the same cause return the first transaction
	IdempotencyKey *string
}

// Ledger maintains per-user token balances and their transaction history
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Award credits tokens to a user and records the transaction atomically
	Award(ctx context.Context, input AwardInput) (*domain.BonusTransaction, error)
	// GetBalance returns the user's account, or nil if the user was never credited
	GetBalance(ctx context.Context, userID string) (*domain.BonusAccount, error)
	// GetTransactions returns the user's transactions, oldest first
	GetTransactions(ctx context.Context, userID string) ([]domain.BonusTransaction, error)
}

type ledger struct {
	store store.LedgerStore
	clock adapter.Clock
	ids   adapter.IDGenerator
}

// New creates a Ledger backed by the given store
func New(store store.LedgerStore, clock adapter.Clock, ids adapter.IDGenerator) Ledger {
	return &ledger{
		store: store,
		clock: clock,
		ids:   ids,
	}
}

// DefaultDescription returns the description used when an award carries none
func DefaultDescription(amount int64, reason domain.ReasonCode) string {
	return fmt.Sprintf("%d tokens awarded for %s", amount, reason)
}

// Award credits tokens to a user
func (l *ledger) Award(ctx context.Context, input AwardInput) (*domain.BonusTransaction, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domain.NewValidationError("user_id", "is required")
	}
	if input.TokensAmount <= 0 {
		return nil, domain.NewValidationError("tokens_amount", "must be positive")
	}
	if !input.ReasonCode.Valid() {
		return nil, domain.NewValidationError("reason_code", fmt.Sprintf("unknown reason code %q", input.ReasonCode))
	}

	description := DefaultDescription(input.TokensAmount, input.ReasonCode)
	if input.Description != nil && *input.Description != "" {
		description = *input.Description
	}

	now := l.clock.Now()
	tx := &domain.BonusTransaction{
		ID:              l.ids.NewSortableID(now),
		UserID:          input.UserID,
		TransactionType: domain.TransactionTypeCredit,
		TokensAmount:    input.TokensAmount,
		ReasonCode:      input.ReasonCode,
		Description:     description,
		RelatedLinkID:   input.RelatedLinkID,
		RelatedEventID:  input.RelatedEventID,
		IdempotencyKey:  input.IdempotencyKey,
		CreatedAt:       now,
	}

	stored, created, err := l.store.CreditAccount(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to award bonus tokens: %w", err)
	}

	if !created {
		logger.InfoCtx(ctx, "Bonus award already recorded",
			zap.String("user_id", input.UserID),
			zap.String("transaction_id", stored.ID),
			zap.String("idempotency_key", domain.StringValue(input.IdempotencyKey)),
		)
		return stored, nil
	}

	metrics.BonusTokensAwarded.WithLabelValues(string(input.ReasonCode)).Add(float64(input.TokensAmount))
	logger.InfoCtx(ctx, "Bonus tokens awarded",
		zap.String("user_id", input.UserID),
		zap.Int64("tokens_amount", input.TokensAmount),
		zap.String("reason_code", string(input.ReasonCode)),
		zap.String("transaction_id", stored.ID),
	)

	return stored, nil
}

// GetBalance returns the user's account or nil
func (l *ledger) GetBalance(ctx context.Context, userID string) (*domain.BonusAccount, error) {
	account, err := l.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonus balance: %w", err)
	}
	return account, nil
}

// GetTransactions returns the user's transactions, oldest first
func (l *ledger) GetTransactions(ctx context.Context, userID string) ([]domain.BonusTransaction, error) {
	txs, err := l.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonus transactions: %w", err)
	}
	return txs, nil
}
