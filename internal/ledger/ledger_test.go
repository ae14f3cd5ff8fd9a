package ledger_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/ledger"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/mocks"
	"github.com/traittune/sharing/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestLedger() ledger.Ledger {
	return ledger.New(store.NewMemoryStore(), adapter.NewClock(), adapter.NewIDGenerator())
}

func TestLedger_AwardSumsAndOrders(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	first, err := l.Award(ctx, ledger.AwardInput{
		UserID:       "user-1",
		TokensAmount: 10,
		ReasonCode:   domain.ReasonPublicReferralBonus,
	})
	require.NoError(t, err)

	second, err := l.Award(ctx, ledger.AwardInput{
		UserID:       "user-1",
		TokensAmount: 5,
		ReasonCode:   domain.ReasonManualAdjustment,
	})
	require.NoError(t, err)

	balance, err := l.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(15), balance.TokenBalance)

	txs, err := l.GetTransactions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, first.ID, txs[0].ID)
	assert.Equal(t, second.ID, txs[1].ID)
	assert.Equal(t, int64(10), txs[0].TokensAmount)
	assert.Equal(t, int64(5), txs[1].TokensAmount)
	assert.Equal(t, domain.TransactionTypeCredit, txs[0].TransactionType)
}

func TestLedger_AwardDefaultDescription(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	tx, err := l.Award(ctx, ledger.AwardInput{
		UserID:       "user-1",
		TokensAmount: 10,
		ReasonCode:   domain.ReasonPublicReferralBonus,
	})
	require.NoError(t, err)
	assert.Equal(t, "10 tokens awarded for public_referral_bonus", tx.Description)

	custom, err := l.Award(ctx, ledger.AwardInput{
		UserID:       "user-1",
		TokensAmount: 3,
		ReasonCode:   domain.ReasonManualAdjustment,
		Description:  domain.StringPtr("Support goodwill"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Support goodwill", custom.Description)
}

func TestLedger_AwardCarriesRelations(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	tx, err := l.Award(ctx, ledger.AwardInput{
		UserID:         "user-1",
		TokensAmount:   10,
		ReasonCode:     domain.ReasonPublicReferralBonus,
		RelatedLinkID:  domain.StringPtr("link-1"),
		RelatedEventID: domain.StringPtr("event-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "link-1", domain.StringValue(tx.RelatedLinkID))
	assert.Equal(t, "event-1", domain.StringValue(tx.RelatedEventID))
	assert.False(t, tx.CreatedAt.IsZero())
	assert.NotEmpty(t, tx.ID)
}

func TestLedger_AwardValidation(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	tests := []struct {
		name  string
		input ledger.AwardInput
		field string
	}{
		{
			name:  "zero amount",
			input: ledger.AwardInput{UserID: "user-1", TokensAmount: 0, ReasonCode: domain.ReasonPublicReferralBonus},
			field: "tokens_amount",
		},
		{
			name:  "negative amount",
			input: ledger.AwardInput{UserID: "user-1", TokensAmount: -5, ReasonCode: domain.ReasonPublicReferralBonus},
			field: "tokens_amount",
		},
		{
			name:  "missing user",
			input: ledger.AwardInput{UserID: " ", TokensAmount: 5, ReasonCode: domain.ReasonPublicReferralBonus},
			field: "user_id",
		},
		{
			name:  "unknown reason",
			input: ledger.AwardInput{UserID: "user-1", TokensAmount: 5, ReasonCode: "birthday"},
			field: "reason_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Award(ctx, tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	balance, err := l.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, balance)
}

func TestLedger_AwardIdempotent(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	key := "public_referral_bonus:link-1:recipient-1"

	first, err := l.Award(ctx, ledger.AwardInput{
		UserID:         "sharer-1",
		TokensAmount:   10,
		ReasonCode:     domain.ReasonPublicReferralBonus,
		IdempotencyKey: &key,
	})
	require.NoError(t, err)

	second, err := l.Award(ctx, ledger.AwardInput{
		UserID:         "sharer-1",
		TokensAmount:   10,
		ReasonCode:     domain.ReasonPublicReferralBonus,
		IdempotencyKey: &key,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	balance, err := l.GetBalance(ctx, "sharer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance.TokenBalance)
}

func TestLedger_ConcurrentAwards(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	const awards = 50
	var wg sync.WaitGroup
	for i := 0; i < awards; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Award(ctx, ledger.AwardInput{
				UserID:       "user-1",
				TokensAmount: 2,
				ReasonCode:   domain.ReasonManualAdjustment,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := l.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(awards*2), balance.TokenBalance)

	txs, err := l.GetTransactions(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, txs, awards)

	var sum int64
	for _, tx := range txs {
		sum += tx.TokensAmount
	}
	assert.Equal(t, balance.TokenBalance, sum)
}

func TestLedger_UnknownUser(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	balance, err := l.GetBalance(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, balance)

	txs, err := l.GetTransactions(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLedger_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockLedgerStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)

	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	ids.EXPECT().NewSortableID(now).Return("01J0TX")
	st.EXPECT().
		CreditAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx *domain.BonusTransaction) (*domain.BonusTransaction, bool, error) {
			assert.Equal(t, "01J0TX", tx.ID)
			assert.Equal(t, now, tx.CreatedAt)
			return nil, false, errors.New("connection reset")
		})

	l := ledger.New(st, clock, ids)
	_, err := l.Award(context.Background(), ledger.AwardInput{
		UserID:       "user-1",
		TokensAmount: 10,
		ReasonCode:   domain.ReasonPublicReferralBonus,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to award bonus tokens")
}
