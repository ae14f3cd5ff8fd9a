package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testIDs = adapter.NewIDGenerator()

// testNow returns the current time at the precision PostgreSQL stores
func testNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func buildTestLink(sharer string, linkType domain.LinkType, createdAt time.Time) *domain.SharingLink {
	return &domain.SharingLink{
		ID:           uuid.NewString(),
		SharerUserID: sharer,
		LinkType:     linkType,
		UniqueToken:  uuid.NewString(),
		Status:       domain.LinkStatusActive,
		Metadata:     domain.Metadata{domain.MetadataKeyCampaignTag: "spring"},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func buildTestEvent(linkID string, eventType domain.EventType, createdAt time.Time) *domain.LinkEvent {
	return &domain.LinkEvent{
		ID:        testIDs.NewSortableID(createdAt),
		LinkID:    linkID,
		EventType: eventType,
		Metadata:  domain.Metadata{},
		CreatedAt: createdAt,
	}
}

func buildTestTransaction(userID string, amount int64, createdAt time.Time, key *string) *domain.BonusTransaction {
	return &domain.BonusTransaction{
		ID:              testIDs.NewSortableID(createdAt),
		UserID:          userID,
		TransactionType: domain.TransactionTypeCredit,
		TokensAmount:    amount,
		ReasonCode:      domain.ReasonPublicReferralBonus,
		Description:     fmt.Sprintf("%d tokens awarded for %s", amount, domain.ReasonPublicReferralBonus),
		IdempotencyKey:  key,
		CreatedAt:       createdAt,
	}
}

// =============================================================================
// Links
// =============================================================================

func testCreateAndGetLink(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()
	expires := now.Add(48 * time.Hour)

	link := buildTestLink("sharer-"+uuid.NewString(), domain.LinkTypePrivateEmail, now)
	link.TargetEmail = domain.StringPtr("friend@example.com")
	link.ReportID = domain.StringPtr("report-1")
	link.ExpiresAt = &expires
	link.Status = domain.LinkStatusGenerated

	require.NoError(t, store.CreateLink(ctx, link))

	byID, err := store.GetLinkByID(ctx, link.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, link.UniqueToken, byID.UniqueToken)
	assert.Equal(t, domain.LinkTypePrivateEmail, byID.LinkType)
	assert.Equal(t, domain.LinkStatusGenerated, byID.Status)
	assert.Equal(t, "friend@example.com", domain.StringValue(byID.TargetEmail))
	assert.Equal(t, "report-1", domain.StringValue(byID.ReportID))
	assert.Equal(t, "spring", byID.Metadata[domain.MetadataKeyCampaignTag])
	require.NotNil(t, byID.ExpiresAt)
	assert.True(t, expires.Equal(*byID.ExpiresAt))
	assert.True(t, now.Equal(byID.CreatedAt))

	byToken, err := store.GetLinkByToken(ctx, link.UniqueToken)
	require.NoError(t, err)
	require.NotNil(t, byToken)
	assert.Equal(t, link.ID, byToken.ID)

	// Returned values are copies
	byID.Metadata["mutated"] = true
	again, err := store.GetLinkByID(ctx, link.ID)
	require.NoError(t, err)
	_, mutated := again.Metadata["mutated"]
	assert.False(t, mutated)
}

func testGetMissingLink(t *testing.T, store Store) {
	ctx := context.Background()

	byID, err := store.GetLinkByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, byID)

	byToken, err := store.GetLinkByToken(ctx, "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, byToken)
}

func testDuplicateToken(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	first := buildTestLink("sharer-"+uuid.NewString(), domain.LinkTypePublic, now)
	require.NoError(t, store.CreateLink(ctx, first))

	second := buildTestLink(first.SharerUserID, domain.LinkTypePublic, now)
	second.UniqueToken = first.UniqueToken
	err := store.CreateLink(ctx, second)
	require.ErrorIs(t, err, ErrDuplicateToken)

	// The store keeps working after the rejected insert
	third := buildTestLink(first.SharerUserID, domain.LinkTypePublic, now)
	require.NoError(t, store.CreateLink(ctx, third))

	got, err := store.GetLinkByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testListLinksBySharer(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()
	sharer := "sharer-" + uuid.NewString()

	oldest := buildTestLink(sharer, domain.LinkTypePublic, now.Add(-2*time.Hour))
	middle := buildTestLink(sharer, domain.LinkTypeQR, now.Add(-time.Hour))
	newest := buildTestLink(sharer, domain.LinkTypePrivateOnetime, now)
	other := buildTestLink("sharer-"+uuid.NewString(), domain.LinkTypePublic, now)

	for _, l := range []*domain.SharingLink{middle, oldest, other, newest} {
		require.NoError(t, store.CreateLink(ctx, l))
	}

	links, err := store.ListLinksBySharer(ctx, sharer)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, newest.ID, links[0].ID)
	assert.Equal(t, middle.ID, links[1].ID)
	assert.Equal(t, oldest.ID, links[2].ID)

	none, err := store.ListLinksBySharer(ctx, "sharer-without-links")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testUpdateLinkStatus(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	link := buildTestLink("sharer-"+uuid.NewString(), domain.LinkTypePrivateEmail, now)
	link.Status = domain.LinkStatusGenerated
	require.NoError(t, store.CreateLink(ctx, link))

	t.Run("unconditional with metadata merge", func(t *testing.T) {
		later := now.Add(time.Minute)
		ok, err := store.UpdateLinkStatus(ctx, UpdateLinkStatusInput{
			LinkID:    link.ID,
			Status:    domain.LinkStatusSent,
			UpdatedAt: later,
			Metadata:  domain.Metadata{domain.MetadataKeyDispatchRequestedAt: later.Format(time.RFC3339)},
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetLinkByID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LinkStatusSent, got.Status)
		assert.True(t, later.Equal(got.UpdatedAt))
		assert.Equal(t, "spring", got.Metadata[domain.MetadataKeyCampaignTag])
		assert.Equal(t, later.Format(time.RFC3339), got.Metadata[domain.MetadataKeyDispatchRequestedAt])
	})

	t.Run("conditional mismatch", func(t *testing.T) {
		from := domain.LinkStatusGenerated
		ok, err := store.UpdateLinkStatus(ctx, UpdateLinkStatusInput{
			LinkID:     link.ID,
			Status:     domain.LinkStatusFailed,
			UpdatedAt:  now,
			FromStatus: &from,
		})
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.GetLinkByID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LinkStatusSent, got.Status)
	})

	t.Run("conditional match", func(t *testing.T) {
		from := domain.LinkStatusSent
		ok, err := store.UpdateLinkStatus(ctx, UpdateLinkStatusInput{
			LinkID:     link.ID,
			Status:     domain.LinkStatusRevoked,
			UpdatedAt:  now,
			FromStatus: &from,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing link", func(t *testing.T) {
		ok, err := store.UpdateLinkStatus(ctx, UpdateLinkStatusInput{
			LinkID:    uuid.NewString(),
			Status:    domain.LinkStatusRevoked,
			UpdatedAt: now,
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// =============================================================================
// Events
// =============================================================================

func testAppendAndListEvents(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	link := buildTestLink("sharer-"+uuid.NewString(), domain.LinkTypePublic, now)
	require.NoError(t, store.CreateLink(ctx, link))

	first := buildTestEvent(link.ID, domain.EventTypePublicLinkGenerated, now)
	second := buildTestEvent(link.ID, domain.EventTypeClicked, now.Add(time.Second))
	second.IPAddress = domain.StringPtr("203.0.113.7")
	second.UserAgent = domain.StringPtr("Mozilla/5.0")
	// Same timestamp as second; insertion order decides
	third := buildTestEvent(link.ID, domain.EventTypeRegisteredViaLink, now.Add(time.Second))
	third.RecipientUserID = domain.StringPtr("recipient-1")
	third.Metadata = domain.Metadata{domain.MetadataKeySource: "web"}

	for _, e := range []*domain.LinkEvent{first, second, third} {
		require.NoError(t, store.AppendEvent(ctx, e))
	}

	events, err := store.ListEventsByLink(ctx, link.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
	assert.Equal(t, third.ID, events[2].ID)

	assert.Equal(t, domain.EventTypeClicked, events[1].EventType)
	assert.Equal(t, "203.0.113.7", domain.StringValue(events[1].IPAddress))
	assert.Equal(t, "Mozilla/5.0", domain.StringValue(events[1].UserAgent))
	assert.Equal(t, "recipient-1", domain.StringValue(events[2].RecipientUserID))
	assert.Equal(t, "web", events[2].Metadata[domain.MetadataKeySource])

	empty, err := store.ListEventsByLink(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// =============================================================================
// Ledger
// =============================================================================

func testCreditAccount(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()
	user := "user-" + uuid.NewString()

	account, err := store.GetAccount(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, account)

	first := buildTestTransaction(user, 10, now, nil)
	stored, created, err := store.CreditAccount(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, first.ID, stored.ID)

	second := buildTestTransaction(user, 5, now.Add(time.Second), nil)
	second.ReasonCode = domain.ReasonManualAdjustment
	second.RelatedLinkID = domain.StringPtr("link-1")
	second.RelatedEventID = domain.StringPtr("event-1")
	_, created, err = store.CreditAccount(ctx, second)
	require.NoError(t, err)
	assert.True(t, created)

	account, err = store.GetAccount(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, int64(15), account.TokenBalance)
	assert.True(t, second.CreatedAt.Equal(account.LastUpdated))

	txs, err := store.ListTransactions(ctx, user)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, first.ID, txs[0].ID)
	assert.Equal(t, second.ID, txs[1].ID)
	assert.Equal(t, domain.ReasonManualAdjustment, txs[1].ReasonCode)
	assert.Equal(t, "link-1", domain.StringValue(txs[1].RelatedLinkID))
	assert.Equal(t, "event-1", domain.StringValue(txs[1].RelatedEventID))
	assert.Equal(t, domain.TransactionTypeCredit, txs[0].TransactionType)

	none, err := store.ListTransactions(ctx, "user-without-transactions")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testCreditAccountIdempotency(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()
	user := "user-" + uuid.NewString()
	key := "public_referral_bonus:" + uuid.NewString() + ":" + user

	first := buildTestTransaction(user, 10, now, &key)
	stored, created, err := store.CreditAccount(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	retry := buildTestTransaction(user, 10, now.Add(time.Second), &key)
	again, created, err := store.CreditAccount(ctx, retry)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored.ID, again.ID)

	account, err := store.GetAccount(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(10), account.TokenBalance)

	txs, err := store.ListTransactions(ctx, user)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func testConcurrentCredits(t *testing.T, store Store) {
	ctx := context.Background()
	user := "user-" + uuid.NewString()

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := store.CreditAccount(ctx, buildTestTransaction(user, 3, testNow(), nil))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	account, err := store.GetAccount(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*3), account.TokenBalance)

	txs, err := store.ListTransactions(ctx, user)
	require.NoError(t, err)
	assert.Len(t, txs, workers)
}

// RunStoreTests runs the shared store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateAndGetLink", testCreateAndGetLink},
		{"GetMissingLink", testGetMissingLink},
		{"DuplicateToken", testDuplicateToken},
		{"ListLinksBySharer", testListLinksBySharer},
		{"UpdateLinkStatus", testUpdateLinkStatus},
		{"AppendAndListEvents", testAppendAndListEvents},
		{"CreditAccount", testCreditAccount},
		{"CreditAccountIdempotency", testCreditAccountIdempotency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
