package eventlog_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/eventlog"
	"github.com/traittune/sharing/internal/ledger"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/messaging"
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

type testEventLog struct {
	store  store.Store
	ledger ledger.Ledger
	log    eventlog.Log
}

func setupTestEventLog(t *testing.T, cfg eventlog.Config, publisher messaging.Publisher) *testEventLog {
	st := store.NewMemoryStore()
	clock := adapter.NewClock()
	ids := adapter.NewIDGenerator()
	l := ledger.New(st, clock, ids)
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}

	return &testEventLog{
		store:  st,
		ledger: l,
		log:    eventlog.New(cfg, st, st, l, publisher, clock, ids),
	}
}

func createTestLink(t *testing.T, st store.Store, sharer string, linkType domain.LinkType) *domain.SharingLink {
	now := time.Now().UTC()
	link := &domain.SharingLink{
		ID:           uuid.NewString(),
		SharerUserID: sharer,
		LinkType:     linkType,
		UniqueToken:  uuid.NewString(),
		Status:       domain.LinkStatusActive,
		Metadata:     domain.Metadata{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.CreateLink(context.Background(), link))
	return link
}

func TestEventLog_PublicReferralScenario(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePublic)

	sequence := []domain.EventType{
		domain.EventTypeClicked,
		domain.EventTypeRegisteredViaLink,
		domain.EventTypeTestStartedViaLink,
		domain.EventTypeTestCompletedViaLink,
	}
	var completed *domain.LinkEvent
	for _, et := range sequence {
		event, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
			LinkID:          link.ID,
			EventType:       et,
			RecipientUserID: domain.StringPtr("R"),
		})
		require.NoError(t, err)
		completed = event
	}

	balance, err := tl.ledger.GetBalance(ctx, "S")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(10), balance.TokenBalance)

	events, err := tl.log.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	require.Len(t, events, 4)
	for i, et := range sequence {
		assert.Equal(t, et, events[i].EventType)
		assert.Equal(t, "R", domain.StringValue(events[i].RecipientUserID))
	}

	txs, err := tl.ledger.GetTransactions(ctx, "S")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.ReasonPublicReferralBonus, txs[0].ReasonCode)
	assert.Equal(t, int64(10), txs[0].TokensAmount)
	assert.Equal(t, link.ID, domain.StringValue(txs[0].RelatedLinkID))
	assert.Equal(t, completed.ID, domain.StringValue(txs[0].RelatedEventID))
}

func TestEventLog_OnetimeLinkEarnsNoBonus(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePrivateOnetime)

	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          link.ID,
		EventType:       domain.EventTypeTestCompletedViaLink,
		RecipientUserID: domain.StringPtr("R"),
	})
	require.NoError(t, err)

	txs, err := tl.ledger.GetTransactions(ctx, "S")
	require.NoError(t, err)
	assert.Empty(t, txs)

	balance, err := tl.ledger.GetBalance(ctx, "S")
	require.NoError(t, err)
	assert.Nil(t, balance)
}

func TestEventLog_PublicCompletionWithoutRecipientEarnsNoBonus(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePublic)

	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:    link.ID,
		EventType: domain.EventTypeTestCompletedViaLink,
	})
	require.NoError(t, err)

	txs, err := tl.ledger.GetTransactions(ctx, "S")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestEventLog_RepeatedCompletionAwardsOnce(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePublic)

	for i := 0; i < 3; i++ {
		_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
			LinkID:          link.ID,
			EventType:       domain.EventTypeTestCompletedViaLink,
			RecipientUserID: domain.StringPtr("R"),
		})
		require.NoError(t, err)
	}

	// A different recipient earns its own bonus
	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          link.ID,
		EventType:       domain.EventTypeTestCompletedViaLink,
		RecipientUserID: domain.StringPtr("R2"),
	})
	require.NoError(t, err)

	balance, err := tl.ledger.GetBalance(ctx, "S")
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance.TokenBalance)

	events, err := tl.log.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestEventLog_ConfiguredBonusAmount(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{PublicReferralBonus: 25}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePublic)

	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          link.ID,
		EventType:       domain.EventTypeTestCompletedViaLink,
		RecipientUserID: domain.StringPtr("R"),
	})
	require.NoError(t, err)

	balance, err := tl.ledger.GetBalance(ctx, "S")
	require.NoError(t, err)
	assert.Equal(t, int64(25), balance.TokenBalance)
}

func TestEventLog_UnknownEventType(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePublic)

	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:    link.ID,
		EventType: "shared_on_social",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	events, err := tl.log.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventLog_MissingLink(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)

	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:    "does-not-exist",
		EventType: domain.EventTypeClicked,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "does-not-exist", nf.ID)

	_, err = tl.log.LogEvent(ctx, eventlog.LogEventInput{EventType: domain.EventTypeClicked})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventLog_EventFields(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypeQR)

	event, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:    link.ID,
		EventType: domain.EventTypeClicked,
		IPAddress: domain.StringPtr("198.51.100.4"),
		UserAgent: domain.StringPtr("curl/8.0"),
		Metadata:  domain.Metadata{domain.MetadataKeySource: "poster"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Nil(t, event.RecipientUserID)

	events, err := tl.log.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "198.51.100.4", domain.StringValue(events[0].IPAddress))
	assert.Equal(t, "curl/8.0", domain.StringValue(events[0].UserAgent))
	assert.Equal(t, "poster", events[0].Metadata[domain.MetadataKeySource])
}

func TestEventLog_ConcurrentEventsStayOrdered(t *testing.T) {
	ctx := context.Background()
	tl := setupTestEventLog(t, eventlog.Config{}, nil)
	link := createTestLink(t, tl.store, "S", domain.LinkTypePublic)

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{
				LinkID:    link.ID,
				EventType: domain.EventTypeClicked,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	events, err := tl.log.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	require.Len(t, events, n)
	for i := 1; i < n; i++ {
		assert.False(t, events[i].CreatedAt.Before(events[i-1].CreatedAt))
		assert.Less(t, events[i-1].ID, events[i].ID)
	}
}

func TestEventLog_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	publisher := mocks.NewMockPublisher(ctrl)
	tl := setupTestEventLog(t, eventlog.Config{}, publisher)
	link := createTestLink(t, tl.store, "S", domain.LinkTypeQR)

	publisher.EXPECT().
		PublishLinkEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *messaging.LinkEventMessage) error {
			assert.Equal(t, link.ID, msg.Event.LinkID)
			assert.Equal(t, domain.EventTypeClicked, msg.Event.EventType)
			assert.Equal(t, domain.LinkTypeQR, msg.LinkType)
			assert.Equal(t, "S", msg.SharerUserID)
			return errors.New("nats: timeout")
		})

	// A publish failure does not fail the call
	_, err := tl.log.LogEvent(ctx, eventlog.LogEventInput{LinkID: link.ID, EventType: domain.EventTypeClicked})
	require.NoError(t, err)
}

func TestEventLog_AwardFailureDoesNotFailLogEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	st := store.NewMemoryStore()
	mockLedger := mocks.NewMockLedger(ctrl)
	log := eventlog.New(eventlog.Config{}, st, st, mockLedger, messaging.NewNopPublisher(), adapter.NewClock(), adapter.NewIDGenerator())
	link := createTestLink(t, st, "S", domain.LinkTypePublic)

	mockLedger.EXPECT().
		Award(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input ledger.AwardInput) (*domain.BonusTransaction, error) {
			assert.Equal(t, "S", input.UserID)
			assert.Equal(t, int64(10), input.TokensAmount)
			assert.Equal(t, domain.ReasonPublicReferralBonus, input.ReasonCode)
			assert.Equal(t, link.ID, domain.StringValue(input.RelatedLinkID))
			assert.Equal(t, eventlog.ReferralIdempotencyKey(link.ID, "R"), domain.StringValue(input.IdempotencyKey))
			return nil, errors.New("ledger unavailable")
		})

	event, err := log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          link.ID,
		EventType:       domain.EventTypeTestCompletedViaLink,
		RecipientUserID: domain.StringPtr("R"),
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	events, err := log.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventLog_AppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	links := mocks.NewMockStore(ctrl)
	events := mocks.NewMockEventStore(ctrl)
	// No ledger or publisher expectations: a failed append stops the pipeline
	mockLedger := mocks.NewMockLedger(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	log := eventlog.New(eventlog.Config{}, links, events, mockLedger, publisher, adapter.NewClock(), adapter.NewIDGenerator())

	link := &domain.SharingLink{
		ID:           "link-1",
		SharerUserID: "S",
		LinkType:     domain.LinkTypePublic,
		UniqueToken:  "token-1",
		Status:       domain.LinkStatusActive,
		Metadata:     domain.Metadata{},
	}
	links.EXPECT().GetLinkByID(gomock.Any(), "link-1").Return(link, nil)
	events.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	event, err := log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:          "link-1",
		EventType:       domain.EventTypeTestCompletedViaLink,
		RecipientUserID: domain.StringPtr("R"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append event")
	assert.Nil(t, event)
}

func TestEventLog_StoreReadFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	st := mocks.NewMockStore(ctrl)
	log := eventlog.New(eventlog.Config{}, st, st, mocks.NewMockLedger(ctrl), messaging.NewNopPublisher(), adapter.NewClock(), adapter.NewIDGenerator())

	st.EXPECT().GetLinkByID(gomock.Any(), "link-1").Return(nil, errors.New("connection reset"))
	event, err := log.LogEvent(ctx, eventlog.LogEventInput{
		LinkID:    "link-1",
		EventType: domain.EventTypeClicked,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, event)

	st.EXPECT().ListEventsByLink(gomock.Any(), "link-1").Return(nil, errors.New("connection reset"))
	events, err := log.GetEventsForLink(ctx, "link-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get events for link")
	assert.Nil(t, events)
}

func TestReferralIdempotencyKey(t *testing.T) {
	assert.Equal(t, "public_referral_bonus:link-1:user-9", eventlog.ReferralIdempotencyKey("link-1", "user-9"))
}
