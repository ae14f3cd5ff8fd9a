package registry_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/dispatch"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/eventlog"
	"github.com/traittune/sharing/internal/ledger"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/messaging"
	"github.com/traittune/sharing/internal/mocks"
	"github.com/traittune/sharing/internal/registry"
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

// testRegistry wires a registry against the in-memory store
type testRegistry struct {
	ctrl     *gomock.Controller
	store    store.Store
	events   eventlog.Log
	ledger   ledger.Ledger
	clock    *mocks.MockClock
	registry registry.Registry

	mu  sync.Mutex
	now time.Time
}

func (tr *testRegistry) advance(d time.Duration) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.now = tr.now.Add(d)
}

func setupTestRegistry(t *testing.T, dispatcher dispatch.Dispatcher) *testRegistry {
	ctrl := gomock.NewController(t)
	tr := &testRegistry{
		ctrl:  ctrl,
		store: store.NewMemoryStore(),
		clock: mocks.NewMockClock(ctrl),
		now:   time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	tr.clock.EXPECT().Now().DoAndReturn(func() time.Time {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		// Keep event timestamps distinct
		tr.now = tr.now.Add(time.Millisecond)
		return tr.now
	}).AnyTimes()

	ids := adapter.NewIDGenerator()
	tr.ledger = ledger.New(tr.store, tr.clock, ids)
	tr.events = eventlog.New(eventlog.Config{}, tr.store, tr.store, tr.ledger, messaging.NewNopPublisher(), tr.clock, ids)

	if dispatcher == nil {
		dispatcher = dispatch.NewImmediate()
	}
	tr.registry = registry.New(registry.Config{}, tr.store, tr.events, dispatcher, tr.clock, ids)
	return tr
}

func eventTypes(events []domain.LinkEvent) []domain.EventType {
	types := make([]domain.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType)
	}
	return types
}

func TestRegistry_CreatePrivateEmailLink(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	link, err := tr.registry.CreatePrivateEmailLink(ctx, registry.CreatePrivateEmailLinkInput{
		SharerUserID:  "sharer-1",
		TargetEmail:   "friend@example.com",
		ReportID:      domain.StringPtr("report-1"),
		CustomMessage: domain.StringPtr("Let's compare!"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LinkTypePrivateEmail, link.LinkType)
	assert.Equal(t, domain.LinkStatusSent, link.Status)
	assert.Equal(t, "friend@example.com", domain.StringValue(link.TargetEmail))
	assert.Equal(t, "report-1", domain.StringValue(link.ReportID))
	assert.Equal(t, "Let's compare!", link.Metadata[domain.MetadataKeyCustomMessage])
	assert.Equal(t, "https://traittune.com/invite/"+link.UniqueToken, link.ShareURL)
	assert.Nil(t, link.ExpiresAt)

	stored, err := tr.registry.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusSent, stored.Status)

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventTypeEmailSent}, eventTypes(events))
}

func TestRegistry_CreatePrivateEmailLinkValidation(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	tests := []struct {
		name  string
		input registry.CreatePrivateEmailLinkInput
		field string
	}{
		{"missing sharer", registry.CreatePrivateEmailLinkInput{TargetEmail: "a@example.com"}, "sharer_user_id"},
		{"missing email", registry.CreatePrivateEmailLinkInput{SharerUserID: "s"}, "target_email"},
		{"malformed email", registry.CreatePrivateEmailLinkInput{SharerUserID: "s", TargetEmail: "not-an-email"}, "target_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.registry.CreatePrivateEmailLink(ctx, tt.input)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestRegistry_CreatePrivateEmailLinkQueued(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	var requested *messaging.DispatchRequestMessage
	publisher.EXPECT().
		PublishDispatchRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *messaging.DispatchRequestMessage) error {
			requested = msg
			return nil
		})

	tr := setupTestRegistry(t, dispatch.NewQueued(publisher, adapter.NewClock()))

	link, err := tr.registry.CreatePrivateEmailLink(ctx, registry.CreatePrivateEmailLinkInput{
		SharerUserID: "sharer-1",
		TargetEmail:  "friend@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusGenerated, link.Status)
	assert.NotEmpty(t, link.Metadata[domain.MetadataKeyDispatchRequestedAt])

	require.NotNil(t, requested)
	assert.Equal(t, link.ID, requested.LinkID)
	assert.Equal(t, link.UniqueToken, requested.Token)
	assert.Equal(t, link.ShareURL, requested.ShareURL)

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Empty(t, events)

	// Confirmation completes the two-phase dispatch
	confirmed, err := tr.registry.ConfirmDispatch(ctx, registry.ConfirmDispatchInput{LinkID: link.ID, Delivered: true})
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusSent, confirmed.Status)

	events, err = tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventTypeEmailSent}, eventTypes(events))

	// A second confirmation is rejected
	_, err = tr.registry.ConfirmDispatch(ctx, registry.ConfirmDispatchInput{LinkID: link.ID, Delivered: true})
	require.ErrorIs(t, err, domain.ErrValidation)

	events, err = tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRegistry_ConfirmDispatchFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	publisher.EXPECT().PublishDispatchRequest(gomock.Any(), gomock.Any()).Return(nil)

	tr := setupTestRegistry(t, dispatch.NewQueued(publisher, adapter.NewClock()))

	link, err := tr.registry.CreatePrivateEmailLink(ctx, registry.CreatePrivateEmailLinkInput{
		SharerUserID: "sharer-1",
		TargetEmail:  "friend@example.com",
	})
	require.NoError(t, err)

	failed, err := tr.registry.ConfirmDispatch(ctx, registry.ConfirmDispatchInput{
		LinkID:    link.ID,
		Delivered: false,
		Reason:    "mailbox unavailable",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusFailed, failed.Status)
	assert.Equal(t, "mailbox unavailable", failed.Metadata[domain.MetadataKeyDispatchFailure])

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRegistry_ConfirmDispatchRejectsOtherLinks(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	_, err := tr.registry.ConfirmDispatch(ctx, registry.ConfirmDispatchInput{LinkID: "missing", Delivered: true})
	require.ErrorIs(t, err, domain.ErrNotFound)

	public, err := tr.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	_, err = tr.registry.ConfirmDispatch(ctx, registry.ConfirmDispatchInput{LinkID: public.ID, Delivered: true})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistry_DispatchErrorMarksLinkFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(dispatch.Result{}, errors.New("smtp: connection refused"))

	tr := setupTestRegistry(t, dispatcher)

	link, err := tr.registry.CreatePrivateEmailLink(ctx, registry.CreatePrivateEmailLinkInput{
		SharerUserID: "sharer-1",
		TargetEmail:  "friend@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusFailed, link.Status)
	assert.Contains(t, link.Metadata[domain.MetadataKeyDispatchFailure], "connection refused")

	stored, err := tr.registry.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusFailed, stored.Status)
}

func TestRegistry_CreatePrivateOnetimeLink(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)
	hours := 24

	link, err := tr.registry.CreatePrivateOnetimeLink(ctx, registry.CreatePrivateOnetimeLinkInput{
		SharerUserID:   "sharer-1",
		ReportID:       domain.StringPtr("report-9"),
		ExpiresInHours: &hours,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LinkTypePrivateOnetime, link.LinkType)
	assert.Equal(t, domain.LinkStatusGenerated, link.Status)
	assert.Nil(t, link.TargetEmail)
	require.NotNil(t, link.ExpiresAt)
	assert.Equal(t, 24*time.Hour, link.ExpiresAt.Sub(link.CreatedAt))
	assert.Equal(t, "https://traittune.com/invite/"+link.UniqueToken, link.ShareURL)

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventTypeOnetimeLinkGenerated}, eventTypes(events))

	// Past the expiry the link reads as expired
	tr.advance(25 * time.Hour)
	expired, err := tr.registry.GetByToken(ctx, link.UniqueToken)
	require.NoError(t, err)
	require.NotNil(t, expired)
	assert.Equal(t, domain.LinkStatusExpired, expired.Status)
}

func TestRegistry_CreatePrivateOnetimeLinkExpiry(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	noExpiry, err := tr.registry.CreatePrivateOnetimeLink(ctx, registry.CreatePrivateOnetimeLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	assert.Nil(t, noExpiry.ExpiresAt)

	zero := 0
	zeroExpiry, err := tr.registry.CreatePrivateOnetimeLink(ctx, registry.CreatePrivateOnetimeLinkInput{SharerUserID: "sharer-1", ExpiresInHours: &zero})
	require.NoError(t, err)
	assert.Nil(t, zeroExpiry.ExpiresAt)

	negative := -1
	_, err = tr.registry.CreatePrivateOnetimeLink(ctx, registry.CreatePrivateOnetimeLinkInput{SharerUserID: "sharer-1", ExpiresInHours: &negative})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistry_CreatePublicLink(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	link, err := tr.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{
		SharerUserID: "sharer-1",
		CampaignTag:  domain.StringPtr("summer"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LinkTypePublic, link.LinkType)
	assert.Equal(t, domain.LinkStatusActive, link.Status)
	assert.Equal(t, "summer", link.Metadata[domain.MetadataKeyCampaignTag])
	assert.Equal(t, "https://traittune.com/share/"+link.UniqueToken, link.ShareURL)

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventTypePublicLinkGenerated}, eventTypes(events))

	_, err = tr.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistry_CreateQRCodeLink(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	link, err := tr.registry.CreateQRCodeLink(ctx, registry.CreateQRCodeLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.LinkTypeQR, link.LinkType)
	assert.Equal(t, domain.LinkStatusActive, link.Status)
	assert.Nil(t, link.ExpiresAt)
	assert.Equal(t, "https://traittune.com/qr/"+link.UniqueToken, link.QRDataURL)

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventTypeQRLinkGenerated}, eventTypes(events))
}

func TestRegistry_CustomDomain(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	clock := adapter.NewClock()
	ids := adapter.NewIDGenerator()
	events := eventlog.New(eventlog.Config{}, st, st, ledger.New(st, clock, ids), messaging.NewNopPublisher(), clock, ids)
	reg := registry.New(registry.Config{Domain: "share.example.org"}, st, events, dispatch.NewImmediate(), clock, ids)

	link, err := reg.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.ShareURL, "https://share.example.org/share/"))
}

func TestRegistry_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		link, err := tr.registry.CreateQRCodeLink(ctx, registry.CreateQRCodeLinkInput{SharerUserID: "sharer-1"})
		require.NoError(t, err)
		assert.False(t, seen[link.UniqueToken], "duplicate token %s", link.UniqueToken)
		seen[link.UniqueToken] = true
	}
}

func TestRegistry_TokenCollisionRegenerates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMemoryStore()
	clock := adapter.NewClock()
	realIDs := adapter.NewIDGenerator()
	ids := mocks.NewMockIDGenerator(ctrl)
	ids.EXPECT().NewID().DoAndReturn(realIDs.NewID).AnyTimes()
	ids.EXPECT().NewSortableID(gomock.Any()).DoAndReturn(realIDs.NewSortableID).AnyTimes()

	gomock.InOrder(
		ids.EXPECT().NewToken().Return("token-a"),
		ids.EXPECT().NewToken().Return("token-a"),
		ids.EXPECT().NewToken().Return("token-b"),
	)

	events := eventlog.New(eventlog.Config{}, st, st, ledger.New(st, clock, ids), messaging.NewNopPublisher(), clock, ids)
	reg := registry.New(registry.Config{}, st, events, dispatch.NewImmediate(), clock, ids)

	first, err := reg.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	assert.Equal(t, "token-a", first.UniqueToken)

	second, err := reg.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	assert.Equal(t, "token-b", second.UniqueToken)
}

func TestRegistry_TokenCollisionGivesUp(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMemoryStore()
	clock := adapter.NewClock()
	realIDs := adapter.NewIDGenerator()
	ids := mocks.NewMockIDGenerator(ctrl)
	ids.EXPECT().NewID().DoAndReturn(realIDs.NewID).AnyTimes()
	ids.EXPECT().NewSortableID(gomock.Any()).DoAndReturn(realIDs.NewSortableID).AnyTimes()
	ids.EXPECT().NewToken().Return("token-a").AnyTimes()

	events := eventlog.New(eventlog.Config{}, st, st, ledger.New(st, clock, ids), messaging.NewNopPublisher(), clock, ids)
	reg := registry.New(registry.Config{MaxTokenAttempts: 2}, st, events, dispatch.NewImmediate(), clock, ids)

	_, err := reg.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)

	_, err = reg.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestRegistry_GetSoftMiss(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	byToken, err := tr.registry.GetByToken(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, byToken)

	byID, err := tr.registry.GetByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, byID)

	empty, err := tr.registry.GetByToken(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestRegistry_ListBySharer(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	first, err := tr.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	second, err := tr.registry.CreateQRCodeLink(ctx, registry.CreateQRCodeLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)
	_, err = tr.registry.CreateQRCodeLink(ctx, registry.CreateQRCodeLinkInput{SharerUserID: "sharer-2"})
	require.NoError(t, err)

	links, err := tr.registry.ListBySharer(ctx, "sharer-1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, second.ID, links[0].ID)
	assert.Equal(t, first.ID, links[1].ID)
	assert.Equal(t, second.QRDataURL, links[0].QRDataURL)
	assert.Equal(t, first.ShareURL, links[1].ShareURL)
}

func TestRegistry_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	link, err := tr.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "sharer-1"})
	require.NoError(t, err)

	ok, err := tr.registry.UpdateStatus(ctx, link.ID, domain.LinkStatusExpired)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := tr.registry.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusExpired, got.Status)
	assert.True(t, got.UpdatedAt.After(link.UpdatedAt))

	ok, err = tr.registry.UpdateStatus(ctx, "missing-link", domain.LinkStatusActive)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = tr.registry.UpdateStatus(ctx, link.ID, "archived")
	require.ErrorIs(t, err, domain.ErrValidation)

	ok, err = tr.registry.Revoke(ctx, link.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = tr.registry.GetByToken(ctx, link.UniqueToken)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusRevoked, got.Status)
}

func TestRegistry_UpdateStatusStoreFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	links := mocks.NewMockLinkStore(ctrl)
	links.EXPECT().
		UpdateLinkStatus(gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection reset"))

	reg := registry.New(registry.Config{}, links, mocks.NewMockEventLog(ctrl), dispatch.NewImmediate(), adapter.NewClock(), adapter.NewIDGenerator())

	_, err := reg.UpdateStatus(ctx, "link-1", domain.LinkStatusRevoked)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestRegistry_PublicReferralScenario(t *testing.T) {
	ctx := context.Background()
	tr := setupTestRegistry(t, nil)

	link, err := tr.registry.CreatePublicLink(ctx, registry.CreatePublicLinkInput{SharerUserID: "S"})
	require.NoError(t, err)

	interactions := []domain.EventType{
		domain.EventTypeClicked,
		domain.EventTypeRegisteredViaLink,
		domain.EventTypeTestStartedViaLink,
		domain.EventTypeTestCompletedViaLink,
	}
	for _, et := range interactions {
		_, err := tr.events.LogEvent(ctx, eventlog.LogEventInput{
			LinkID:          link.ID,
			EventType:       et,
			RecipientUserID: domain.StringPtr("R"),
		})
		require.NoError(t, err)
	}

	balance, err := tr.ledger.GetBalance(ctx, "S")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(10), balance.TokenBalance)

	events, err := tr.events.GetEventsForLink(ctx, link.ID)
	require.NoError(t, err)
	expected := append([]domain.EventType{domain.EventTypePublicLinkGenerated}, interactions...)
	assert.Equal(t, expected, eventTypes(events))
}
