package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/istvanv2/giwedding/internal/domain"
	"github.com/istvanv2/giwedding/internal/service/ports/mocks"
)

const testPassword = "s3cret"

func tokenIssuedAt(t *testing.T, at time.Time) string {
	t.Helper()
	raw, err := json.Marshal(dashboardToken{Authenticated: true, TS: at.UnixMilli()})
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestAdminService_Login(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	token, err := svc.Login(testPassword)

	require.NoError(t, err)
	require.NotEmpty(t, token)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)

	var tok dashboardToken
	require.NoError(t, json.Unmarshal(raw, &tok))
	assert.True(t, tok.Authenticated)
	assert.InDelta(t, time.Now().UnixMilli(), tok.TS, float64(5*time.Second/time.Millisecond))
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	_, err := svc.Login("guess")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestAdminService_Login_NoPasswordConfigured(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	// An empty configured password must never match, not even an empty input.
	svc := NewAdminService(store, "", log)

	_, err := svc.Login("")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestAdminService_TokenWindow(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	store.EXPECT().List(mock.Anything).Return([]*domain.Record{}, nil).Once()

	fresh := tokenIssuedAt(t, time.Now().Add(-23*time.Hour-59*time.Minute))
	_, err := svc.ListRecords(context.Background(), fresh)
	require.NoError(t, err)

	stale := tokenIssuedAt(t, time.Now().Add(-24*time.Hour-time.Minute))
	_, err = svc.ListRecords(context.Background(), stale)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestAdminService_TokenTampered(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	unauthenticated, err := json.Marshal(dashboardToken{Authenticated: false, TS: time.Now().UnixMilli()})
	require.NoError(t, err)

	cases := map[string]string{
		"empty":        "",
		"not base64":   "!!!",
		"not json":     base64.StdEncoding.EncodeToString([]byte("garbage")),
		"flag flipped": base64.StdEncoding.EncodeToString(unauthenticated),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ListRecords(context.Background(), token)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestAdminService_ListRecords(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	want := []*domain.Record{
		{ID: 2, GroupName: "Ana Pop", PersonName: "Ana Pop"},
		{ID: 1, GroupName: "Kovacs", PersonName: "Kovacs Janos"},
	}
	store.EXPECT().List(mock.Anything).Return(want, nil)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	got, err := svc.ListRecords(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdminService_ListRecords_NoStore(t *testing.T) {
	log := newTestLogger(t)

	svc := NewAdminService(nil, testPassword, log)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	_, err = svc.ListRecords(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreNotConfigured)
}

func TestAdminService_UpdateRecord(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	rec := &domain.Record{
		ID:         7,
		GroupName:  "  Ana Pop ",
		PersonName: " Ion Pop ",
		Attending:  true,
		Menu:       " classic ",
		Email:      " ana@example.com ",
	}

	got, err := svc.UpdateRecord(context.Background(), token, rec)

	require.NoError(t, err)
	assert.Equal(t, "Ana Pop", got.GroupName)
	assert.Equal(t, "Ion Pop", got.PersonName)
	assert.Equal(t, "classic", got.Menu)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestAdminService_UpdateRecord_EchoesStoredTimestamp(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	storedAt := time.Date(2026, 7, 1, 10, 30, 0, 0, time.UTC)
	store.EXPECT().Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rec *domain.Record) {
			rec.SubmittedAt = storedAt
		}).
		Return(nil)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	// The payload carries a bogus timestamp; the stored one must win.
	rec := &domain.Record{
		ID:          7,
		SubmittedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		GroupName:   "Ana Pop",
		PersonName:  "Ana Pop",
	}

	got, err := svc.UpdateRecord(context.Background(), token, rec)

	require.NoError(t, err)
	assert.Equal(t, storedAt, got.SubmittedAt)
}

func TestAdminService_UpdateRecord_InvalidID(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	_, err = svc.UpdateRecord(context.Background(), token, &domain.Record{ID: 0, GroupName: "g", PersonName: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRecordID)
	store.AssertNotCalled(t, "Update")
}

func TestAdminService_UpdateRecord_MissingNames(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	_, err = svc.UpdateRecord(context.Background(), token, &domain.Record{ID: 7, GroupName: "  ", PersonName: "Ion"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	store.AssertNotCalled(t, "Update")
}

func TestAdminService_UpdateRecord_NotFound(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	store.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrRecordNotFound)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	_, err = svc.UpdateRecord(context.Background(), token, &domain.Record{ID: 99, GroupName: "g", PersonName: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestAdminService_DeleteRecords(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	store.EXPECT().Delete(mock.Anything, []int64{3, 4, 99}).Return(int64(2), nil)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	deleted, err := svc.DeleteRecords(context.Background(), token, []int64{3, 4, 99})

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestAdminService_DeleteRecords_EmptyIDs(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	_, err = svc.DeleteRecords(context.Background(), token, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoIDs)
	store.AssertNotCalled(t, "Delete")
}

func TestAdminService_DeleteRecords_InvalidID(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	token, err := svc.Login(testPassword)
	require.NoError(t, err)

	_, err = svc.DeleteRecords(context.Background(), token, []int64{3, -1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRecordID)
	store.AssertNotCalled(t, "Delete")
}

func TestAdminService_Unauthorized(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	log := newTestLogger(t)

	svc := NewAdminService(store, testPassword, log)

	_, err := svc.ListRecords(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.UpdateRecord(context.Background(), "", &domain.Record{ID: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.DeleteRecords(context.Background(), "", []int64{1})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
