package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/istvanv2/giwedding/internal/domain"
	"github.com/istvanv2/giwedding/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validSubmission() domain.Submission {
	return domain.Submission{
		MainName:      "Ana Pop",
		MainAttending: true,
		MainMenu:      domain.MenuClassic,
		Guests: []domain.Guest{
			{Name: "Ion Pop", Attending: true, Menu: domain.MenuVegetarian},
		},
		NeedAccommodation:    true,
		AccommodationDetails: "2 nights",
		Email:                "ana@example.com",
		Phone:                "+40 721 123 456",
		Message:              "Felicitari!",
	}
}

func TestSubmissionService_Submit_Honeypot(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, nil, notifier, log)

	sub := validSubmission()
	sub.Honeypot = "http://spam.example"

	// Success is reported but nothing reaches either destination.
	err := svc.Submit(context.Background(), sub)

	require.NoError(t, err)
	store.AssertNotCalled(t, "InsertRecords")
	sheet.AssertNotCalled(t, "AppendRecords")
}

func TestSubmissionService_Submit_ValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.Submission)
		wantErr error
	}{
		{
			name:    "empty main name",
			mutate:  func(s *domain.Submission) { s.MainName = "   " },
			wantErr: domain.ErrNameRequired,
		},
		{
			name: "no contact at all",
			mutate: func(s *domain.Submission) {
				s.Email = ""
				s.Phone = "  "
			},
			wantErr: domain.ErrMissingContact,
		},
		{
			name:    "bad email",
			mutate:  func(s *domain.Submission) { s.Email = "not an email" },
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "bad phone",
			mutate:  func(s *domain.Submission) { s.Phone = "abc" },
			wantErr: domain.ErrInvalidPhone,
		},
		{
			name: "blank guest name",
			mutate: func(s *domain.Submission) {
				s.Guests = append(s.Guests, domain.Guest{Name: "  ", Attending: true})
			},
			wantErr: domain.ErrGuestNameRequired,
		},
		{
			name: "name wins over missing contact",
			mutate: func(s *domain.Submission) {
				s.MainName = ""
				s.Email = ""
				s.Phone = ""
			},
			wantErr: domain.ErrNameRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockRecordStore(t)
			sheet := mocks.NewMockSheetAppender(t)
			notifier := mocks.NewMockRSVPNotifier(t)
			log := newTestLogger(t)

			svc := NewSubmissionService(store, sheet, nil, notifier, log)

			sub := validSubmission()
			tc.mutate(&sub)

			err := svc.Submit(context.Background(), sub)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			store.AssertNotCalled(t, "InsertRecords")
			sheet.AssertNotCalled(t, "AppendRecords")
		})
	}
}

func TestSubmissionService_Submit_BothDestinations(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, nil, notifier, log)

	var stored []domain.Record
	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []domain.Record) {
			stored = records
		}).
		Return(nil)
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	require.Len(t, stored, 2)

	main, guest := stored[0], stored[1]

	assert.Equal(t, "Ana Pop", main.GroupName)
	assert.Equal(t, "Ana Pop", main.PersonName)
	assert.True(t, main.Attending)
	assert.Equal(t, domain.MenuClassic, main.Menu)
	assert.True(t, main.Accommodation)
	assert.Equal(t, "2 nights", main.AccommodationDetails)
	assert.Equal(t, "ana@example.com", main.Email)

	assert.Equal(t, "Ana Pop", guest.GroupName)
	assert.Equal(t, "Ion Pop", guest.PersonName)
	assert.Equal(t, domain.MenuVegetarian, guest.Menu)
	assert.Empty(t, guest.Email, "contact lives on the main record only")
	assert.False(t, guest.Accommodation)

	assert.Equal(t, main.SubmittedAt, guest.SubmittedAt, "the whole party shares one timestamp")

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSubmissionService_Submit_MenuBlankedWhenNotAttending(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, nil, notifier, log)

	sub := validSubmission()
	sub.MainAttending = false
	sub.Guests[0].Attending = false

	var stored []domain.Record
	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []domain.Record) {
			stored = records
		}).
		Return(nil)
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), sub)

	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Empty(t, stored[0].Menu)
	assert.Empty(t, stored[1].Menu)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_SheetSavesWhenDBFails(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, nil, notifier, log)

	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err, "one destination is enough")

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_DBSavesWhenSheetFails(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, nil, notifier, log)

	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).Return(nil)
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(domain.ErrSheetsNotConfigured)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_BothDestinationsFail(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, nil, notifier, log)

	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(domain.ErrSheetsNotConfigured)

	err := svc.Submit(context.Background(), validSubmission())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	notifier.AssertNotCalled(t, "NotifyRSVPReceived")
}

func TestSubmissionService_Submit_NoDatabaseConfigured(t *testing.T) {
	sheet := mocks.NewMockSheetAppender(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(nil, sheet, nil, notifier, log)

	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_LowCaptchaScoreStillSaves(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	verifier := mocks.NewMockCaptchaVerifier(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, verifier, notifier, log)

	sub := validSubmission()
	sub.RecaptchaToken = "tok"

	verifier.EXPECT().Verify(mock.Anything, "tok").Return(0.1, false, nil)
	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).Return(nil)
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), sub)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_CaptchaBackendDownStillSaves(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	verifier := mocks.NewMockCaptchaVerifier(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, verifier, notifier, log)

	sub := validSubmission()
	sub.RecaptchaToken = "tok"

	verifier.EXPECT().Verify(mock.Anything, "tok").Return(0.0, false, errors.New("timeout"))
	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).Return(nil)
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), sub)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestSubmissionService_Submit_EmptyTokenSkipsVerifier(t *testing.T) {
	store := mocks.NewMockRecordStore(t)
	sheet := mocks.NewMockSheetAppender(t)
	verifier := mocks.NewMockCaptchaVerifier(t)
	notifier := mocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	svc := NewSubmissionService(store, sheet, verifier, notifier, log)

	store.EXPECT().InsertRecords(mock.Anything, mock.Anything).Return(nil)
	sheet.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRSVPReceived(mock.Anything, mock.Anything).Return()

	err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	verifier.AssertNotCalled(t, "Verify")

	time.Sleep(50 * time.Millisecond)
}

func TestBuildRecords_TrimsEverything(t *testing.T) {
	at := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	sub := domain.Submission{
		MainName:             "  Ana Pop  ",
		MainAttending:        true,
		MainMenu:             "  classic  ",
		Guests:               []domain.Guest{{Name: " Ion Pop ", Attending: true, Menu: " vegetarian "}},
		AccommodationDetails: "  2 nights ",
		Email:                " ana@example.com ",
		Phone:                " +40 721 123 456 ",
		Message:              "  hi  ",
	}

	records := buildRecords(sub, at)

	require.Len(t, records, 2)
	assert.Equal(t, "Ana Pop", records[0].GroupName)
	assert.Equal(t, "Ana Pop", records[0].PersonName)
	assert.Equal(t, "classic", records[0].Menu)
	assert.Equal(t, "2 nights", records[0].AccommodationDetails)
	assert.Equal(t, "ana@example.com", records[0].Email)
	assert.Equal(t, "+40 721 123 456", records[0].Phone)
	assert.Equal(t, "hi", records[0].Message)
	assert.Equal(t, "Ion Pop", records[1].PersonName)
	assert.Equal(t, "vegetarian", records[1].Menu)
	assert.Equal(t, at, records[0].SubmittedAt)
	assert.Equal(t, at, records[1].SubmittedAt)
}
