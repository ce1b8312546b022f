package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"garage/config"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	mockRepo "garage/internal/mocks/repository"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: &config.AppConfig{
			BaseURL:         "https://shop.example.com",
			DefaultLanguage: "en",
			DefaultTimezone: "UTC",
		},
		Dispatch: &config.DispatchConfig{
			BatchSize:                10,
			DefaultRescheduleChannel: "email",
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type preferenceMocks struct {
	ticketRepo       *mockRepo.MockTicketRepository
	profileRepo      *mockRepo.MockCustomerProfileRepository
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
}

func newTestPreferenceService(t *testing.T, now time.Time) (*preferenceService, *preferenceMocks) {
	t.Helper()

	mocks := &preferenceMocks{
		ticketRepo:       mockRepo.NewMockTicketRepository(t),
		profileRepo:      mockRepo.NewMockCustomerProfileRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
	}

	svc := NewPreferenceService(
		testConfig(),
		mocks.ticketRepo,
		mocks.profileRepo,
		mocks.notificationRepo,
		mocks.userRepo,
		testLogger(),
	).(*preferenceService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func TestPreferenceService_SavePreferences_SchedulesConfirmAndReminder(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	pickupAt := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	svc, mocks := newTestPreferenceService(t, now)

	ctx := context.Background()
	ticketID := uuid.New()
	customerID := uuid.New()
	ticket := &entity.Ticket{ID: ticketID, TicketNumber: "WO-2026-A1B2C3D4", CustomerID: customerID}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticketID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, customerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.CustomerProfile")).
		Return(nil)
	mocks.ticketRepo.EXPECT().
		SavePreferences(ctx, ticketID, mock.AnythingOfType("*entity.NotificationPrefs"), pickupAt).
		Return(nil)

	var created []*entity.Notification
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = append(created, notification)
		}).
		Return(nil)

	result, err := svc.SavePreferences(ctx, &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          []entity.Channel{entity.ChannelEmail, entity.ChannelSMS},
		Primary:           entity.ChannelEmail,
		CommsOptIn:        true,
		PreferredPickupAt: pickupAt,
		Email:             "ana@example.com",
		Phone:             "+15550001111",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, created, 2)

	confirm, reminder := created[0], created[1]
	assert.Equal(t, entity.NotificationTypeConfirm, confirm.Type)
	assert.Equal(t, entity.NotificationStatusQueued, confirm.Status)
	assert.Equal(t, now, confirm.SendAt)
	assert.Equal(t, "ana@example.com", confirm.Destination)

	assert.Equal(t, entity.NotificationTypeReminder, reminder.Type)
	assert.Equal(t, entity.NotificationStatusQueued, reminder.Status)
	assert.Equal(t, pickupAt.Add(-2*time.Hour), reminder.SendAt)

	assert.Equal(t, confirm, result.Confirmation)
	assert.True(t, result.Profile.OptIn)
	assert.Equal(t, entity.ChannelEmail, result.Profile.PreferredChannel)
}

func TestPreferenceService_SavePreferences_OptOutSkipsBothNotifications(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	pickupAt := now.Add(48 * time.Hour)
	svc, mocks := newTestPreferenceService(t, now)

	ctx := context.Background()
	ticketID := uuid.New()
	customerID := uuid.New()
	ticket := &entity.Ticket{ID: ticketID, CustomerID: customerID}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticketID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, customerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.userRepo.EXPECT().
		FindUserByID(ctx, customerID).
		Return(nil, repository.ErrUserNotFound)
	mocks.profileRepo.EXPECT().UpsertProfile(ctx, mock.Anything).Return(nil)
	mocks.ticketRepo.EXPECT().SavePreferences(ctx, ticketID, mock.Anything, pickupAt).Return(nil)

	var created []*entity.Notification
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = append(created, notification)
		}).
		Return(nil)

	_, err := svc.SavePreferences(ctx, &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          []entity.Channel{entity.ChannelEmail},
		Primary:           entity.ChannelEmail,
		CommsOptIn:        false,
		PreferredPickupAt: pickupAt,
		Email:             "ana@example.com",
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	confirm, reminder := created[0], created[1]
	assert.Equal(t, entity.NotificationStatusSkipped, confirm.Status)
	assert.Equal(t, "customer opted out", confirm.ErrorDetail)
	assert.Equal(t, entity.NotificationStatusSkipped, reminder.Status)
	assert.Equal(t, "customer opted out", reminder.ErrorDetail)
}

func TestPreferenceService_SavePreferences_PastReminderIsSkippedAtCreation(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	// Pickup in one hour puts the two-hour reminder in the past.
	pickupAt := now.Add(time.Hour)
	svc, mocks := newTestPreferenceService(t, now)

	ctx := context.Background()
	ticketID := uuid.New()
	customerID := uuid.New()
	ticket := &entity.Ticket{ID: ticketID, CustomerID: customerID}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticketID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, customerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.userRepo.EXPECT().
		FindUserByID(ctx, customerID).
		Return(nil, repository.ErrUserNotFound)
	mocks.profileRepo.EXPECT().UpsertProfile(ctx, mock.Anything).Return(nil)
	mocks.ticketRepo.EXPECT().SavePreferences(ctx, ticketID, mock.Anything, pickupAt).Return(nil)

	var created []*entity.Notification
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = append(created, notification)
		}).
		Return(nil)

	_, err := svc.SavePreferences(ctx, &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          []entity.Channel{entity.ChannelEmail},
		Primary:           entity.ChannelEmail,
		CommsOptIn:        true,
		PreferredPickupAt: pickupAt,
		Email:             "ana@example.com",
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	reminder := created[1]
	assert.Equal(t, entity.NotificationStatusSkipped, reminder.Status)
	assert.Equal(t, "reminder time already past", reminder.ErrorDetail)
}

func TestPreferenceService_SavePreferences_PrimaryMustBeSelected(t *testing.T) {
	svc, _ := newTestPreferenceService(t, time.Now())

	_, err := svc.SavePreferences(context.Background(), &usecase.SavePreferencesInput{
		TicketID:          uuid.New(),
		Channels:          []entity.Channel{entity.ChannelSMS},
		Primary:           entity.ChannelEmail,
		CommsOptIn:        true,
		PreferredPickupAt: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPreferenceService_SavePreferences_RequiresChannels(t *testing.T) {
	svc, _ := newTestPreferenceService(t, time.Now())

	_, err := svc.SavePreferences(context.Background(), &usecase.SavePreferencesInput{
		TicketID:          uuid.New(),
		Primary:           entity.ChannelEmail,
		PreferredPickupAt: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPreferenceService_SavePreferences_TicketNotFound(t *testing.T) {
	svc, mocks := newTestPreferenceService(t, time.Now())

	ctx := context.Background()
	ticketID := uuid.New()
	mocks.ticketRepo.EXPECT().
		FindTicketByID(ctx, ticketID).
		Return(nil, repository.ErrTicketNotFound)

	_, err := svc.SavePreferences(ctx, &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          []entity.Channel{entity.ChannelEmail},
		Primary:           entity.ChannelEmail,
		PreferredPickupAt: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTicketNotFound))
}

func TestPreferenceService_SavePreferences_FallsBackToAccountContacts(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	pickupAt := now.Add(48 * time.Hour)
	svc, mocks := newTestPreferenceService(t, now)

	ctx := context.Background()
	ticketID := uuid.New()
	customerID := uuid.New()
	ticket := &entity.Ticket{ID: ticketID, CustomerID: customerID}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticketID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, customerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.userRepo.EXPECT().
		FindUserByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "acct@example.com", Phone: "+15559990000"}, nil)

	var upserted *entity.CustomerProfile
	mocks.profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.CustomerProfile")).
		Run(func(_ context.Context, profile *entity.CustomerProfile) {
			upserted = profile
		}).
		Return(nil)
	mocks.ticketRepo.EXPECT().SavePreferences(ctx, ticketID, mock.Anything, pickupAt).Return(nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	_, err := svc.SavePreferences(ctx, &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          []entity.Channel{entity.ChannelSMS},
		Primary:           entity.ChannelSMS,
		CommsOptIn:        true,
		PreferredPickupAt: pickupAt,
	})
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, "acct@example.com", upserted.Email)
	assert.Equal(t, "+15559990000", upserted.Phone)
}

func TestPreferenceService_SavePreferences_OmittedContactsKeepStoredValues(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	pickupAt := now.Add(48 * time.Hour)
	svc, mocks := newTestPreferenceService(t, now)

	ctx := context.Background()
	ticketID := uuid.New()
	customerID := uuid.New()
	ticket := &entity.Ticket{ID: ticketID, CustomerID: customerID}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticketID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, customerID).
		Return(&entity.CustomerProfile{
			CustomerID:     customerID,
			Email:          "stored@example.com",
			Phone:          "+15551112222",
			WhatsAppNumber: "+15553334444",
			FCMToken:       "fcm-token-stored",
		}, nil)

	var upserted *entity.CustomerProfile
	mocks.profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.CustomerProfile")).
		Run(func(_ context.Context, profile *entity.CustomerProfile) {
			upserted = profile
		}).
		Return(nil)
	mocks.ticketRepo.EXPECT().SavePreferences(ctx, ticketID, mock.Anything, pickupAt).Return(nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	// The save carries a new email only; the other contact fields must
	// survive untouched.
	_, err := svc.SavePreferences(ctx, &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          []entity.Channel{entity.ChannelWhatsApp},
		Primary:           entity.ChannelWhatsApp,
		CommsOptIn:        true,
		PreferredPickupAt: pickupAt,
		Email:             "fresh@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, "fresh@example.com", upserted.Email)
	assert.Equal(t, "+15551112222", upserted.Phone)
	assert.Equal(t, "+15553334444", upserted.WhatsAppNumber)
	assert.Equal(t, "fcm-token-stored", upserted.FCMToken)
}
