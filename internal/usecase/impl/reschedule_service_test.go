package impl

import (
	"context"
	"testing"
	"time"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"
	mockRepo "garage/internal/mocks/repository"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rescheduleMocks struct {
	ticketRepo       *mockRepo.MockTicketRepository
	vehicleRepo      *mockRepo.MockVehicleRepository
	profileRepo      *mockRepo.MockCustomerProfileRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func newTestRescheduleService(t *testing.T, now time.Time) (*rescheduleService, *rescheduleMocks) {
	t.Helper()

	mocks := &rescheduleMocks{
		ticketRepo:       mockRepo.NewMockTicketRepository(t),
		vehicleRepo:      mockRepo.NewMockVehicleRepository(t),
		profileRepo:      mockRepo.NewMockCustomerProfileRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
	}

	svc := NewRescheduleService(
		testConfig(),
		mocks.ticketRepo,
		mocks.vehicleRepo,
		mocks.profileRepo,
		mocks.notificationRepo,
		testLogger(),
	).(*rescheduleService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func missedTicket(rescheduleAt time.Time) *entity.Ticket {
	return &entity.Ticket{
		ID:             uuid.New(),
		TicketNumber:   "WO-2026-M1",
		Status:         entity.TicketStatusApproved,
		VehicleID:      uuid.New(),
		CustomerID:     uuid.New(),
		RescheduleDate: &rescheduleAt,
	}
}

func TestRescheduleService_SweepMissed_MovesDateForwardOneDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	svc, mocks := newTestRescheduleService(t, now)

	ctx := context.Background()
	rescheduleAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ticket := missedTicket(rescheduleAt)
	vehicle := &entity.Vehicle{
		ID:             ticket.VehicleID,
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2020,
		LocationStatus: entity.VehicleLocationWithCustomer,
	}

	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mocks.ticketRepo.EXPECT().
		FindDueForReschedule(ctx, dayStart, dayStart.Add(24*time.Hour)).
		Return([]*entity.Ticket{ticket}, nil)
	mocks.vehicleRepo.EXPECT().FindVehicleByID(ctx, ticket.VehicleID).Return(vehicle, nil)

	wantDate := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	mocks.ticketRepo.EXPECT().
		UpdateRescheduleDate(ctx, ticket.ID, wantDate).
		Return(nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, ticket.CustomerID).
		Return(&entity.CustomerProfile{
			CustomerID:       ticket.CustomerID,
			Email:            "ana@example.com",
			OptIn:            true,
			Language:         "en",
			Timezone:         "UTC",
			PreferredChannel: entity.ChannelEmail,
		}, nil)

	var queued *entity.Notification
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			queued = notification
		}).
		Return(nil)

	result, err := svc.SweepMissed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rescheduled)
	require.Len(t, result.Results, 1)
	require.NotNil(t, result.Results[0].NewDate)
	assert.Equal(t, wantDate, *result.Results[0].NewDate)

	require.NotNil(t, queued)
	assert.Equal(t, entity.NotificationTypeReschedule, queued.Type)
	assert.Equal(t, entity.NotificationStatusQueued, queued.Status)
	assert.Contains(t, queued.Body, "2020 Toyota Corolla")
	assert.Contains(t, queued.Body, "11 Mar 2026")
}

func TestRescheduleService_SweepMissed_VehicleInShopIsSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	svc, mocks := newTestRescheduleService(t, now)

	ctx := context.Background()
	ticket := missedTicket(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	vehicle := &entity.Vehicle{ID: ticket.VehicleID, LocationStatus: entity.VehicleLocationInShop}

	mocks.ticketRepo.EXPECT().
		FindDueForReschedule(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.Ticket{ticket}, nil)
	mocks.vehicleRepo.EXPECT().FindVehicleByID(ctx, ticket.VehicleID).Return(vehicle, nil)

	// No UpdateRescheduleDate and no CreateNotification expectations: the
	// ticket must be left alone.
	result, err := svc.SweepMissed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "vehicle is in shop", result.Results[0].Reason)
}

func TestRescheduleService_SweepMissed_FailureDoesNotAbortSweep(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	svc, mocks := newTestRescheduleService(t, now)

	ctx := context.Background()
	broken := missedTicket(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	healthy := missedTicket(time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC))

	mocks.ticketRepo.EXPECT().
		FindDueForReschedule(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.Ticket{broken, healthy}, nil)

	mocks.vehicleRepo.EXPECT().
		FindVehicleByID(ctx, broken.VehicleID).
		Return(nil, errors.New("connection reset"))

	mocks.vehicleRepo.EXPECT().
		FindVehicleByID(ctx, healthy.VehicleID).
		Return(&entity.Vehicle{ID: healthy.VehicleID, LocationStatus: entity.VehicleLocationWithCustomer}, nil)
	mocks.ticketRepo.EXPECT().
		UpdateRescheduleDate(ctx, healthy.ID, healthy.RescheduleDate.Add(24*time.Hour)).
		Return(nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, healthy.CustomerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	result, err := svc.SweepMissed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Rescheduled)
	assert.Equal(t, usecase.SweepActionFailed, result.Results[0].Action)
}

func TestRescheduleService_SweepMissed_NoCandidates(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	svc, mocks := newTestRescheduleService(t, now)

	ctx := context.Background()
	mocks.ticketRepo.EXPECT().
		FindDueForReschedule(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	result, err := svc.SweepMissed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
}
