package impl

import (
	"context"
	"testing"
	"time"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"
	mockRepo "garage/internal/mocks/repository"
	mockSvc "garage/internal/mocks/service"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchMocks struct {
	notificationRepo *mockRepo.MockNotificationRepository
	ticketRepo       *mockRepo.MockTicketRepository
	profileRepo      *mockRepo.MockCustomerProfileRepository
	senders          *mockSvc.MockSenderRegistry
	publisher        *mockSvc.MockEventPublisher
}

func newTestDispatchService(t *testing.T, now time.Time) (*dispatchService, *dispatchMocks) {
	t.Helper()

	mocks := &dispatchMocks{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		ticketRepo:       mockRepo.NewMockTicketRepository(t),
		profileRepo:      mockRepo.NewMockCustomerProfileRepository(t),
		senders:          mockSvc.NewMockSenderRegistry(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	svc := NewDispatchService(
		testConfig(),
		mocks.notificationRepo,
		mocks.ticketRepo,
		mocks.profileRepo,
		mocks.senders,
		mocks.publisher,
		testLogger(),
	).(*dispatchService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func queuedReminder(ticket *entity.Ticket) *entity.Notification {
	return &entity.Notification{
		ID:         uuid.New(),
		TicketID:   ticket.ID,
		CustomerID: ticket.CustomerID,
		Channel:    entity.ChannelEmail,
		Type:       entity.NotificationTypeReminder,
		Status:     entity.NotificationStatusQueued,
		SendAt:     time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	}
}

func TestDispatchService_DispatchDue_SendsReminder(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	pickupAt := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	ticket := &entity.Ticket{
		ID:                uuid.New(),
		TicketNumber:      "WO-2026-A1B2C3D4",
		Description:       "brake pad replacement",
		CustomerID:        uuid.New(),
		PreferredPickupAt: &pickupAt,
	}
	notification := queuedReminder(ticket)
	profile := &entity.CustomerProfile{
		CustomerID:       ticket.CustomerID,
		Email:            "ana@example.com",
		OptIn:            true,
		Language:         "en",
		Timezone:         "UTC",
		PreferredChannel: entity.ChannelEmail,
	}

	mocks.notificationRepo.EXPECT().
		FindDueNotifications(ctx, now, 10).
		Return([]*entity.Notification{notification}, nil)
	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().FindProfileByCustomerID(ctx, ticket.CustomerID).Return(profile, nil)

	sender := mockSvc.NewMockChannelSender(t)
	mocks.senders.EXPECT().SenderFor(entity.ChannelEmail).Return(sender, nil)

	var sent *service.OutboundMessage
	sender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.OutboundMessage")).
		Run(func(_ context.Context, msg *service.OutboundMessage) {
			sent = msg
		}).
		Return(nil)

	mocks.notificationRepo.EXPECT().
		MarkSent(ctx, notification.ID, now, mock.AnythingOfType("string")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)

	require.NotNil(t, sent)
	assert.Equal(t, "ana@example.com", sent.To)
	assert.Contains(t, sent.Body, "WO-2026-A1B2C3D4")
	assert.Contains(t, sent.Body, "brake pad replacement")
}

func TestDispatchService_DispatchDue_OptedOutNeverReachesProvider(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), CustomerID: uuid.New()}
	notification := queuedReminder(ticket)
	profile := &entity.CustomerProfile{CustomerID: ticket.CustomerID, Email: "ana@example.com", OptIn: false}

	mocks.notificationRepo.EXPECT().
		FindDueNotifications(ctx, now, 10).
		Return([]*entity.Notification{notification}, nil)
	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().FindProfileByCustomerID(ctx, ticket.CustomerID).Return(profile, nil)
	mocks.notificationRepo.EXPECT().
		MarkSkipped(ctx, notification.ID, "customer opted out").
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	// No SenderFor expectation: resolving a provider for an opted-out
	// customer would fail the test.
	result, err := svc.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "customer opted out", result.Results[0].Detail)
}

func TestDispatchService_DispatchDue_MissingProviderConfigFailsItem(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-X", CustomerID: uuid.New()}
	notification := queuedReminder(ticket)
	profile := &entity.CustomerProfile{
		CustomerID: ticket.CustomerID,
		Email:      "ana@example.com",
		OptIn:      true,
	}

	mocks.notificationRepo.EXPECT().
		FindDueNotifications(ctx, now, 10).
		Return([]*entity.Notification{notification}, nil)
	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().FindProfileByCustomerID(ctx, ticket.CustomerID).Return(profile, nil)
	mocks.senders.EXPECT().
		SenderFor(entity.ChannelEmail).
		Return(nil, domainerrors.ErrProviderNotConfigured)
	mocks.notificationRepo.EXPECT().
		MarkFailed(ctx, notification.ID, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, entity.NotificationStatusFailed, result.Results[0].Status)
}

func TestDispatchService_DispatchDue_MissingProfileFailsItem(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), CustomerID: uuid.New()}
	notification := queuedReminder(ticket)

	mocks.notificationRepo.EXPECT().
		FindDueNotifications(ctx, now, 10).
		Return([]*entity.Notification{notification}, nil)
	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, ticket.CustomerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.notificationRepo.EXPECT().
		MarkFailed(ctx, notification.ID, "customer profile not found", "").
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_DispatchDue_FailureDoesNotAbortSiblings(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	ticketA := &entity.Ticket{ID: uuid.New(), CustomerID: uuid.New()}
	ticketB := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-B", CustomerID: uuid.New()}
	failing := queuedReminder(ticketA)
	healthy := queuedReminder(ticketB)

	mocks.notificationRepo.EXPECT().
		FindDueNotifications(ctx, now, 10).
		Return([]*entity.Notification{failing, healthy}, nil)

	mocks.ticketRepo.EXPECT().
		FindTicketByID(ctx, ticketA.ID).
		Return(nil, errors.New("connection reset"))
	mocks.notificationRepo.EXPECT().
		MarkFailed(ctx, failing.ID, mock.AnythingOfType("string"), "").
		Return(nil)

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticketB.ID).Return(ticketB, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, ticketB.CustomerID).
		Return(&entity.CustomerProfile{
			CustomerID: ticketB.CustomerID,
			Email:      "b@example.com",
			OptIn:      true,
		}, nil)

	sender := mockSvc.NewMockChannelSender(t)
	mocks.senders.EXPECT().SenderFor(entity.ChannelEmail).Return(sender, nil)
	sender.EXPECT().Send(ctx, mock.Anything).Return(nil)
	mocks.notificationRepo.EXPECT().
		MarkSent(ctx, healthy.ID, now, mock.AnythingOfType("string")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Sent)
}

func TestDispatchService_DispatchDue_EmptyBatch(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	mocks.notificationRepo.EXPECT().
		FindDueNotifications(ctx, now, 10).
		Return(nil, nil)

	result, err := svc.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
}

func TestDispatchService_SendTest_Success(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-T", CustomerID: uuid.New()}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, ticket.CustomerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	sender := mockSvc.NewMockChannelSender(t)
	mocks.senders.EXPECT().SenderFor(entity.ChannelSMS).Return(sender, nil)
	sender.EXPECT().Send(ctx, mock.AnythingOfType("*service.OutboundMessage")).Return(nil)
	mocks.notificationRepo.EXPECT().
		MarkSent(ctx, mock.AnythingOfType("uuid.UUID"), now, mock.AnythingOfType("string")).
		Return(nil)

	notification, err := svc.SendTest(ctx, adminActor(), ticket.ID, entity.ChannelSMS, "+15550002222")
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, notification.Status)
	assert.Equal(t, "+15550002222", notification.Destination)
	assert.Equal(t, entity.NotificationTypeTest, notification.Type)
}

func TestDispatchService_SendTest_ProviderFailureRecordedOnRow(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
	svc, mocks := newTestDispatchService(t, now)

	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), CustomerID: uuid.New()}

	mocks.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByCustomerID(ctx, ticket.CustomerID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	mocks.senders.EXPECT().
		SenderFor(entity.ChannelWhatsApp).
		Return(nil, domainerrors.ErrProviderNotConfigured)
	mocks.notificationRepo.EXPECT().
		MarkFailed(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	notification, err := svc.SendTest(ctx, adminActor(), ticket.ID, entity.ChannelWhatsApp, "+15550003333")
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusFailed, notification.Status)
	assert.NotEmpty(t, notification.ErrorDetail)
}

func TestDispatchService_SendTest_UnknownChannel(t *testing.T) {
	svc, _ := newTestDispatchService(t, time.Now())

	_, err := svc.SendTest(context.Background(), adminActor(), uuid.New(), entity.Channel("pigeon"), "coop 7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDispatchService_SendTest_NonAdminForbidden(t *testing.T) {
	svc, _ := newTestDispatchService(t, time.Now())

	// No repository expectations: a rejected caller must not touch the
	// ticket or create a notification row.
	customer := &usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleCustomer}}
	_, err := svc.SendTest(context.Background(), customer, uuid.New(), entity.ChannelEmail, "ana@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
