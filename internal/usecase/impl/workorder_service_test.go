package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	mockRepo "garage/internal/mocks/repository"
	mockSvc "garage/internal/mocks/service"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workorderMocks struct {
	txManager   *mockRepo.MockTransactionManager
	vehicleRepo *mockRepo.MockVehicleRepository
	userRepo    *mockRepo.MockUserRepository
	publisher   *mockSvc.MockEventPublisher
}

func newTestWorkorderService(t *testing.T, now time.Time) (*workorderService, *workorderMocks) {
	t.Helper()

	mocks := &workorderMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		vehicleRepo: mockRepo.NewMockVehicleRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewWorkorderService(
		mocks.txManager,
		mocks.vehicleRepo,
		mocks.userRepo,
		mocks.publisher,
		testLogger(),
	).(*workorderService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func employeeActor() *usecase.Actor {
	return &usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleEmployee}}
}

func adminActor() *usecase.Actor {
	return &usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleAdmin}}
}

func TestWorkorderService_Dispatch_RequiresActor(t *testing.T) {
	svc, _ := newTestWorkorderService(t, time.Now())

	_, err := svc.Dispatch(context.Background(), nil, &usecase.WorkorderRequest{Action: usecase.WorkorderActionCreate})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestWorkorderService_Dispatch_CustomerIsForbidden(t *testing.T) {
	svc, _ := newTestWorkorderService(t, time.Now())

	actor := &usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleCustomer}}
	_, err := svc.Dispatch(context.Background(), actor, &usecase.WorkorderRequest{Action: usecase.WorkorderActionCreate})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestWorkorderService_Dispatch_UnknownAction(t *testing.T) {
	svc, _ := newTestWorkorderService(t, time.Now())

	_, err := svc.Dispatch(context.Background(), employeeActor(), &usecase.WorkorderRequest{Action: "teleport"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWorkorderService_Create_Success(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	svc, mocks := newTestWorkorderService(t, now)

	ctx := context.Background()
	vehicleID := uuid.New()
	customerID := uuid.New()
	actor := employeeActor()

	mocks.vehicleRepo.EXPECT().
		FindVehicleByID(ctx, vehicleID).
		Return(&entity.Vehicle{ID: vehicleID}, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			ticketRepo := mockRepo.NewMockTicketRepository(t)
			auditRepo := mockRepo.NewMockAuditLogRepository(t)

			factory.EXPECT().NewTicketRepository().Return(ticketRepo)
			factory.EXPECT().NewAuditLogRepository().Return(auditRepo)
			ticketRepo.EXPECT().CreateTicket(ctx, mock.AnythingOfType("*entity.Ticket")).Return(nil)
			auditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.Dispatch(ctx, actor, &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionCreate,
		VehicleID:   &vehicleID,
		CustomerID:  &customerID,
		Description: "timing belt replacement",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Ticket)
	assert.Equal(t, entity.TicketStatusPending, result.Ticket.Status)
	assert.True(t, strings.HasPrefix(result.Ticket.TicketNumber, "WO-2026-"))
	assert.Equal(t, customerID, result.Ticket.CustomerID)
}

func TestWorkorderService_Create_UnknownVehicle(t *testing.T) {
	svc, mocks := newTestWorkorderService(t, time.Now())

	ctx := context.Background()
	vehicleID := uuid.New()
	customerID := uuid.New()
	mocks.vehicleRepo.EXPECT().
		FindVehicleByID(ctx, vehicleID).
		Return(nil, repository.ErrVehicleNotFound)

	_, err := svc.Dispatch(ctx, employeeActor(), &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionCreate,
		VehicleID:   &vehicleID,
		CustomerID:  &customerID,
		Description: "oil change",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotFound))
}

func TestWorkorderService_Assign_EmployeeIsForbidden(t *testing.T) {
	svc, _ := newTestWorkorderService(t, time.Now())

	workorderID := uuid.New()
	mechanicID := uuid.New()
	_, err := svc.Dispatch(context.Background(), employeeActor(), &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionAssign,
		WorkorderID: &workorderID,
		MechanicID:  &mechanicID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestWorkorderService_Assign_AdminSuccess(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	svc, mocks := newTestWorkorderService(t, now)

	ctx := context.Background()
	actor := adminActor()
	workorderID := uuid.New()
	mechanicID := uuid.New()
	ticket := &entity.Ticket{ID: workorderID, CustomerID: uuid.New(), Status: entity.TicketStatusApproved}

	mocks.userRepo.EXPECT().
		FindUserByID(ctx, mechanicID).
		Return(&entity.User{ID: mechanicID}, nil)

	var createdAssignment *entity.TicketAssignment
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			ticketRepo := mockRepo.NewMockTicketRepository(t)
			auditRepo := mockRepo.NewMockAuditLogRepository(t)

			factory.EXPECT().NewTicketRepository().Return(ticketRepo)
			factory.EXPECT().NewAuditLogRepository().Return(auditRepo)
			ticketRepo.EXPECT().FindTicketByID(ctx, workorderID).Return(ticket, nil)
			ticketRepo.EXPECT().
				CreateAssignment(ctx, mock.AnythingOfType("*entity.TicketAssignment")).
				Run(func(_ context.Context, assignment *entity.TicketAssignment) {
					createdAssignment = assignment
				}).
				Return(nil)
			ticketRepo.EXPECT().
				UpdateTicket(ctx, workorderID, mock.AnythingOfType("repository.TicketPatch")).
				Return(nil)
			auditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.Dispatch(ctx, actor, &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionAssign,
		WorkorderID: &workorderID,
		MechanicID:  &mechanicID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, mechanicID, result.Assignment.MechanicID)
	assert.Equal(t, actor.ID, result.Assignment.AssignedBy)
	assert.Equal(t, entity.TicketStatusAssigned, result.Ticket.Status)
	require.NotNil(t, createdAssignment)
	assert.Equal(t, now, createdAssignment.AssignedAt)
}

func TestWorkorderService_CalculateTotal_TaxesPartsNotLabor(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	svc, mocks := newTestWorkorderService(t, now)

	ctx := context.Background()
	workorderID := uuid.New()
	ticket := &entity.Ticket{
		ID:         workorderID,
		CustomerID: uuid.New(),
		LaborHours: 1,
		LaborRate:  80,
	}
	parts := []*entity.Part{
		{Name: "brake pads", Quantity: 2, UnitPrice: 50, TaxPercent: 10},
		{Name: "oil filter", Quantity: 1, UnitPrice: 20, TaxPercent: 0},
	}

	var savedTotals repository.TicketTotals
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			ticketRepo := mockRepo.NewMockTicketRepository(t)
			partRepo := mockRepo.NewMockPartRepository(t)
			auditRepo := mockRepo.NewMockAuditLogRepository(t)

			factory.EXPECT().NewTicketRepository().Return(ticketRepo)
			factory.EXPECT().NewPartRepository().Return(partRepo)
			factory.EXPECT().NewAuditLogRepository().Return(auditRepo)
			ticketRepo.EXPECT().FindTicketByID(ctx, workorderID).Return(ticket, nil)
			partRepo.EXPECT().FindPartsByTicket(ctx, workorderID).Return(parts, nil)
			ticketRepo.EXPECT().
				UpdateTotals(ctx, workorderID, mock.AnythingOfType("repository.TicketTotals")).
				Run(func(_ context.Context, _ uuid.UUID, totals repository.TicketTotals) {
					savedTotals = totals
				}).
				Return(nil)
			auditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	result, err := svc.Dispatch(ctx, employeeActor(), &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionCalculateTotal,
		WorkorderID: &workorderID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Breakdown)

	// Parts: 2x$50 + 1x$20 = $120. Tax: 10% on the brake pads only = $10.
	// Labor: 1h at $80, untaxed. Total $210.
	assert.Equal(t, 120.0, result.Breakdown.PartsSubtotal)
	assert.Equal(t, 10.0, result.Breakdown.PartsTax)
	assert.Equal(t, 80.0, result.Breakdown.LaborCost)
	assert.Equal(t, 210.0, result.Breakdown.Total)
	assert.Equal(t, 210.0, savedTotals.TotalCost)
	assert.Equal(t, 210.0, result.Ticket.TotalCost)
}

func TestWorkorderService_AddParts_ValidatesLines(t *testing.T) {
	svc, _ := newTestWorkorderService(t, time.Now())

	workorderID := uuid.New()
	_, err := svc.Dispatch(context.Background(), employeeActor(), &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionAddParts,
		WorkorderID: &workorderID,
		Parts:       []usecase.PartInput{{Name: "gasket", Quantity: 0, UnitPrice: 5}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWorkorderService_Update_PatchesAndAudits(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	svc, mocks := newTestWorkorderService(t, now)

	ctx := context.Background()
	workorderID := uuid.New()
	ticket := &entity.Ticket{ID: workorderID, CustomerID: uuid.New(), Status: entity.TicketStatusPending}
	newStatus := entity.TicketStatusInProgress

	var auditEntry *entity.AuditLog
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			ticketRepo := mockRepo.NewMockTicketRepository(t)
			auditRepo := mockRepo.NewMockAuditLogRepository(t)

			factory.EXPECT().NewTicketRepository().Return(ticketRepo)
			factory.EXPECT().NewAuditLogRepository().Return(auditRepo)
			ticketRepo.EXPECT().FindTicketByID(ctx, workorderID).Return(ticket, nil)
			ticketRepo.EXPECT().
				UpdateTicket(ctx, workorderID, mock.AnythingOfType("repository.TicketPatch")).
				Return(nil)
			auditRepo.EXPECT().
				CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).
				Run(func(_ context.Context, log *entity.AuditLog) {
					auditEntry = log
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishTicketEvent(ctx, mock.AnythingOfType("*service.TicketEvent")).
		Return(nil)

	result, err := svc.Dispatch(ctx, employeeActor(), &usecase.WorkorderRequest{
		Action:      usecase.WorkorderActionUpdate,
		WorkorderID: &workorderID,
		Status:      &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusInProgress, result.Ticket.Status)

	require.NotNil(t, auditEntry)
	assert.Equal(t, "workorder.update", auditEntry.Action)
	assert.Equal(t, "pending", auditEntry.OldValues["status"])
	assert.Equal(t, "in_progress", auditEntry.NewValues["status"])
}
