package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// workorderService implements the WorkorderUsecase interface.
type workorderService struct {
	txManager   repository.TransactionManager
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewWorkorderService is the constructor for workorderService.
func NewWorkorderService(
	txManager repository.TransactionManager,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.WorkorderUsecase {
	return &workorderService{
		txManager:   txManager,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// Dispatch routes one workorder request to its action handler. Every action
// requires the employee or admin role; assign requires admin.
func (srv *workorderService) Dispatch(ctx context.Context, actor *usecase.Actor, req *usecase.WorkorderRequest) (*usecase.WorkorderResult, error) {
	if actor == nil {
		return nil, domainerrors.ErrAuthenticationRequired.WrapMessage("workorder request without an actor")
	}
	if !entity.HasAnyRole(actor.Roles, entity.RoleEmployee, entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden.WrapMessage("workorder actions require the employee or admin role")
	}

	switch req.Action {
	case usecase.WorkorderActionCreate:
		return srv.create(ctx, actor, req)
	case usecase.WorkorderActionUpdate:
		return srv.update(ctx, actor, req)
	case usecase.WorkorderActionAssign:
		return srv.assign(ctx, actor, req)
	case usecase.WorkorderActionAddParts:
		return srv.addParts(ctx, actor, req)
	case usecase.WorkorderActionCalculateTotal:
		return srv.calculateTotal(ctx, actor, req)
	}

	return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown workorder action " + req.Action)
}

func (srv *workorderService) create(ctx context.Context, actor *usecase.Actor, req *usecase.WorkorderRequest) (*usecase.WorkorderResult, error) {
	if req.VehicleID == nil || req.CustomerID == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("vehicle_id and customer_id are required to create a workorder")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("description is required to create a workorder")
	}

	if _, err := srv.vehicleRepo.FindVehicleByID(ctx, *req.VehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound.WrapMessage("cannot create workorder for unknown vehicle")
		}

		return nil, errors.Wrap(err, "failed to find vehicle")
	}

	now := srv.now()
	ticket := &entity.Ticket{
		ID:           uuid.New(),
		TicketNumber: newTicketNumber(now),
		Description:  req.Description,
		Status:       entity.TicketStatusPending,
		VehicleID:    *req.VehicleID,
		CustomerID:   *req.CustomerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.EstimatedCompletion != nil {
		ticket.EstimatedCompletion = req.EstimatedCompletion
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTicketRepository().CreateTicket(ctx, ticket); err != nil {
			return errors.Wrap(err, "failed to create ticket")
		}

		return srv.audit(ctx, repoFactory, actor, ticket.ID, "workorder.create", nil, map[string]any{
			"ticket_number": ticket.TicketNumber,
			"status":        string(ticket.Status),
			"vehicle_id":    ticket.VehicleID.String(),
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create workorder")
	}

	srv.logger.Info("created workorder",
		"ticketID", ticket.ID, "ticketNumber", ticket.TicketNumber, "actorID", actor.ID)
	srv.publishStatus(ctx, ticket.ID, ticket.CustomerID, ticket.Status, "created")

	return &usecase.WorkorderResult{Ticket: ticket}, nil
}

func (srv *workorderService) update(ctx context.Context, actor *usecase.Actor, req *usecase.WorkorderRequest) (*usecase.WorkorderResult, error) {
	if req.WorkorderID == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("workorder_id is required to update a workorder")
	}

	patch := repository.TicketPatch{
		Status:              req.Status,
		EstimatedCompletion: req.EstimatedCompletion,
		PrimaryMechanicID:   req.PrimaryMechanicID,
		SecondaryMechanicID: req.SecondaryMechanicID,
		LaborHours:          req.LaborHours,
		LaborRate:           req.LaborRate,
	}
	if req.Description != "" {
		patch.Description = &req.Description
	}

	var ticket *entity.Ticket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		found, err := ticketRepo.FindTicketByID(ctx, *req.WorkorderID)
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				return domainerrors.ErrTicketNotFound.WrapMessage("workorder not found for update")
			}

			return errors.Wrap(err, "failed to find ticket")
		}

		if err := ticketRepo.UpdateTicket(ctx, found.ID, patch); err != nil {
			return errors.Wrap(err, "failed to update ticket")
		}

		oldValues, newValues := patchDiff(found, patch)
		if err := srv.audit(ctx, repoFactory, actor, found.ID, "workorder.update", oldValues, newValues); err != nil {
			return err
		}

		applyPatch(found, patch)
		ticket = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update workorder")
	}

	if req.Status != nil {
		srv.publishStatus(ctx, ticket.ID, ticket.CustomerID, *req.Status, "updated")
	}

	return &usecase.WorkorderResult{Ticket: ticket}, nil
}

func (srv *workorderService) assign(ctx context.Context, actor *usecase.Actor, req *usecase.WorkorderRequest) (*usecase.WorkorderResult, error) {
	if !entity.HasRole(actor.Roles, entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden.WrapMessage("assigning mechanics requires the admin role")
	}
	if req.WorkorderID == nil || req.MechanicID == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("workorder_id and mechanic_id are required to assign")
	}

	if _, err := srv.userRepo.FindUserByID(ctx, *req.MechanicID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("cannot assign unknown mechanic")
		}

		return nil, errors.Wrap(err, "failed to find mechanic")
	}

	now := srv.now()
	assignment := &entity.TicketAssignment{
		ID:         uuid.New(),
		TicketID:   *req.WorkorderID,
		MechanicID: *req.MechanicID,
		AssignedBy: actor.ID,
		AssignedAt: now,
	}

	var ticket *entity.Ticket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		found, err := ticketRepo.FindTicketByID(ctx, *req.WorkorderID)
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				return domainerrors.ErrTicketNotFound.WrapMessage("workorder not found for assignment")
			}

			return errors.Wrap(err, "failed to find ticket")
		}

		if err := ticketRepo.CreateAssignment(ctx, assignment); err != nil {
			return errors.Wrap(err, "failed to create assignment")
		}

		status := entity.TicketStatusAssigned
		patch := repository.TicketPatch{
			PrimaryMechanicID: req.MechanicID,
			Status:            &status,
		}
		if err := ticketRepo.UpdateTicket(ctx, found.ID, patch); err != nil {
			return errors.Wrap(err, "failed to set primary mechanic")
		}

		oldValues, newValues := patchDiff(found, patch)
		if err := srv.audit(ctx, repoFactory, actor, found.ID, "workorder.assign", oldValues, newValues); err != nil {
			return err
		}

		applyPatch(found, patch)
		ticket = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign workorder")
	}

	srv.logger.Info("assigned mechanic",
		"ticketID", ticket.ID, "mechanicID", *req.MechanicID, "actorID", actor.ID)
	srv.publishStatus(ctx, ticket.ID, ticket.CustomerID, ticket.Status, "assigned")

	return &usecase.WorkorderResult{Ticket: ticket, Assignment: assignment}, nil
}

func (srv *workorderService) addParts(ctx context.Context, actor *usecase.Actor, req *usecase.WorkorderRequest) (*usecase.WorkorderResult, error) {
	if req.WorkorderID == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("workorder_id is required to add parts")
	}
	if len(req.Parts) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one part line is required")
	}
	for _, part := range req.Parts {
		if part.Name == "" || part.Quantity <= 0 || part.UnitPrice < 0 || part.TaxPercent < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("part lines need a name, a positive quantity and non-negative amounts")
		}
	}

	var ticket *entity.Ticket
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewTicketRepository().FindTicketByID(ctx, *req.WorkorderID)
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				return domainerrors.ErrTicketNotFound.WrapMessage("workorder not found for adding parts")
			}

			return errors.Wrap(err, "failed to find ticket")
		}

		now := srv.now()
		parts := make([]*entity.Part, 0, len(req.Parts))
		names := make([]string, 0, len(req.Parts))
		for _, input := range req.Parts {
			parts = append(parts, &entity.Part{
				ID:         uuid.New(),
				TicketID:   found.ID,
				Name:       input.Name,
				Quantity:   input.Quantity,
				UnitPrice:  input.UnitPrice,
				TaxPercent: input.TaxPercent,
				CreatedAt:  now,
			})
			names = append(names, input.Name)
		}

		if err := repoFactory.NewPartRepository().CreateParts(ctx, parts); err != nil {
			return errors.Wrap(err, "failed to create part lines")
		}

		if err := srv.audit(ctx, repoFactory, actor, found.ID, "workorder.add_parts", nil, map[string]any{
			"parts": names,
		}); err != nil {
			return err
		}

		ticket = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add parts")
	}

	return &usecase.WorkorderResult{Ticket: ticket}, nil
}

// calculateTotal recomputes the cost breakdown from the stored part lines and
// labor fields. Parts are taxed per line; labor is never taxed. Recalculating
// without changing inputs writes the same totals again.
func (srv *workorderService) calculateTotal(ctx context.Context, actor *usecase.Actor, req *usecase.WorkorderRequest) (*usecase.WorkorderResult, error) {
	if req.WorkorderID == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("workorder_id is required to calculate totals")
	}

	var (
		ticket    *entity.Ticket
		breakdown *usecase.CostBreakdown
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		found, err := ticketRepo.FindTicketByID(ctx, *req.WorkorderID)
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				return domainerrors.ErrTicketNotFound.WrapMessage("workorder not found for totals")
			}

			return errors.Wrap(err, "failed to find ticket")
		}

		parts, err := repoFactory.NewPartRepository().FindPartsByTicket(ctx, found.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load part lines")
		}

		var partsSubtotal, partsTax float64
		for _, part := range parts {
			partsSubtotal += part.Subtotal()
			partsTax += part.Tax()
		}
		laborCost := found.LaborHours * found.LaborRate

		breakdown = &usecase.CostBreakdown{
			PartsSubtotal: roundCents(partsSubtotal),
			PartsTax:      roundCents(partsTax),
			LaborCost:     roundCents(laborCost),
		}
		breakdown.Total = roundCents(breakdown.PartsSubtotal + breakdown.PartsTax + breakdown.LaborCost)

		totals := repository.TicketTotals{
			PartsCost: breakdown.PartsSubtotal,
			TaxAmount: breakdown.PartsTax,
			LaborCost: breakdown.LaborCost,
			TotalCost: breakdown.Total,
		}
		if err := ticketRepo.UpdateTotals(ctx, found.ID, totals); err != nil {
			return errors.Wrap(err, "failed to persist totals")
		}

		if err := srv.audit(ctx, repoFactory, actor, found.ID, "workorder.calculate_total", map[string]any{
			"total_cost": found.TotalCost,
		}, map[string]any{
			"total_cost": breakdown.Total,
		}); err != nil {
			return err
		}

		found.PartsCost = totals.PartsCost
		found.TaxAmount = totals.TaxAmount
		found.LaborCost = totals.LaborCost
		found.TotalCost = totals.TotalCost
		ticket = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate totals")
	}

	return &usecase.WorkorderResult{Ticket: ticket, Breakdown: breakdown}, nil
}

func (srv *workorderService) audit(ctx context.Context, repoFactory repository.RepositoryFactory, actor *usecase.Actor, ticketID uuid.UUID, action string, oldValues, newValues map[string]any) error {
	log := &entity.AuditLog{
		ID:        uuid.New(),
		ActorID:   actor.ID,
		TicketID:  ticketID,
		Action:    action,
		OldValues: oldValues,
		NewValues: newValues,
		CreatedAt: srv.now(),
	}
	if err := repoFactory.NewAuditLogRepository().CreateAuditLog(ctx, log); err != nil {
		return errors.Wrap(err, "failed to write audit log")
	}

	return nil
}

// publishStatus pushes a status change to the realtime feed, best-effort.
func (srv *workorderService) publishStatus(ctx context.Context, ticketID, customerID uuid.UUID, status entity.TicketStatus, detail string) {
	event := &service.TicketEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventTicketStatusChanged,
		TicketID:   ticketID.String(),
		CustomerID: customerID.String(),
		Status:     string(status),
		Detail:     detail,
	}
	if err := srv.publisher.PublishTicketEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish ticket event",
			"ticketID", ticketID, "error", err)
	}
}

// patchDiff records the before and after values of the fields a patch touches.
func patchDiff(ticket *entity.Ticket, patch repository.TicketPatch) (oldValues, newValues map[string]any) {
	oldValues = make(map[string]any)
	newValues = make(map[string]any)

	if patch.Description != nil {
		oldValues["description"] = ticket.Description
		newValues["description"] = *patch.Description
	}
	if patch.Status != nil {
		oldValues["status"] = string(ticket.Status)
		newValues["status"] = string(*patch.Status)
	}
	if patch.PrimaryMechanicID != nil {
		if ticket.PrimaryMechanicID != nil {
			oldValues["primary_mechanic_id"] = ticket.PrimaryMechanicID.String()
		}
		newValues["primary_mechanic_id"] = patch.PrimaryMechanicID.String()
	}
	if patch.SecondaryMechanicID != nil {
		if ticket.SecondaryMechanicID != nil {
			oldValues["secondary_mechanic_id"] = ticket.SecondaryMechanicID.String()
		}
		newValues["secondary_mechanic_id"] = patch.SecondaryMechanicID.String()
	}
	if patch.EstimatedCompletion != nil {
		if ticket.EstimatedCompletion != nil {
			oldValues["estimated_completion"] = ticket.EstimatedCompletion.Format(time.RFC3339)
		}
		newValues["estimated_completion"] = patch.EstimatedCompletion.Format(time.RFC3339)
	}
	if patch.LaborHours != nil {
		oldValues["labor_hours"] = ticket.LaborHours
		newValues["labor_hours"] = *patch.LaborHours
	}
	if patch.LaborRate != nil {
		oldValues["labor_rate"] = ticket.LaborRate
		newValues["labor_rate"] = *patch.LaborRate
	}

	return oldValues, newValues
}

func applyPatch(ticket *entity.Ticket, patch repository.TicketPatch) {
	if patch.Description != nil {
		ticket.Description = *patch.Description
	}
	if patch.Status != nil {
		ticket.Status = *patch.Status
	}
	if patch.EstimatedCompletion != nil {
		ticket.EstimatedCompletion = patch.EstimatedCompletion
	}
	if patch.PrimaryMechanicID != nil {
		ticket.PrimaryMechanicID = patch.PrimaryMechanicID
	}
	if patch.SecondaryMechanicID != nil {
		ticket.SecondaryMechanicID = patch.SecondaryMechanicID
	}
	if patch.LaborHours != nil {
		ticket.LaborHours = *patch.LaborHours
	}
	if patch.LaborRate != nil {
		ticket.LaborRate = *patch.LaborRate
	}
}

func newTicketNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return fmt.Sprintf("WO-%d-%s", now.Year(), suffix)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
