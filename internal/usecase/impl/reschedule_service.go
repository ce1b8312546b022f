package impl

import (
	"context"
	"log/slog"
	"time"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/repository"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rescheduleService implements the RescheduleUsecase interface.
type rescheduleService struct {
	ticketRepo       repository.TicketRepository
	vehicleRepo      repository.VehicleRepository
	profileRepo      repository.CustomerProfileRepository
	notificationRepo repository.NotificationRepository
	renderer         *messageRenderer
	defaultChannel   entity.Channel
	logger           *slog.Logger
	now              func() time.Time
}

// NewRescheduleService is the constructor for rescheduleService.
func NewRescheduleService(
	cfg *config.Config,
	ticketRepo repository.TicketRepository,
	vehicleRepo repository.VehicleRepository,
	profileRepo repository.CustomerProfileRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) usecase.RescheduleUsecase {
	defaultChannel := entity.Channel(cfg.Dispatch.DefaultRescheduleChannel)
	if !defaultChannel.Valid() {
		defaultChannel = entity.ChannelEmail
	}

	return &rescheduleService{
		ticketRepo:       ticketRepo,
		vehicleRepo:      vehicleRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		renderer:         newMessageRenderer(cfg),
		defaultChannel:   defaultChannel,
		logger:           logger,
		now:              time.Now,
	}
}

// SweepMissed visits every open ticket whose reschedule date falls within the
// current UTC day and moves each missed appointment forward by one day,
// keeping the original time of day. Per-ticket failures are recorded and the
// sweep carries on.
func (srv *rescheduleService) SweepMissed(ctx context.Context) (*usecase.SweepResult, error) {
	now := srv.now().UTC()
	from := now.Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	tickets, err := srv.ticketRepo.FindDueForReschedule(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tickets due for reschedule")
	}

	result := &usecase.SweepResult{
		Results: make([]usecase.SweepItemResult, 0, len(tickets)),
	}
	for _, ticket := range tickets {
		item := srv.sweepTicket(ctx, ticket, now)

		result.Processed++
		switch item.Action {
		case usecase.SweepActionRescheduled:
			result.Rescheduled++
		case usecase.SweepActionSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
		result.Results = append(result.Results, item)
	}

	srv.logger.Info("completed reschedule sweep",
		"window", from.Format(time.DateOnly),
		"processed", result.Processed,
		"rescheduled", result.Rescheduled,
		"skipped", result.Skipped,
		"failed", result.Failed)

	return result, nil
}

func (srv *rescheduleService) sweepTicket(ctx context.Context, ticket *entity.Ticket, now time.Time) usecase.SweepItemResult {
	item := usecase.SweepItemResult{TicketID: ticket.ID}

	if ticket.RescheduleDate == nil {
		item.Action = usecase.SweepActionSkipped
		item.Reason = "no reschedule date"

		return item
	}

	vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, ticket.VehicleID)
	if err != nil {
		item.Action = usecase.SweepActionFailed
		item.Reason = "failed to load vehicle: " + err.Error()

		return item
	}

	// The vehicle showing up means the appointment was kept, not missed.
	if vehicle.LocationStatus == entity.VehicleLocationInShop {
		item.Action = usecase.SweepActionSkipped
		item.Reason = "vehicle is in shop"

		return item
	}

	newDate := ticket.RescheduleDate.Add(24 * time.Hour)
	if err := srv.ticketRepo.UpdateRescheduleDate(ctx, ticket.ID, newDate); err != nil {
		item.Action = usecase.SweepActionFailed
		item.Reason = "failed to move reschedule date: " + err.Error()

		return item
	}

	srv.queueRescheduleNotice(ctx, ticket, vehicle, newDate, now)

	item.Action = usecase.SweepActionRescheduled
	item.NewDate = &newDate

	return item
}

// queueRescheduleNotice creates the reschedule notification with its body
// already rendered, so the dispatcher does not depend on ticket state that the
// sweep has since moved. The insert is best-effort.
func (srv *rescheduleService) queueRescheduleNotice(ctx context.Context, ticket *entity.Ticket, vehicle *entity.Vehicle, newDate, now time.Time) {
	profile, err := srv.profileRepo.FindProfileByCustomerID(ctx, ticket.CustomerID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		srv.logger.Warn("failed to load profile for reschedule notice",
			"ticketID", ticket.ID, "error", err)
	}

	channel := srv.defaultChannel
	destination := ""
	if profile != nil {
		if profile.PreferredChannel.Valid() {
			channel = profile.PreferredChannel
		}
		destination = profile.DestinationFor(channel)
	}

	subject, body, err := srv.renderer.RenderReschedule(profile, vehicle.DisplayName(), newDate)
	if err != nil {
		srv.logger.Warn("failed to render reschedule notice",
			"ticketID", ticket.ID, "error", err)

		return
	}

	notification := &entity.Notification{
		ID:          uuid.New(),
		TicketID:    ticket.ID,
		CustomerID:  ticket.CustomerID,
		Channel:     channel,
		Type:        entity.NotificationTypeReschedule,
		Status:      entity.NotificationStatusQueued,
		Destination: destination,
		Subject:     subject,
		Body:        body,
		SendAt:      now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		srv.logger.Warn("failed to queue reschedule notice",
			"ticketID", ticket.ID, "error", err)
	}
}
