package impl

import (
	"context"
	"log/slog"
	"time"

	"garage/config"
	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	notificationRepo repository.NotificationRepository
	ticketRepo       repository.TicketRepository
	profileRepo      repository.CustomerProfileRepository
	senders          service.SenderRegistry
	publisher        service.EventPublisher
	renderer         *messageRenderer
	batchSize        int
	logger           *slog.Logger
	now              func() time.Time
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(
	cfg *config.Config,
	notificationRepo repository.NotificationRepository,
	ticketRepo repository.TicketRepository,
	profileRepo repository.CustomerProfileRepository,
	senders service.SenderRegistry,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		notificationRepo: notificationRepo,
		ticketRepo:       ticketRepo,
		profileRepo:      profileRepo,
		senders:          senders,
		publisher:        publisher,
		renderer:         newMessageRenderer(cfg),
		batchSize:        cfg.Dispatch.BatchSize,
		logger:           logger,
		now:              time.Now,
	}
}

// DispatchDue processes one batch of due notifications. Items are independent;
// every item ends in a terminal status and a failure never aborts the batch.
func (srv *dispatchService) DispatchDue(ctx context.Context) (*usecase.DispatchResult, error) {
	now := srv.now()

	due, err := srv.notificationRepo.FindDueNotifications(ctx, now, srv.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load due notifications")
	}

	result := &usecase.DispatchResult{
		Results: make([]usecase.DispatchItemResult, 0, len(due)),
	}
	for _, notification := range due {
		item := srv.process(ctx, notification)

		result.Processed++
		switch item.Status {
		case entity.NotificationStatusSent:
			result.Sent++
		case entity.NotificationStatusSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
		result.Results = append(result.Results, item)
	}

	if result.Processed > 0 {
		srv.logger.Info("dispatched notification batch",
			"processed", result.Processed,
			"sent", result.Sent,
			"skipped", result.Skipped,
			"failed", result.Failed)
	}

	return result, nil
}

// process moves one queued notification to its terminal status.
func (srv *dispatchService) process(ctx context.Context, notification *entity.Notification) usecase.DispatchItemResult {
	item := usecase.DispatchItemResult{
		NotificationID: notification.ID,
		Channel:        notification.Channel,
	}

	ticket, err := srv.ticketRepo.FindTicketByID(ctx, notification.TicketID)
	if err != nil {
		return srv.fail(ctx, notification, &item, "failed to load ticket: "+err.Error(), "")
	}

	profile, err := srv.profileRepo.FindProfileByCustomerID(ctx, notification.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return srv.fail(ctx, notification, &item, "customer profile not found", "")
		}

		return srv.fail(ctx, notification, &item, "failed to load customer profile: "+err.Error(), "")
	}

	// Opted-out customers are skipped before any provider is contacted.
	if !profile.OptIn {
		return srv.skip(ctx, notification, &item, "customer opted out")
	}

	subject, body := notification.Subject, notification.Body
	if body == "" {
		subject, body, err = srv.renderer.Render(notification.Type, ticket, profile)
		if err != nil {
			return srv.fail(ctx, notification, &item, "failed to render message: "+err.Error(), "")
		}
	}

	destination := notification.Destination
	if destination == "" {
		destination = profile.DestinationFor(notification.Channel)
	}
	if destination == "" {
		return srv.fail(ctx, notification, &item, "no destination address for channel "+string(notification.Channel), body)
	}

	sender, err := srv.senders.SenderFor(notification.Channel)
	if err != nil {
		return srv.fail(ctx, notification, &item, err.Error(), body)
	}

	msg := &service.OutboundMessage{
		Channel: notification.Channel,
		To:      destination,
		Subject: subject,
		Body:    body,
	}
	if err := sender.Send(ctx, msg); err != nil {
		return srv.fail(ctx, notification, &item, "provider send failed: "+err.Error(), body)
	}

	sentAt := srv.now()
	if err := srv.notificationRepo.MarkSent(ctx, notification.ID, sentAt, body); err != nil {
		srv.logger.Error("failed to mark notification sent",
			"notificationID", notification.ID, "error", err)
	}

	item.Status = entity.NotificationStatusSent
	srv.publishOutcome(ctx, notification, entity.NotificationStatusSent, "")

	return item
}

func (srv *dispatchService) skip(ctx context.Context, notification *entity.Notification, item *usecase.DispatchItemResult, reason string) usecase.DispatchItemResult {
	if err := srv.notificationRepo.MarkSkipped(ctx, notification.ID, reason); err != nil {
		srv.logger.Error("failed to mark notification skipped",
			"notificationID", notification.ID, "error", err)
	}

	item.Status = entity.NotificationStatusSkipped
	item.Detail = reason
	srv.publishOutcome(ctx, notification, entity.NotificationStatusSkipped, reason)

	return *item
}

func (srv *dispatchService) fail(ctx context.Context, notification *entity.Notification, item *usecase.DispatchItemResult, detail, body string) usecase.DispatchItemResult {
	if err := srv.notificationRepo.MarkFailed(ctx, notification.ID, detail, body); err != nil {
		srv.logger.Error("failed to mark notification failed",
			"notificationID", notification.ID, "error", err)
	}

	srv.logger.Warn("notification delivery failed",
		"notificationID", notification.ID,
		"channel", notification.Channel,
		"detail", detail)

	item.Status = entity.NotificationStatusFailed
	item.Detail = detail
	srv.publishOutcome(ctx, notification, entity.NotificationStatusFailed, detail)

	return *item
}

// publishOutcome pushes the dispatch outcome to the realtime feed. Publishing
// is best-effort and never changes the notification's terminal status.
func (srv *dispatchService) publishOutcome(ctx context.Context, notification *entity.Notification, status entity.NotificationStatus, detail string) {
	event := &service.TicketEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           service.EventNotificationDispatched,
		TicketID:       notification.TicketID.String(),
		CustomerID:     notification.CustomerID.String(),
		NotificationID: notification.ID.String(),
		Status:         string(status),
		Detail:         detail,
	}
	if err := srv.publisher.PublishTicketEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish dispatch event",
			"notificationID", notification.ID, "error", err)
	}
}

// SendTest delivers one immediate test message for a ticket and records it as
// a notification row. Delivery problems are recorded on the row, not returned
// as an error.
func (srv *dispatchService) SendTest(ctx context.Context, actor *usecase.Actor, ticketID uuid.UUID, channel entity.Channel, toAddress string) (*entity.Notification, error) {
	if !entity.HasRole(actor.Roles, entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden.WrapMessage("test notifications require the admin role")
	}

	if !channel.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown channel " + string(channel))
	}

	ticket, err := srv.ticketRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound.WrapMessage("ticket not found for test notification")
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	profile, err := srv.profileRepo.FindProfileByCustomerID(ctx, ticket.CustomerID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to load customer profile")
	}

	destination := toAddress
	if destination == "" && profile != nil {
		destination = profile.DestinationFor(channel)
	}
	if destination == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no destination address for test notification")
	}

	subject, body, err := srv.renderer.Render(entity.NotificationTypeTest, ticket, profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render test message")
	}

	now := srv.now()
	notification := &entity.Notification{
		ID:          uuid.New(),
		TicketID:    ticket.ID,
		CustomerID:  ticket.CustomerID,
		Channel:     channel,
		Type:        entity.NotificationTypeTest,
		Status:      entity.NotificationStatusQueued,
		Destination: destination,
		Subject:     subject,
		Body:        body,
		SendAt:      now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to record test notification")
	}

	sender, err := srv.senders.SenderFor(channel)
	if err == nil {
		err = sender.Send(ctx, &service.OutboundMessage{
			Channel: channel,
			To:      destination,
			Subject: subject,
			Body:    body,
		})
	}

	if err != nil {
		detail := err.Error()
		if markErr := srv.notificationRepo.MarkFailed(ctx, notification.ID, detail, body); markErr != nil {
			srv.logger.Error("failed to mark test notification failed",
				"notificationID", notification.ID, "error", markErr)
		}
		notification.Status = entity.NotificationStatusFailed
		notification.ErrorDetail = detail

		return notification, nil
	}

	sentAt := srv.now()
	if err := srv.notificationRepo.MarkSent(ctx, notification.ID, sentAt, body); err != nil {
		srv.logger.Error("failed to mark test notification sent",
			"notificationID", notification.ID, "error", err)
	}
	notification.Status = entity.NotificationStatusSent
	notification.SentAt = &sentAt

	return notification, nil
}
