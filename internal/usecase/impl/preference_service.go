package impl

import (
	"context"
	"log/slog"
	"time"

	"garage/config"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reminderLeadTime is how long before the preferred pickup time the reminder
// notification is scheduled. Computed once at save time; a later change of the
// pickup time goes through a fresh preference save.
const reminderLeadTime = 2 * time.Hour

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	ticketRepo       repository.TicketRepository
	profileRepo      repository.CustomerProfileRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	renderer         *messageRenderer
	logger           *slog.Logger
	now              func() time.Time
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	cfg *config.Config,
	ticketRepo repository.TicketRepository,
	profileRepo repository.CustomerProfileRepository,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		ticketRepo:       ticketRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		renderer:         newMessageRenderer(cfg),
		logger:           logger,
		now:              time.Now,
	}
}

// SavePreferences records a customer's notification setup for one ticket and
// schedules the confirmation and reminder notifications.
func (srv *preferenceService) SavePreferences(ctx context.Context, input *usecase.SavePreferencesInput) (*usecase.SavePreferencesResult, error) {
	if err := validatePreferences(input); err != nil {
		return nil, err
	}

	ticket, err := srv.ticketRepo.FindTicketByID(ctx, input.TicketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound.WrapMessage("ticket not found for preference save")
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	profile := srv.buildProfile(ctx, ticket.CustomerID, input)
	if err := srv.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to upsert customer profile")
	}

	prefs := &entity.NotificationPrefs{
		Channels:       input.Channels,
		PrimaryChannel: input.Primary,
		OptIn:          input.CommsOptIn,
		Language:       profile.Language,
		Timezone:       profile.Timezone,
	}
	if err := srv.ticketRepo.SavePreferences(ctx, ticket.ID, prefs, input.PreferredPickupAt); err != nil {
		return nil, errors.Wrap(err, "failed to save ticket preferences")
	}

	now := srv.now()

	// The confirmation and the reminder are best-effort inserts: one failing
	// does not roll back the save or the other insert. An opted-out customer
	// gets both rows written pre-skipped so the dispatcher never sees them.
	confirmation := srv.newNotification(ticket, profile, entity.NotificationTypeConfirm, now)
	if !input.CommsOptIn {
		confirmation.Status = entity.NotificationStatusSkipped
		confirmation.ErrorDetail = "customer opted out"
	}
	if err := srv.notificationRepo.CreateNotification(ctx, confirmation); err != nil {
		srv.logger.Warn("failed to queue confirmation notification",
			"ticketID", ticket.ID, "error", err)
		confirmation = nil
	}

	reminder := srv.newNotification(ticket, profile, entity.NotificationTypeReminder, input.PreferredPickupAt.Add(-reminderLeadTime))
	switch {
	case !input.CommsOptIn:
		reminder.Status = entity.NotificationStatusSkipped
		reminder.ErrorDetail = "customer opted out"
	case !reminder.SendAt.After(now):
		reminder.Status = entity.NotificationStatusSkipped
		reminder.ErrorDetail = "reminder time already past"
	}
	if err := srv.notificationRepo.CreateNotification(ctx, reminder); err != nil {
		srv.logger.Warn("failed to queue reminder notification",
			"ticketID", ticket.ID, "error", err)
	}

	srv.logger.Info("saved notification preferences",
		"ticketID", ticket.ID,
		"primary", input.Primary,
		"optIn", input.CommsOptIn,
		"reminderStatus", reminder.Status)

	return &usecase.SavePreferencesResult{
		Profile:      profile,
		Confirmation: confirmation,
	}, nil
}

func validatePreferences(input *usecase.SavePreferencesInput) error {
	if len(input.Channels) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one channel is required")
	}

	primaryFound := false
	for _, ch := range input.Channels {
		if !ch.Valid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown channel " + string(ch))
		}
		if ch == input.Primary {
			primaryFound = true
		}
	}
	if !primaryFound {
		return domainerrors.ErrValidationFailed.WrapMessage("primary channel must be one of the selected channels")
	}

	if input.PreferredPickupAt.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("preferred pickup time is required")
	}

	return nil
}

// buildProfile assembles the profile to upsert. A save that omits a contact
// field keeps the stored value; email and phone additionally fall back to the
// account record when one exists.
func (srv *preferenceService) buildProfile(ctx context.Context, customerID uuid.UUID, input *usecase.SavePreferencesInput) *entity.CustomerProfile {
	profile := &entity.CustomerProfile{
		CustomerID:       customerID,
		Email:            input.Email,
		Phone:            input.Phone,
		WhatsAppNumber:   input.WhatsAppNumber,
		FCMToken:         input.FCMToken,
		Language:         input.Language,
		Timezone:         input.Timezone,
		OptIn:            input.CommsOptIn,
		PreferredChannel: input.Primary,
	}
	if profile.Language == "" {
		profile.Language = srv.renderer.defaultLanguage
	}
	if profile.Timezone == "" {
		profile.Timezone = srv.renderer.defaultTimezone
	}

	stored, err := srv.profileRepo.FindProfileByCustomerID(ctx, customerID)
	switch {
	case err == nil:
		if profile.Email == "" {
			profile.Email = stored.Email
		}
		if profile.Phone == "" {
			profile.Phone = stored.Phone
		}
		if profile.WhatsAppNumber == "" {
			profile.WhatsAppNumber = stored.WhatsAppNumber
		}
		if profile.FCMToken == "" {
			profile.FCMToken = stored.FCMToken
		}
	case !errors.Is(err, repository.ErrProfileNotFound):
		srv.logger.Warn("failed to load stored profile for contact backfill",
			"customerID", customerID, "error", err)
	}

	if profile.Email == "" || profile.Phone == "" {
		user, err := srv.userRepo.FindUserByID(ctx, customerID)
		if err != nil {
			srv.logger.Debug("no account record for contact fallback",
				"customerID", customerID, "error", err)

			return profile
		}
		if profile.Email == "" {
			profile.Email = user.Email
		}
		if profile.Phone == "" {
			profile.Phone = user.Phone
		}
	}

	return profile
}

func (srv *preferenceService) newNotification(ticket *entity.Ticket, profile *entity.CustomerProfile, typ entity.NotificationType, sendAt time.Time) *entity.Notification {
	now := srv.now()

	return &entity.Notification{
		ID:          uuid.New(),
		TicketID:    ticket.ID,
		CustomerID:  ticket.CustomerID,
		Channel:     profile.PreferredChannel,
		Type:        typ,
		Status:      entity.NotificationStatusQueued,
		Destination: profile.DestinationFor(profile.PreferredChannel),
		SendAt:      sendAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
