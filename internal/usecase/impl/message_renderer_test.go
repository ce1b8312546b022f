package impl

import (
	"testing"
	"time"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRenderer_Render_ReminderUsesCustomerTimezone(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	pickupAt := time.Date(2026, 1, 20, 17, 0, 0, 0, time.UTC)
	ticket := &entity.Ticket{
		ID:                uuid.New(),
		TicketNumber:      "WO-2026-A1B2C3D4",
		Description:       "brake pad replacement",
		PreferredPickupAt: &pickupAt,
	}
	profile := &entity.CustomerProfile{Language: "en", Timezone: "America/New_York"}

	subject, body, err := renderer.Render(entity.NotificationTypeReminder, ticket, profile)
	require.NoError(t, err)
	assert.Equal(t, "Pickup reminder", subject)
	assert.Contains(t, body, "WO-2026-A1B2C3D4")
	// 17:00 UTC is noon in New York while standard time is in effect.
	assert.Contains(t, body, "12:00 EST")
}

func TestMessageRenderer_Render_SpanishLocale(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	pickupAt := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	ticket := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-ES", PreferredPickupAt: &pickupAt}
	profile := &entity.CustomerProfile{Language: "es", Timezone: "UTC"}

	subject, body, err := renderer.Render(entity.NotificationTypeReminder, ticket, profile)
	require.NoError(t, err)
	assert.Equal(t, "Recordatorio de recogida", subject)
	assert.Contains(t, body, "Recordatorio")
}

func TestMessageRenderer_Render_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	ticket := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-FB"}
	profile := &entity.CustomerProfile{Language: "fr"}

	subject, body, err := renderer.Render(entity.NotificationTypeConfirm, ticket, profile)
	require.NoError(t, err)
	assert.Equal(t, "Pickup preferences saved", subject)
	assert.Contains(t, body, "preferences")
}

func TestMessageRenderer_Render_NilProfileUsesDefaults(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	ticket := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-NP"}

	_, body, err := renderer.Render(entity.NotificationTypeTest, ticket, nil)
	require.NoError(t, err)
	assert.Contains(t, body, "test notification")
}

func TestMessageRenderer_RenderReschedule_NamesVehicleAndDate(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	newDate := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	profile := &entity.CustomerProfile{Language: "en", Timezone: "UTC"}

	subject, body, err := renderer.RenderReschedule(profile, "2020 Toyota Corolla", newDate)
	require.NoError(t, err)
	assert.Equal(t, "Appointment rescheduled", subject)
	assert.Contains(t, body, "2020 Toyota Corolla")
	assert.Contains(t, body, "11 Mar 2026")
}

func TestMessageRenderer_Render_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	pickupAt := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	ticket := &entity.Ticket{ID: uuid.New(), TicketNumber: "WO-2026-TZ", PreferredPickupAt: &pickupAt}
	profile := &entity.CustomerProfile{Language: "en", Timezone: "Mars/Olympus_Mons"}

	_, body, err := renderer.Render(entity.NotificationTypeReminder, ticket, profile)
	require.NoError(t, err)
	assert.Contains(t, body, "17:00")
}

func TestMessageRenderer_PickupURL(t *testing.T) {
	renderer := newMessageRenderer(testConfig())

	id := uuid.New()
	assert.Equal(t, "https://shop.example.com/tickets/"+id.String(), renderer.PickupURL(id.String()))
}
