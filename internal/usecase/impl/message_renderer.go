// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"garage/config"
	"garage/internal/domain/entity"

	"github.com/pkg/errors"
)

// messageData is the substitution context for notification templates.
type messageData struct {
	TicketNumber string
	Description  string
	PickupTime   string
	PickupURL    string
	VehicleName  string
	NewDate      string
}

// Fixed per-type message templates. Body rendering happens lazily in the
// dispatcher; reschedule bodies are rendered at creation time by the sweep.
var messageTemplates = map[entity.NotificationType]map[string]*template.Template{
	entity.NotificationTypeConfirm: {
		"en": template.Must(template.New("confirm_en").Parse(
			"Your pickup preferences for ticket {{.TicketNumber}} are saved. " +
				"We expect you at {{.PickupTime}}. Work requested: {{.Description}}. " +
				"Pickup pass: {{.PickupURL}}")),
		"es": template.Must(template.New("confirm_es").Parse(
			"Sus preferencias de recogida para el ticket {{.TicketNumber}} han sido guardadas. " +
				"Le esperamos el {{.PickupTime}}. Trabajo solicitado: {{.Description}}. " +
				"Pase de recogida: {{.PickupURL}}")),
	},
	entity.NotificationTypeReminder: {
		"en": template.Must(template.New("reminder_en").Parse(
			"Reminder: your vehicle (ticket {{.TicketNumber}}) is scheduled for pickup at {{.PickupTime}}. " +
				"Work: {{.Description}}.")),
		"es": template.Must(template.New("reminder_es").Parse(
			"Recordatorio: su vehiculo (ticket {{.TicketNumber}}) esta programado para recogida el {{.PickupTime}}. " +
				"Trabajo: {{.Description}}.")),
	},
	entity.NotificationTypeReschedule: {
		"en": template.Must(template.New("reschedule_en").Parse(
			"We did not see your {{.VehicleName}} at the shop today. " +
				"Your appointment has been moved to {{.NewDate}}.")),
		"es": template.Must(template.New("reschedule_es").Parse(
			"No vimos su {{.VehicleName}} en el taller hoy. " +
				"Su cita ha sido movida al {{.NewDate}}.")),
	},
	entity.NotificationTypeTest: {
		"en": template.Must(template.New("test_en").Parse(
			"This is a test notification for ticket {{.TicketNumber}}.")),
	},
}

var messageSubjects = map[entity.NotificationType]map[string]string{
	entity.NotificationTypeConfirm: {
		"en": "Pickup preferences saved",
		"es": "Preferencias de recogida guardadas",
	},
	entity.NotificationTypeReminder: {
		"en": "Pickup reminder",
		"es": "Recordatorio de recogida",
	},
	entity.NotificationTypeReschedule: {
		"en": "Appointment rescheduled",
		"es": "Cita reprogramada",
	},
	entity.NotificationTypeTest: {
		"en": "Test notification",
	},
}

// messageRenderer renders notification subjects and bodies with the
// customer's locale and timezone applied.
type messageRenderer struct {
	baseURL         string
	defaultLanguage string
	defaultTimezone string
}

func newMessageRenderer(cfg *config.Config) *messageRenderer {
	renderer := &messageRenderer{
		defaultLanguage: "en",
		defaultTimezone: "UTC",
	}
	if cfg.App != nil {
		renderer.baseURL = strings.TrimRight(cfg.App.BaseURL, "/")
		if cfg.App.DefaultLanguage != "" {
			renderer.defaultLanguage = cfg.App.DefaultLanguage
		}
		if cfg.App.DefaultTimezone != "" {
			renderer.defaultTimezone = cfg.App.DefaultTimezone
		}
	}

	return renderer
}

// Render produces the subject and body for a notification from its ticket
// and the customer's profile.
func (r *messageRenderer) Render(typ entity.NotificationType, ticket *entity.Ticket, profile *entity.CustomerProfile) (subject, body string, err error) {
	lang := r.language(profile)

	data := &messageData{
		TicketNumber: ticket.TicketNumber,
		Description:  ticket.Description,
		PickupURL:    r.PickupURL(ticket.ID.String()),
	}
	if ticket.PreferredPickupAt != nil {
		data.PickupTime = r.formatTime(*ticket.PreferredPickupAt, profile)
	}

	return r.render(typ, lang, data)
}

// RenderReschedule produces the subject and body for a reschedule reminder.
func (r *messageRenderer) RenderReschedule(profile *entity.CustomerProfile, vehicleName string, newDate time.Time) (subject, body string, err error) {
	lang := r.language(profile)

	data := &messageData{
		VehicleName: vehicleName,
		NewDate:     r.formatTime(newDate, profile),
	}

	return r.render(entity.NotificationTypeReschedule, lang, data)
}

// PickupURL returns the public pickup page URL for a ticket.
func (r *messageRenderer) PickupURL(ticketID string) string {
	return fmt.Sprintf("%s/tickets/%s", r.baseURL, ticketID)
}

func (r *messageRenderer) render(typ entity.NotificationType, lang string, data *messageData) (string, string, error) {
	perLang, ok := messageTemplates[typ]
	if !ok {
		return "", "", errors.Errorf("no template for notification type %s", typ)
	}

	tmpl, ok := perLang[lang]
	if !ok {
		tmpl = perLang["en"]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", errors.Wrap(err, "failed to render message template")
	}

	subject := messageSubjects[typ][lang]
	if subject == "" {
		subject = messageSubjects[typ]["en"]
	}

	return subject, buf.String(), nil
}

func (r *messageRenderer) language(profile *entity.CustomerProfile) string {
	if profile != nil && profile.Language != "" {
		return profile.Language
	}

	return r.defaultLanguage
}

// formatTime renders a timestamp in the customer's timezone. An unknown or
// empty timezone falls back to the application default, then UTC.
func (r *messageRenderer) formatTime(t time.Time, profile *entity.CustomerProfile) string {
	tzName := r.defaultTimezone
	if profile != nil && profile.Timezone != "" {
		tzName = profile.Timezone
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}

	return t.In(loc).Format("Mon, 2 Jan 2006 15:04 MST")
}
