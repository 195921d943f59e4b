package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"augebit/internal/db"
	"augebit/internal/validation"
)

// Notifier tells the patient that an appointment was booked.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appointment db.Appointment) error
}

// NopNotifier is used when no channel is configured.
type NopNotifier struct{}

func (NopNotifier) AppointmentBooked(context.Context, db.Appointment) error { return nil }

// Notifiers fans a confirmation out to every channel and joins their errors.
type Notifiers []Notifier

func (ns Notifiers) AppointmentBooked(ctx context.Context, appointment db.Appointment) error {
	var errs []error
	for _, n := range ns {
		if err := n.AppointmentBooked(ctx, appointment); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailNotifier sends the confirmation through SendGrid.
type EmailNotifier struct {
	client mailClient
	from   *mail.Email
}

func NewEmailNotifier(apiKey, fromEmail, fromName string) *EmailNotifier {
	if fromName == "" {
		fromName = "Augebit"
	}
	return &EmailNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
	}
}

var confirmationHTML = template.Must(template.New("confirmation").Parse(
	`<p>Olá {{.Nome}},</p>
<p>Sua consulta com <strong>{{.Profissional}}</strong> está marcada para <strong>{{.Data}}</strong> às <strong>{{.Horario}}</strong>.</p>
<p>Código do agendamento: {{.ID}}</p>
<p>Augebit</p>`))

func (n *EmailNotifier) AppointmentBooked(ctx context.Context, appointment db.Appointment) error {
	view := confirmationView(appointment)

	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, view); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Consulta marcada - %s às %s", view.Data, view.Horario)
	to := mail.NewEmail(appointment.Nome, appointment.Email)
	message := mail.NewSingleEmail(n.from, subject, to, confirmationText(view), html.String())

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

type smsClient interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// SMSNotifier sends the confirmation through Twilio.
type SMSNotifier struct {
	client smsClient
	from   string
}

func NewSMSNotifier(accountSID, authToken, from string) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})
	return &SMSNotifier{client: client.Api, from: from}
}

func (n *SMSNotifier) AppointmentBooked(_ context.Context, appointment db.Appointment) error {
	view := confirmationView(appointment)

	params := &openapi.CreateMessageParams{}
	params.SetTo(toE164(appointment.Telefone))
	params.SetFrom(n.from)
	params.SetBody(fmt.Sprintf("Augebit: consulta com %s em %s às %s confirmada. Código %d.",
		view.Profissional, view.Data, view.Horario, view.ID))

	if _, err := n.client.CreateMessage(params); err != nil {
		return fmt.Errorf("send confirmation sms: %w", err)
	}
	return nil
}

// confirmationView renders the stored date back in DD/MM/YYYY.
func confirmationView(appointment db.Appointment) db.Appointment {
	if d, err := time.Parse("2006-01-02", appointment.Data); err == nil {
		appointment.Data = d.Format("02/01/2006")
	}
	return appointment
}

func confirmationText(view db.Appointment) string {
	return fmt.Sprintf(
		"Olá %s,\n\nSua consulta com %s está marcada para %s às %s.\n\nCódigo do agendamento: %d\n\nAugebit",
		view.Nome, view.Profissional, view.Data, view.Horario, view.ID,
	)
}

// toE164 normalises a typed phone number. Numbers without a country code are
// assumed to be Brazilian.
func toE164(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := validation.DigitsOnly(phone)
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	if len(digits) == 10 || len(digits) == 11 {
		return "+55" + digits
	}
	return "+" + digits
}
