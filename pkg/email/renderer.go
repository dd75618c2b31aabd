package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
	_ "time/tzdata" // display zone must resolve on minimal images

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
)

// ContactData holds the validated contact submission rendered into both emails.
// Nil optional fields are absent.
type ContactData struct {
	ReferenceID string
	Name        string
	Email       string
	Company     *string
	Phone       *string
	Service     string
	Budget      *string
	Message     string
}

// RendererConfig carries the fixed agency metadata used by the templates
type RendererConfig struct {
	AgencyName   string
	FromAddress  string // sender of both messages
	InboxAddress string // agency inbox receiving notifications
	Website      string
	Location     *time.Location // display zone for timestamps, UTC when nil
}

// Renderer turns contact data into the notification and confirmation emails.
// It is safe for concurrent use.
type Renderer struct {
	cfg        RendererConfig
	translator locales.Translator
}

// NewRenderer creates a renderer with German date formatting
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Renderer{
		cfg:        cfg,
		translator: de.New(),
	}
}

// LoadLocation resolves the display zone name used for timestamps
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load display timezone %q: %w", name, err)
	}
	return loc, nil
}

type notificationView struct {
	AgencyName   string
	ReferenceID  string
	Name         string
	Email        string
	Company      string
	Phone        string
	ServiceLabel string
	BudgetLabel  string
	Message      string
	ReceivedAt   string
}

type confirmationView struct {
	AgencyName   string
	Website      string
	Name         string
	ServiceLabel string
	Message      string
}

// Render produces both messages for data. The output only depends on data and now.
func (r *Renderer) Render(data ContactData, now time.Time) (*RenderedPair, error) {
	serviceLabel := ServiceLabel(data.Service)
	budgetLabel := BudgetNotSpecified
	if data.Budget != nil {
		budgetLabel = BudgetLabel(*data.Budget)
	}

	notificationBody, err := execute(notificationTmpl, notificationView{
		AgencyName:   r.cfg.AgencyName,
		ReferenceID:  data.ReferenceID,
		Name:         data.Name,
		Email:        data.Email,
		Company:      deref(data.Company),
		Phone:        deref(data.Phone),
		ServiceLabel: serviceLabel,
		BudgetLabel:  budgetLabel,
		Message:      data.Message,
		ReceivedAt:   r.FormatTimestamp(now),
	})
	if err != nil {
		return nil, err
	}

	confirmationBody, err := execute(confirmationTmpl, confirmationView{
		AgencyName:   r.cfg.AgencyName,
		Website:      r.cfg.Website,
		Name:         data.Name,
		ServiceLabel: serviceLabel,
		Message:      data.Message,
	})
	if err != nil {
		return nil, err
	}

	return &RenderedPair{
		Notification: &Message{
			Subject:     fmt.Sprintf("Neue Kontaktanfrage von %s – %s", data.Name, serviceLabel),
			HTMLBody:    notificationBody,
			FromName:    r.cfg.AgencyName + " Website",
			FromAddress: r.cfg.FromAddress,
			To:          r.cfg.InboxAddress,
			ReplyTo:     data.Email,
		},
		Confirmation: &Message{
			Subject:     fmt.Sprintf("Vielen Dank für Ihre Anfrage – %s", r.cfg.AgencyName),
			HTMLBody:    confirmationBody,
			FromName:    r.cfg.AgencyName,
			FromAddress: r.cfg.FromAddress,
			To:          data.Email,
		},
	}, nil
}

// FormatTimestamp renders t as full German date plus short time in the display zone,
// e.g. "Donnerstag, 15. Oktober 2026 um 14:30"
func (r *Renderer) FormatTimestamp(t time.Time) string {
	local := t.In(r.cfg.Location)
	return r.translator.FmtDateFull(local) + " um " + r.translator.FmtTimeShort(local)
}

func execute(tmpl *template.Template, view any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, view); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
