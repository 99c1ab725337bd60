package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/usecase"
)

var _ usecase.MailerInterface = (*EmailSender)(nil)

func NewEmailSender(host string, port int, user, password, from, templateDir string) *EmailSender {
	if templateDir == "" {
		templateDir = "templates"
	}
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		TemplateDir: templateDir,
	}
}

// RenderWelcome builds the welcome mail for a contract. Recipients are the
// contract's merged email list; the token ties the mail back to the persisted
// message record.
func (s *EmailSender) RenderWelcome(c *entity.Contract, token string) (*usecase.MailMessage, error) {
	data := welcomeData{
		Plico:        c.Plico,
		ContractType: c.ContractType(),
		StartDate:    c.StartDate.Format("02/01/2006"),
		EndDate:      c.EndDate.Format("02/01/2006"),
		Token:        token,
	}
	if c.Customer != nil {
		data.CustomerName = c.Customer.Name
	}
	if ref := c.Referent(); ref != nil {
		data.ReferentName = ref.Name
	}

	body, err := s.render("welcome.html", data)
	if err != nil {
		return nil, err
	}

	to := c.EmailList()
	if len(to) == 0 {
		return nil, fmt.Errorf("contract %s has no recipient address", c.Plico)
	}

	return &usecase.MailMessage{
		To:      to,
		Subject: fmt.Sprintf("Welcome aboard - contract %s", c.Plico),
		Body:    body,
	}, nil
}

func (s *EmailSender) RenderAccountActivation(u *entity.User, activationKey string) (*usecase.MailMessage, error) {
	body, err := s.render("account_activation.html", activationData{
		FullName:      u.FullName,
		ActivationKey: activationKey,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.MailMessage{
		To:      []string{u.Email},
		Subject: "Activate your tutor account",
		Body:    body,
	}, nil
}

func (s *EmailSender) Deliver(m *usecase.MailMessage) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.From)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.Body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp delivery: %w", err)
	}
	return nil
}

func (s *EmailSender) render(name string, data any) (string, error) {
	t, err := template.ParseFiles(filepath.Join(s.TemplateDir, name))
	if err != nil {
		return "", fmt.Errorf("parse mail template %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("execute mail template %s: %w", name, err)
	}
	return body.String(), nil
}
