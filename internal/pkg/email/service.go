// internal/pkg/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/pricing"
	"github.com/sirupsen/logrus"
)

// Service handles transactional email
type Service struct {
	config *config.Config
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// OrderConfirmationData carries the order facts the confirmation
// template renders
type OrderConfirmationData struct {
	OrderNumber string
	ItemCount   int
	TotalAmount int64 // Minor units
	Address     string
}

// SendOrderConfirmation renders and sends the order confirmation email.
// When email is disabled in configuration this is a logged no-op, which
// keeps local development free of SMTP setup.
func (s *Service) SendOrderConfirmation(toEmail, toName string, data *OrderConfirmationData) error {
	if !s.config.Email.Enabled {
		logrus.WithField("order_number", data.OrderNumber).Debug("Email disabled, skipping order confirmation")
		return nil
	}

	htmlContent, err := s.renderConfirmation(toName, data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmation - %s", data.OrderNumber)
	return s.sendSMTP([]string{toEmail}, subject, htmlContent)
}

func (s *Service) renderConfirmation(toName string, data *OrderConfirmationData) (string, error) {
	tmpl := template.Must(template.New("order_confirmation").Parse(confirmationTemplate))

	view := struct {
		Name        string
		OrderNumber string
		ItemCount   int
		Total       string
		Address     string
	}{
		Name:        toName,
		OrderNumber: data.OrderNumber,
		ItemCount:   data.ItemCount,
		Total:       fmt.Sprintf("%s%.2f", pricing.Info(pricing.BaseCurrency).Symbol, pricing.ToMajor(data.TotalAmount)),
		Address:     data.Address,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (s *Service) sendSMTP(to []string, subject, htmlContent string) error {
	if s.config.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP configuration incomplete: missing host")
	}

	var auth smtp.Auth
	if s.config.Email.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.config.Email.SMTPUser, s.config.Email.SMTPPass, s.config.Email.SMTPHost)
	}

	from := s.config.Email.FromEmail
	if s.config.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(to, ", "),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}

	var msg bytes.Buffer
	for key, value := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlContent)

	serverAddr := fmt.Sprintf("%s:%d", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(serverAddr, auth, s.config.Email.FromEmail, to, msg.Bytes())
}

const confirmationTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Order {{.OrderNumber}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Thanks for your order, {{.Name}}!</h2>
    <p>We received your order <strong>{{.OrderNumber}}</strong> and the kitchen is on it.</p>
    <table cellpadding="6">
        <tr><td>Items</td><td>{{.ItemCount}}</td></tr>
        <tr><td>Total</td><td>{{.Total}}</td></tr>
        <tr><td>Delivery address</td><td>{{.Address}}</td></tr>
    </table>
    <p>You can track the order status in the app.</p>
</body>
</html>
`
