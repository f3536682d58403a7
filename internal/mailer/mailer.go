package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/labstack/gommon/log"

	"tienda/internal/domain/model"
)

// Mailer sends the transactional notifications of the store. All sends are
// best effort: callers log failures and never fail the surrounding request.
type Mailer interface {
	SendOrderConfirmation(order *model.Order) error
	SendAdminOrderNotification(order *model.Order) error
	SendPendingPaymentReminder(order *model.Order) error
}

type SMTPConfig struct {
	Host       string
	Port       string
	Username   string
	Password   string
	From       string
	AdminEmail string
}

type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendOrderConfirmation(order *model.Order) error {
	subject := fmt.Sprintf("Confirmación de pedido #%d", order.ID)
	body := orderBody(order,
		fmt.Sprintf("Hola %s,\n\nHemos recibido tu pedido #%d. Te avisaremos cuando el pago sea confirmado.\n", order.CustomerName, order.ID))
	return m.send(order.CustomerEmail, subject, body)
}

func (m *SMTPMailer) SendAdminOrderNotification(order *model.Order) error {
	if m.cfg.AdminEmail == "" {
		return nil
	}
	subject := fmt.Sprintf("Nuevo pedido #%d", order.ID)
	body := orderBody(order,
		fmt.Sprintf("Se registró el pedido #%d de %s (%s).\n", order.ID, order.CustomerName, order.CustomerEmail))
	return m.send(m.cfg.AdminEmail, subject, body)
}

func (m *SMTPMailer) SendPendingPaymentReminder(order *model.Order) error {
	subject := fmt.Sprintf("Recordatorio de pago pendiente - pedido #%d", order.ID)
	body := orderBody(order,
		fmt.Sprintf("Hola %s,\n\nTu pedido #%d sigue pendiente de pago. Si ya pagaste, ignora este mensaje.\n", order.CustomerName, order.ID))
	return m.send(order.CustomerEmail, subject, body)
}

func orderBody(order *model.Order, intro string) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\nDetalle:\n")
	for _, line := range order.Lines {
		b.WriteString(fmt.Sprintf("  %s x%d - $%s\n", line.ProductName, line.Quantity, line.Subtotal().StringFixed(0)))
	}
	b.WriteString(fmt.Sprintf("\nTotal: $%s\n", order.Total.Round(0).StringFixed(0)))
	return b.String()
}

func (m *SMTPMailer) send(to, subject, body string) error {
	if m.cfg.Host == "" {
		log.Warnf("mailer: SMTP not configured, dropping mail to %s (%s)", to, subject)
		return nil
	}
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.cfg.From, to, subject, body))

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
}

// NopMailer is used in tests and when notifications are disabled.
type NopMailer struct{}

func (NopMailer) SendOrderConfirmation(*model.Order) error      { return nil }
func (NopMailer) SendAdminOrderNotification(*model.Order) error { return nil }
func (NopMailer) SendPendingPaymentReminder(*model.Order) error { return nil }
