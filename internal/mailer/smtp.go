package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

// SMTP sends mail over a plain SMTP relay (a Mailtrap sandbox in dev).
// Built once at startup from config and passed in; never reachable
// through package globals.
type SMTP struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTP(host, port, username, password, from string) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password, from: from}
}

func (s *SMTP) SendOrderConfirmation(ctx context.Context, o orders.Order) (SendResult, error) {
	body, err := renderConfirmation(o)
	if err != nil {
		return SendResult{}, fmt.Errorf("render confirmation: %w", err)
	}
	subject := fmt.Sprintf("Order Confirmation #%s", o.OrderID)
	return s.send(o.Customer.Email, subject, body)
}

func (s *SMTP) SendOrderFailure(ctx context.Context, c orders.Customer, reason string) (SendResult, error) {
	body, err := renderFailure(c, reason)
	if err != nil {
		return SendResult{}, fmt.Errorf("render failure mail: %w", err)
	}
	return s.send(c.Email, "Order Processing Failed", body)
}

func (s *SMTP) send(to, subject, body string) (SendResult, error) {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, s.envelopeFrom(), []string{to}, msg); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}

// envelopeFrom strips a display name, SMTP MAIL FROM takes a bare address.
func (s *SMTP) envelopeFrom() string {
	if i := strings.LastIndex(s.from, "<"); i >= 0 {
		if j := strings.LastIndex(s.from, ">"); j > i {
			return s.from[i+1 : j]
		}
	}
	return s.from
}

var _ Sender = (*SMTP)(nil)
