package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
)

const (
	otpSubject = "Your OTP Code"
	otpBody    = "Your OTP code is %s. It is valid for %d minutes."
)

// sendFunc matches smtp.SendMail
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers OTP codes through an SMTP relay
type SMTPMailer struct {
	cfg        models.SMTPConfig
	ttlMinutes int
	send       sendFunc
}

// NewSMTPMailer creates a mailer for cfg. otpTTLMinutes is quoted in the message.
func NewSMTPMailer(cfg models.SMTPConfig, otpTTLMinutes int) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, ttlMinutes: otpTTLMinutes, send: smtp.SendMail}
}

// SendOTP mails code to email
func (m *SMTPMailer) SendOTP(ctx context.Context, email, code string) error {
	if m.cfg.Host == "" {
		return errors.New("smtp host is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(email, "\r\n") {
		return fmt.Errorf("invalid recipient address")
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{email}, m.buildMessage(email, code)); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.InfoCtx(ctx, "OTP email sent", logger.String("email", utils.MaskEmail(email)))
	return nil
}

func (m *SMTPMailer) buildMessage(to, code string) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.cfg.From + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + otpSubject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(fmt.Sprintf(otpBody, code, m.ttlMinutes))
	b.WriteString("\r\n")
	return []byte(b.String())
}
