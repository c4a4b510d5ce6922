package service

import (
	"context"
	"fmt"
	"net/smtp"

	"go_5_media_cms/internal/config"
	"go_5_media_cms/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewMailer は設定の mail.provider に応じた実装を返します。
func NewMailer(cfg *config.Config) Mailer {
	switch cfg.Mail.Provider {
	case "smtp":
		return &SmtpMailer{cfg: &cfg.SMTP}
	case "ses":
		return NewSESMailer(cfg)
	default:
		return &LogMailer{}
	}
}

// --- LogMailer ---
// 実際には送信せずログに出すだけの実装（開発・テスト用）
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SmtpMailer ---
type SmtpMailer struct {
	cfg *config.SMTPConfig
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	logger.Debug("Attempting to send email via SMTP",
		"smtp_addr", addr,
		"from", m.cfg.From,
		"to", to,
	)

	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return err
	}
	defer c.Close()

	if err = c.Mail(m.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.cfg.From)
		return err
	}
	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.cfg.From, to, subject, body)
	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write email body", "error", err)
		return err
	}
	if err = wc.Close(); err != nil {
		logger.Error("Failed to close data writer", "error", err)
		return err
	}

	if err = c.Quit(); err != nil {
		logger.Error("Failed to quit SMTP session", "error", err)
		return err
	}

	logger.Info("Email sent via SMTP", "to", to, "subject", subject)
	return nil
}
