package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freight_quote/internal/config"
	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase/interfaces"
	"freight_quote/pkg/logger"

	"github.com/wneessen/go-mail"
)

var (
	ErrMissingSMTPHost     = errors.New("missing SMTP_HOST")
	ErrMailerNotConfigured = errors.New("mailer not configured")
	ErrMissingRecipient    = errors.New("email has no recipient")
)

// smtpClient is the part of *mail.Client the mailer uses.
type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer delivers quote emails over SMTP. In mock mode nothing leaves the
// process: the payload is logged and the send reported as successful.
type SMTPMailer struct {
	from     string
	addr     string
	mockMode bool
	log      *logger.Logger
	client   smtpClient
}

var _ interfaces.IEmailSender = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.MailConfig, log *logger.Logger) (*SMTPMailer, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Mock {
		log.Info(context.Background(), "[mail][transport] mock mode enabled")
		return &SMTPMailer{from: cfg.From, mockMode: true, log: log}, nil
	}

	if strings.TrimSpace(cfg.SMTPHost) == "" {
		log.Error(context.Background(), "[mail][transport] missing SMTP_HOST", ErrMissingSMTPHost)
		return nil, ErrMissingSMTPHost
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		log.Error(context.Background(), "[mail][transport] smtp client init failed", err)
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	m := &SMTPMailer{
		from:   cfg.From,
		addr:   fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		log:    log,
		client: client,
	}
	log.Info(context.Background(), "[mail][transport] smtp client initialized addr="+m.addr)
	return m, nil
}

// Send delivers the payload; ctx bounds the dial and the SMTP exchange.
func (m *SMTPMailer) Send(ctx context.Context, payload entities.EmailPayload) error {
	if strings.TrimSpace(payload.To) == "" {
		return ErrMissingRecipient
	}

	if m != nil && m.mockMode {
		m.log.Info(ctx, fmt.Sprintf("[mail][transport] mock send to=%s subject=%q template=%s attachments=%d",
			payload.To, payload.Subject, payload.Template, len(payload.Attachments)))
		return nil
	}
	if m == nil || m.client == nil {
		return ErrMailerNotConfigured
	}

	msg, err := buildMessage(m.from, payload)
	if err != nil {
		m.log.Error(ctx, "[mail][transport] message build failed", err)
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Error(ctx, "[mail][transport] smtp send failed to="+payload.To, err)
		return err
	}
	m.log.Info(ctx, fmt.Sprintf("[mail][transport] sent to=%s attachments=%d", payload.To, len(payload.Attachments)))
	return nil
}

// buildMessage renders a short text part naming the template, followed by one
// attachment per exported artifact.
func buildMessage(from string, payload entities.EmailPayload) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(payload.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", payload.To, err)
	}
	msg.Subject(payload.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("%s\r\n\r\nTemplate: %s\r\n", payload.Subject, payload.Template))

	for _, a := range payload.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if err := msg.AttachReader(a.Filename, strings.NewReader(a.Content),
			mail.WithFileContentType(mail.ContentType(contentType))); err != nil {
			return nil, fmt.Errorf("attaching %s: %w", a.Filename, err)
		}
	}
	return msg, nil
}
