package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/config"
)

// ErrMailerDisabled is returned when no mail transport is configured.
var ErrMailerDisabled = errors.New("mail transport not configured")

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg *Message) error
	Name() string
}

// NewMailer picks the transport from config. SMTP needs host, user and
// password; anything missing leaves mail disabled.
func NewMailer(ctx context.Context, cfg config.MailConfig, log *zap.Logger) (Mailer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		return NewSESMailer(ses.NewFromConfig(awsCfg), cfg.From), nil
	case "", "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
			log.Warn("⚠️  SMTP configuration is missing, email notifications will not be sent",
				zap.Strings("required", []string{"SMTP_HOST", "SMTP_USER", "SMTP_PASS"}))
			return NewDisabledMailer(log), nil
		}
		return NewSMTPMailer(cfg)
	case "none", "disabled":
		return NewDisabledMailer(log), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds an SMTP transport: implicit TLS on port 465,
// STARTTLS when offered on any other port.
func NewSMTPMailer(cfg config.MailConfig) (Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.SMTPPort == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &smtpMailer{client: client, from: cfg.From}, nil
}

func (m *smtpMailer) Name() string { return "smtp" }

func (m *smtpMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before sending email: %w", err)
	}

	mm, err := buildMailMessage(m.from, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}

func buildMailMessage(from string, msg *Message) (*mail.Msg, error) {
	mm := mail.NewMsg()
	if err := mm.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := mm.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	mm.Subject(msg.Subject)
	mm.SetDate()
	mm.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return mm, nil
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	from   string
}

func NewSESMailer(client sesAPI, from string) Mailer {
	return &sesMailer{client: client, from: from}
}

func (m *sesMailer) Name() string { return "ses" }

func (m *sesMailer) Send(ctx context.Context, msg *Message) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	return nil
}

type disabledMailer struct {
	log *zap.Logger
}

func NewDisabledMailer(log *zap.Logger) Mailer {
	return &disabledMailer{log: log}
}

func (m *disabledMailer) Name() string { return "disabled" }

func (m *disabledMailer) Send(_ context.Context, msg *Message) error {
	m.log.Info("📧 Email notification skipped, mail transport not configured",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return ErrMailerDisabled
}
