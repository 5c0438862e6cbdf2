package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"hospital-backend/config"

	"github.com/sirupsen/logrus"
	gomail "github.com/wneessen/go-mail"
)

const (
	// defaultSendTimeout bounds a send whose context carries no deadline.
	defaultSendTimeout = 30 * time.Second
	implicitTLSPort    = 465
)

type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer returns an SMTP mailer, or a log-only mailer when no host is set.
func NewMailer(cfg config.SMTPConfig, log *logrus.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn("SMTP_HOST is empty, outgoing mail will only be logged")
		return &LogMailer{log: log}
	}
	return &SMTPMailer{cfg: cfg, log: log}
}

// SMTPMailer delivers through a submission server with AUTH LOGIN. Port 465
// uses implicit TLS, any other port upgrades with STARTTLS when offered.
// The whole conversation, greeting included, must finish before the
// context deadline.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	log    *logrus.Logger
	dialer net.Dialer
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host, m.clientOptions(ctx)...)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	m.log.Infof("Mail %q sent to %s", msg.Subject, msg.To)
	return nil
}

func (m *SMTPMailer) clientOptions(ctx context.Context) []gomail.Option {
	deadline := sendDeadline(ctx, time.Now())

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTimeout(time.Until(deadline)),
		gomail.WithDialContextFunc(m.dialWithDeadline(deadline)),
	}
	if m.cfg.Port == implicitTLSPort {
		// TLS is set up by the dial func
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}

// dialWithDeadline pins the connection deadline, so a server that accepts
// but never answers cannot stall the caller past it. On the implicit TLS
// port it also performs the handshake.
func (m *SMTPMailer) dialWithDeadline(deadline time.Time) gomail.DialContextFunc {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		conn, err := m.dialer.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return nil, err
		}
		if m.cfg.Port != implicitTLSPort {
			return conn, nil
		}

		tlsConn := tls.Client(conn, &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		return tlsConn, nil
	}
}

func sendDeadline(ctx context.Context, now time.Time) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}
	return now.Add(defaultSendTimeout)
}

func (m *SMTPMailer) buildMessage(msg Message) (*gomail.Msg, error) {
	if msg.To == "" {
		return nil, errors.New("mail recipient is empty")
	}
	if strings.ContainsAny(msg.To+msg.ToName+msg.Subject, "\r\n") {
		return nil, errors.New("mail header contains a line break")
	}

	message := gomail.NewMsg()
	if err := message.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := message.AddToFormat(msg.ToName, msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	message.Subject(msg.Subject)
	message.SetDate()
	message.SetMessageID()
	message.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)
	return message, nil
}

// LogMailer records messages instead of sending them.
type LogMailer struct {
	log *logrus.Logger
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Mail delivery disabled, message not sent")
	return nil
}
