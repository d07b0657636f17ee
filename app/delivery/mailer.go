package delivery

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

var ErrMissingCredentials = errors.New("email credentials are not configured (set EMAIL_USER and EMAIL_PASSWORD)")

type ContentType string

const (
	ContentHTML  ContentType = "html"
	ContentPlain ContentType = "plain"
)

type Message struct {
	To          string
	Subject     string
	Body        string
	ContentType ContentType
	Attachment  string // optional file path
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type ServerConfig struct {
	Host string
	Port int
	TLS  bool
}

type Credentials struct {
	Username string
	Password string
}

const defaultProvider = "qq.com"

var providers = map[string]ServerConfig{
	"qq.com":      {Host: "smtp.qq.com", Port: 587, TLS: true},
	"163.com":     {Host: "smtp.163.com", Port: 587, TLS: true},
	"gmail.com":   {Host: "smtp.gmail.com", Port: 587, TLS: true},
	"outlook.com": {Host: "smtp.office365.com", Port: 587, TLS: true},
	"hotmail.com": {Host: "smtp.office365.com", Port: 587, TLS: true},
	"yahoo.com":   {Host: "smtp.mail.yahoo.com", Port: 587, TLS: true},
}

// ResolveServer picks the SMTP settings for the sender's mail domain.
// Unknown domains get the qq.com settings.
func ResolveServer(email string) ServerConfig {
	_, domain, _ := strings.Cut(strings.ToLower(strings.TrimSpace(email)), "@")
	if server, ok := providers[domain]; ok {
		return server
	}
	return providers[defaultProvider]
}

// CredentialsFromEnv reads EMAIL_USER and EMAIL_PASSWORD.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		Username: os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASSWORD"),
	}
	if creds.Username == "" || creds.Password == "" {
		return creds, ErrMissingCredentials
	}
	return creds, nil
}

// ServerFromEnv resolves the server for username, letting SMTP_SERVER and
// SMTP_PORT override the provider table.
func ServerFromEnv(username string) (ServerConfig, error) {
	host := os.Getenv("SMTP_SERVER")
	if host == "" {
		return ResolveServer(username), nil
	}

	server := ServerConfig{Host: host, Port: 587, TLS: true}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return ServerConfig{}, fmt.Errorf("invalid SMTP_PORT %q", port)
		}
		server.Port = p
	}
	return server, nil
}

type Mailer struct {
	server    ServerConfig
	creds     Credentials
	timeout   time.Duration
	tlsConfig *tls.Config // nil uses the go-mail default for the host
}

func NewMailer(server ServerConfig, creds Credentials, timeout time.Duration) *Mailer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Mailer{server: server, creds: creds, timeout: timeout}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.creds.Username == "" || m.creds.Password == "" {
		return ErrMissingCredentials
	}

	message, err := m.build(msg)
	if err != nil {
		return err
	}

	tlsPolicy := mail.TLSMandatory
	if !m.server.TLS {
		tlsPolicy = mail.TLSOpportunistic
	}

	// The auth mechanism is negotiated from what the server advertises:
	// smtp.office365.com offers LOGIN but not PLAIN.
	options := []mail.Option{
		mail.WithPort(m.server.Port),
		mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		mail.WithUsername(m.creds.Username),
		mail.WithPassword(m.creds.Password),
		mail.WithTLSPolicy(tlsPolicy),
		mail.WithTimeout(m.timeout),
	}
	if m.tlsConfig != nil {
		options = append(options, mail.WithTLSConfig(m.tlsConfig))
	}

	client, err := mail.NewClient(m.server.Host, options...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	started := time.Now()
	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send email via %s:%d: %w", m.server.Host, m.server.Port, err)
	}

	slog.Info("Email sent",
		"to", msg.To,
		"server", m.server.Host,
		"duration", time.Since(started))

	return nil
}

func (m *Mailer) build(msg Message) (*mail.Msg, error) {
	message := mail.NewMsg()

	if err := message.From(m.creds.Username); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	message.Subject(msg.Subject)
	message.SetDate()
	message.SetMessageIDWithValue(m.messageID())

	contentType := mail.TypeTextHTML
	if msg.ContentType == ContentPlain {
		contentType = mail.TypeTextPlain
	}
	message.SetBodyString(contentType, msg.Body)

	if msg.Attachment != "" {
		if _, err := os.Stat(msg.Attachment); err != nil {
			return nil, fmt.Errorf("failed to attach file: %w", err)
		}
		message.AttachFile(msg.Attachment)
	}

	return message, nil
}

func (m *Mailer) messageID() string {
	_, domain, found := strings.Cut(m.creds.Username, "@")
	if !found || domain == "" {
		domain = "localhost"
	}
	return fmt.Sprintf("%s@%s", uuid.NewString(), domain)
}
