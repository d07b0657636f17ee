package commands

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lysyi3m/ai-digest/app/cfg"
	"github.com/lysyi3m/ai-digest/app/delivery"
)

var ErrEmptyDigest = errors.New("digest file is empty")

type SendCommand struct {
	To      string `long:"to" required:"true" description:"Recipient email address"`
	Subject string `long:"subject" description:"Email subject (defaults to a dated digest title)"`
	File    string `long:"file" required:"true" description:"Markdown digest to send"`
	Format  string `long:"format" choice:"html" choice:"plain" default:"html" description:"Email body format"`
	Attach  bool   `long:"attach" description:"Attach the original digest file"`

	sender delivery.Sender
	now    func() time.Time
}

func (c *SendCommand) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read digest file: %w", err)
	}
	markdown := string(data)
	if strings.TrimSpace(markdown) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyDigest, c.File)
	}

	now := time.Now()
	if c.now != nil {
		now = c.now()
	}
	date := now.Format(delivery.DateLayout)

	msg := delivery.Message{
		To:          c.To,
		Subject:     cmp.Or(c.Subject, fmt.Sprintf("🤖 AI Daily Digest - %s", date)),
		Body:        markdown,
		ContentType: delivery.ContentPlain,
	}

	if c.Format == string(delivery.ContentHTML) {
		body, err := delivery.MarkdownToHTML(markdown, date, now)
		if err != nil {
			return err
		}
		msg.Body = body
		msg.ContentType = delivery.ContentHTML
	}

	if c.Attach {
		msg.Attachment = c.File
	}

	sender := c.sender
	if sender == nil {
		sender, err = newMailer()
		if err != nil {
			return err
		}
	}

	if err := sender.Send(ctx, msg); err != nil {
		return err
	}

	slog.Info("Digest delivered", "to", c.To, "format", c.Format, "attached", c.Attach)
	return nil
}

func newMailer() (*delivery.Mailer, error) {
	creds, err := delivery.CredentialsFromEnv()
	if err != nil {
		return nil, err
	}

	server, err := delivery.ServerFromEnv(creds.Username)
	if err != nil {
		return nil, err
	}

	slog.Debug("SMTP server resolved", "host", server.Host, "port", server.Port, "tls", server.TLS)

	return delivery.NewMailer(server, creds, cfg.Get().Timeout), nil
}
