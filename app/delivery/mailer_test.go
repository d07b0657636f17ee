package delivery

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestResolveServer(t *testing.T) {
	tests := []struct {
		email string
		host  string
	}{
		{"user@qq.com", "smtp.qq.com"},
		{"user@163.com", "smtp.163.com"},
		{"User@Gmail.com", "smtp.gmail.com"},
		{"user@outlook.com", "smtp.office365.com"},
		{"user@hotmail.com", "smtp.office365.com"},
		{"user@yahoo.com", "smtp.mail.yahoo.com"},
		{"user@example.org", "smtp.qq.com"},
		{"not-an-email", "smtp.qq.com"},
	}

	for _, tt := range tests {
		server := ResolveServer(tt.email)
		if server.Host != tt.host {
			t.Errorf("ResolveServer(%q) host = %s, expected %s", tt.email, server.Host, tt.host)
		}
		if server.Port != 587 || !server.TLS {
			t.Errorf("ResolveServer(%q) = %+v, expected port 587 with TLS", tt.email, server)
		}
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASSWORD", "secret")

	if _, err := CredentialsFromEnv(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Expected ErrMissingCredentials, got %v", err)
	}

	t.Setenv("EMAIL_USER", "me@gmail.com")
	creds, err := CredentialsFromEnv()
	require.NoError(t, err)
	require.Equal(t, Credentials{Username: "me@gmail.com", Password: "secret"}, creds)
}

func TestServerFromEnv(t *testing.T) {
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_PORT", "")

	server, err := ServerFromEnv("me@gmail.com")
	require.NoError(t, err)
	require.Equal(t, "smtp.gmail.com", server.Host)

	t.Setenv("SMTP_SERVER", "mail.internal")
	server, err = ServerFromEnv("me@gmail.com")
	require.NoError(t, err)
	require.Equal(t, ServerConfig{Host: "mail.internal", Port: 587, TLS: true}, server)

	t.Setenv("SMTP_PORT", "2525")
	server, err = ServerFromEnv("me@gmail.com")
	require.NoError(t, err)
	require.Equal(t, 2525, server.Port)

	t.Setenv("SMTP_PORT", "abc")
	_, err = ServerFromEnv("me@gmail.com")
	require.Error(t, err)
}

func TestMailerMissingCredentials(t *testing.T) {
	mailer := NewMailer(ResolveServer("me@gmail.com"), Credentials{Username: "me@gmail.com"}, time.Second)

	err := mailer.Send(context.Background(), Message{To: "you@example.com", Subject: "Hi", Body: "Hello"})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Expected ErrMissingCredentials, got %v", err)
	}
}

func TestMailerTransportFailure(t *testing.T) {
	server := ServerConfig{Host: "127.0.0.1", Port: 1, TLS: true}
	mailer := NewMailer(server, Credentials{Username: "me@example.com", Password: "secret"}, 500*time.Millisecond)

	err := mailer.Send(context.Background(), Message{To: "you@example.com", Subject: "Hi", Body: "Hello"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "127.0.0.1:1")
	require.False(t, errors.Is(err, ErrMissingCredentials))
}

func TestMailerBuild(t *testing.T) {
	attachment := filepath.Join(t.TempDir(), "digest.md")
	require.NoError(t, os.WriteFile(attachment, []byte("# Digest"), 0644))

	mailer := NewMailer(ResolveServer("me@example.com"), Credentials{Username: "me@example.com", Password: "secret"}, time.Second)

	message, err := mailer.build(Message{
		To:          "you@example.com",
		Subject:     "AI Daily Digest",
		Body:        "<p>Hello</p>",
		ContentType: ContentHTML,
		Attachment:  attachment,
	})
	require.NoError(t, err)

	recipients, err := message.GetRecipients()
	require.NoError(t, err)
	require.Equal(t, []string{"you@example.com"}, recipients)

	ids := message.GetGenHeader(mail.HeaderMessageID)
	require.Len(t, ids, 1)
	require.True(t, strings.HasSuffix(ids[0], "@example.com>"), "unexpected message id %s", ids[0])

	require.Len(t, message.GetAttachments(), 1)
}

func TestMailerBuildErrors(t *testing.T) {
	mailer := NewMailer(ResolveServer("me@example.com"), Credentials{Username: "me@example.com", Password: "secret"}, time.Second)

	_, err := mailer.build(Message{To: "not an address", Subject: "Hi"})
	require.Error(t, err)

	_, err = mailer.build(Message{To: "you@example.com", Attachment: filepath.Join(t.TempDir(), "missing.md")})
	require.Error(t, err)
}

// smtpRecorder is a single-connection SMTP server offering STARTTLS and the
// given AUTH mechanisms. Only LOGIN is actually accepted.
type smtpRecorder struct {
	mu       sync.Mutex
	commands []string
	username string
	password string
	data     string
}

func (r *smtpRecorder) record(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}

func startSMTPServer(t *testing.T, mechanisms string) (*smtpRecorder, ServerConfig, *tls.Config) {
	t.Helper()

	// Borrow the self-signed 127.0.0.1 certificate of an httptest server.
	certSource := httptest.NewTLSServer(http.NotFoundHandler())
	serverTLS := &tls.Config{Certificates: certSource.TLS.Certificates}
	roots := x509.NewCertPool()
	roots.AddCert(certSource.Certificate())
	certSource.Close()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	recorder := &smtpRecorder{}
	go recorder.serve(listener, serverTLS, mechanisms)

	server := ServerConfig{
		Host: "127.0.0.1",
		Port: listener.Addr().(*net.TCPAddr).Port,
		TLS:  true,
	}
	clientTLS := &tls.Config{ServerName: "127.0.0.1", RootCAs: roots}

	return recorder, server, clientTLS
}

func (r *smtpRecorder) serve(listener net.Listener, serverTLS *tls.Config, mechanisms string) {
	conn, err := listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	text := textproto.NewConn(conn)
	secure := false
	text.PrintfLine("220 localhost ESMTP")

	for {
		line, err := text.ReadLine()
		if err != nil {
			return
		}
		r.record(func() { r.commands = append(r.commands, line) })

		fields := strings.Fields(line)
		if len(fields) == 0 {
			text.PrintfLine("500 5.5.2 Empty command")
			continue
		}

		switch strings.ToUpper(fields[0]) {
		case "EHLO":
			text.PrintfLine("250-localhost")
			if !secure {
				text.PrintfLine("250-STARTTLS")
			}
			text.PrintfLine("250 AUTH %s", mechanisms)
		case "STARTTLS":
			text.PrintfLine("220 2.0.0 Ready to start TLS")
			tlsConn := tls.Server(conn, serverTLS)
			if err := tlsConn.Handshake(); err != nil {
				return
			}
			text = textproto.NewConn(tlsConn)
			secure = true
		case "AUTH":
			if len(fields) < 2 || strings.ToUpper(fields[1]) != "LOGIN" {
				text.PrintfLine("504 5.7.4 Unrecognized authentication type")
				continue
			}
			text.PrintfLine("334 VXNlcm5hbWU6")
			username, _ := text.ReadLine()
			text.PrintfLine("334 UGFzc3dvcmQ6")
			password, _ := text.ReadLine()
			r.record(func() {
				r.username = decodeBase64(username)
				r.password = decodeBase64(password)
			})
			text.PrintfLine("235 2.7.0 Authentication successful")
		case "DATA":
			text.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
			data, err := text.ReadDotLines()
			if err != nil {
				return
			}
			r.record(func() { r.data = strings.Join(data, "\n") })
			text.PrintfLine("250 2.0.0 Queued")
		case "QUIT":
			text.PrintfLine("221 2.0.0 Bye")
			return
		default:
			text.PrintfLine("250 2.0.0 OK")
		}
	}
}

func decodeBase64(s string) string {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func TestMailerSendNegotiatesLoginAuth(t *testing.T) {
	recorder, server, clientTLS := startSMTPServer(t, "LOGIN XOAUTH2")

	mailer := NewMailer(server, Credentials{Username: "me@outlook.com", Password: "secret"}, 5*time.Second)
	mailer.tlsConfig = clientTLS

	err := mailer.Send(context.Background(), Message{
		To:          "you@example.com",
		Subject:     "AI Daily Digest",
		Body:        "Hello from the digest",
		ContentType: ContentPlain,
	})
	require.NoError(t, err)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	require.Contains(t, recorder.commands, "STARTTLS")
	require.Contains(t, recorder.commands, "AUTH LOGIN")
	for _, command := range recorder.commands {
		if strings.HasPrefix(command, "AUTH PLAIN") {
			t.Errorf("Expected no PLAIN authentication attempt, got %q", command)
		}
	}
	require.Equal(t, "me@outlook.com", recorder.username)
	require.Equal(t, "secret", recorder.password)
	require.Contains(t, recorder.data, "Hello from the digest")
}
