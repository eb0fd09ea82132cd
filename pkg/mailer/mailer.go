package mailer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/recordhub/recordhub/pkg/mailer Mailer

// Mailer delivers the transactional emails of the service
type Mailer interface {
	// SendVerifyCode emails a password reset verification code
	SendVerifyCode(email, code string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	// CodeTTL is printed in the email so the recipient knows when the code lapses
	CodeTTL time.Duration
}

// SMTPMailer sends through an SMTP relay with go-mail
type SMTPMailer struct {
	config   *Config
	testMode bool
	out      io.Writer
}

func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{config: config, out: os.Stdout}
}

// NewTestSMTPMailer builds messages but never dials; sends are reported to out
func NewTestSMTPMailer(config *Config, out io.Writer) *SMTPMailer {
	return &SMTPMailer{config: config, testMode: true, out: out}
}

func (m *SMTPMailer) SendVerifyCode(email, code string) error {
	msg, err := m.verifyCodeMessage(email, code)
	if err != nil {
		return err
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if client == nil {
		fmt.Fprintf(m.out, "verify code email to=%s from=%s code=%s\n", email, m.config.FromEmail, code)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send verify code email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) verifyCodeMessage(email, code string) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return nil, fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject("Your verification code")

	minutes := int(m.config.CodeTTL.Minutes())
	if minutes < 1 {
		minutes = 1
	}

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<p>Hello,</p>
			<p>Use this code to reset your password:</p>
			<h2 style="letter-spacing: 3px;">%s</h2>
			<p>The code expires in %d minutes. If you did not ask for it, ignore this email.</p>
		</body>
	</html>`, code, minutes)

	plainBody := fmt.Sprintf(
		"Hello,\n\nUse this code to reset your password: %s\n\n"+
			"The code expires in %d minutes. If you did not ask for it, ignore this email.\n", code, minutes)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	return msg, nil
}

// createSMTPClient returns nil in test mode
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// unauthenticated relays are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer prints emails instead of sending them. Used in development.
type ConsoleMailer struct {
	out io.Writer
}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{out: os.Stdout}
}

// NewConsoleMailerWithWriter is NewConsoleMailer writing to w
func NewConsoleMailerWithWriter(w io.Writer) *ConsoleMailer {
	return &ConsoleMailer{out: w}
}

func (m *ConsoleMailer) SendVerifyCode(email, code string) error {
	fmt.Fprintln(m.out, "==============================================================")
	fmt.Fprintln(m.out, "                    VERIFICATION CODE                         ")
	fmt.Fprintln(m.out, "==============================================================")
	fmt.Fprintf(m.out, "To: %s\n", email)
	fmt.Fprintf(m.out, "Code: %s\n", code)
	fmt.Fprintln(m.out, "==============================================================")
	return nil
}
