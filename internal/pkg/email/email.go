package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/sistema-nomina/nomina-backend-go/internal/config"
)

const maxRetries = 3

// EmailService delivers salary receipts to employees.
type EmailService interface {
	SendReceipt(to, employeeName string, month, year int, receiptPDF []byte) error
}

type emailServiceImpl struct {
	cfg  config.SMTPConfig
	body *template.Template
}

var receiptBodyTemplate = template.Must(template.New("receipt").Parse(`
<html>
<body>
<p>Hello {{.EmployeeName}},</p>
<p>Your salary receipt for {{printf "%02d" .Month}}/{{.Year}} is attached.</p>
<p>This is an automated message, please do not reply.</p>
</body>
</html>
`))

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is not configured")
	}
	return &emailServiceImpl{cfg: cfg, body: receiptBodyTemplate}, nil
}

type receiptEmailData struct {
	EmployeeName string
	Month        int
	Year         int
}

func (s *emailServiceImpl) SendReceipt(to, employeeName string, month, year int, receiptPDF []byte) error {
	var bodyBuf bytes.Buffer
	if err := s.body.Execute(&bodyBuf, receiptEmailData{EmployeeName: employeeName, Month: month, Year: year}); err != nil {
		return fmt.Errorf("failed to render receipt email body: %w", err)
	}

	subject := fmt.Sprintf("Salary receipt - %02d/%d", month, year)
	filename := fmt.Sprintf("receipt_%02d_%d.pdf", month, year)
	msg, err := s.buildMessage(to, subject, bodyBuf.String(), filename, receiptPDF)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
		if lastErr == nil {
			return nil
		}
		slog.Warn("receipt email delivery failed",
			slog.String("to", to),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()),
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return fmt.Errorf("failed to send receipt email after %d attempts: %w", maxRetries, lastErr)
}

// buildMessage assembles a multipart MIME message with an HTML body and a
// PDF attachment.
func (s *emailServiceImpl) buildMessage(to, subject, htmlBody, filename string, attachment []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", "text/html; charset=utf-8")
	bodyPart, err := writer.CreatePart(bodyHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create email body part: %w", err)
	}
	if _, err := bodyPart.Write([]byte(htmlBody)); err != nil {
		return nil, fmt.Errorf("failed to write email body: %w", err)
	}

	attachHeader := textproto.MIMEHeader{}
	attachHeader.Set("Content-Type", "application/pdf")
	attachHeader.Set("Content-Transfer-Encoding", "base64")
	attachHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	attachPart, err := writer.CreatePart(attachHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment part: %w", err)
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(attachment)))
	base64.StdEncoding.Encode(encoded, attachment)
	if _, err := attachPart.Write(encoded); err != nil {
		return nil, fmt.Errorf("failed to write attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize email message: %w", err)
	}
	return buf.Bytes(), nil
}
