package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailService sends transactional mail via SMTP.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

type Config struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
}

func NewEmailService(cfg Config) *EmailService {
	from := cfg.FromEmail
	if from == "" {
		from = cfg.Username
	}
	return &EmailService{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: from,
	}
}

// AlertDigestData holds the data for a job alert digest email.
type AlertDigestData struct {
	RecipientName string
	Keywords      string
	Matches       []AlertMatch
}

type AlertMatch struct {
	Title    string
	Company  string
	Location string
	Score    float64
	ApplyURL string
}

const alertDigestTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Job Matches</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .job { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-bottom: 12px; }
        .score { color: #0066cc; font-weight: bold; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Job Matches for "{{.Keywords}}"</h1>
        </div>
        <div class="content">
            <p>Hi {{.RecipientName}}, your job alert found new matches:</p>
            {{range .Matches}}
            <div class="job">
                <div><strong>{{.Title}}</strong> at {{.Company}}</div>
                <div>{{.Location}} &middot; <span class="score">{{printf "%.0f" .Score}}% match</span></div>
                {{if .ApplyURL}}<div><a href="{{.ApplyURL}}">View posting</a></div>{{end}}
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>You are receiving this because you created a job alert. Manage alerts from your dashboard.</p>
        </div>
    </div>
</body>
</html>`

// SendAlertDigest sends a job alert digest to the given address.
func (s *EmailService) SendAlertDigest(to string, data AlertDigestData) error {
	tmpl, err := template.New("alert").Parse(alertDigestTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Job alert: %d new matches for %q", len(data.Matches), data.Keywords)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
