package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"crewdesk/config"
)

type emailData struct {
	Subject string
	AppName string
	Token   string
	Year    int
}

// Embedded email templates
var emailTemplates = map[string]string{
	"verify": `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Subject}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Confirm your email</h2>
    <p>Welcome to {{.AppName}}. Use the token below to verify your email address:</p>
    <p style="font-size: 18px; font-weight: bold; color: #3498db;">{{.Token}}</p>
    <p>The token expires in one hour.</p>
    <p style="font-size: 12px; color: #7f8c8d;">© {{.Year}} {{.AppName}}. If you didn't sign up, ignore this email.</p>
</body>
</html>`,

	"password_reset": `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Subject}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Reset your password</h2>
    <p>Use the token below to set a new password:</p>
    <p style="font-size: 18px; font-weight: bold; color: #3498db;">{{.Token}}</p>
    <p>The token expires in one hour.</p>
    <p style="font-size: 12px; color: #7f8c8d;">© {{.Year}} {{.AppName}}. If you didn't request a reset, ignore this email.</p>
</body>
</html>`,
}

func sendMail(to, subject, templateName, token string) error {
	tmpl, ok := emailTemplates[templateName]
	if !ok {
		return fmt.Errorf("unknown email template %q", templateName)
	}

	t, err := template.New(templateName).Parse(tmpl)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	data := emailData{
		Subject: subject,
		AppName: config.AppConfig.AppName,
		Token:   token,
		Year:    time.Now().Year(),
	}
	if err := t.Execute(&body, data); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.AppConfig.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
	)
	return d.DialAndSend(m)
}

func SendVerificationEmail(to, token string) error {
	return sendMail(to, "Confirm your email", "verify", token)
}

func SendPasswordResetEmail(to, token string) error {
	return sendMail(to, "Reset your password", "password_reset", token)
}
