package email

import (
	"bytes"
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"
)

// ============================================================
// CONFIGURATION & SERVICE
// ============================================================

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

func DefaultConfig() *Config {
	return &Config{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnv("SMTP_PORT", "587"),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "noreply@attendance-tracker.app"),
		FromName: getEnv("SMTP_FROM_NAME", "Attendance Tracker"),
	}
}

// EmailService sends user-facing emails over SMTP. When no SMTP credentials
// are configured it runs in dev mode and silently drops messages, so local
// environments never need a mail account.
type EmailService struct {
	config  *Config
	devMode bool
}

func NewEmailService(config *Config) *EmailService {
	if config == nil {
		config = DefaultConfig()
	}
	devMode := config.Username == "" || config.Password == ""
	return &EmailService{
		config:  config,
		devMode: devMode,
	}
}

// DevMode reports whether the service is dropping mail instead of sending.
func (s *EmailService) DevMode() bool {
	return s.devMode
}

type EmailMessage struct {
	To       []string
	Subject  string
	HTMLBody string
}

// ============================================================
// SENDING ENGINE
// ============================================================

func (s *EmailService) Send(msg EmailMessage) error {
	if s.devMode {
		return nil
	}
	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	var body bytes.Buffer
	boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())
	body.WriteString(fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: multipart/mixed; boundary=%s\r\n\r\n", s.config.FromName, s.config.From, strings.Join(msg.To, ", "), msg.Subject, boundary))
	body.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.HTMLBody))
	body.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return smtp.SendMail(addr, auth, s.config.From, msg.To, body.Bytes())
}

// ============================================================
// TEMPLATE BUILDERS
// ============================================================

// SendWelcomeEmail sends the registration welcome message.
func (s *EmailService) SendWelcomeEmail(to, name string) error {
	if name == "" {
		name = "there"
	}
	html := wrapLayout("WELCOME ABOARD", fmt.Sprintf(`<p>Hello <strong>%s</strong>,</p>
    <p>Your Attendance Tracker account has been created. You can now sign in and start tracking attendance.</p>
    <p style="margin-top:25px;color:#999999;font-size:13px;">If you did not create this account, please contact support.</p>`, name))
	return s.Send(EmailMessage{To: []string{to}, Subject: "Attendance Tracker - Welcome", HTMLBody: html})
}

// SendPasswordResetEmail sends the reset link plus a QR code of the same
// link. The link embeds the raw single-use token; it expires in 30 minutes.
func (s *EmailService) SendPasswordResetEmail(to, resetLink, qrDataURI string) error {
	qrBlock := ""
	if qrDataURI != "" {
		qrBlock = fmt.Sprintf(`<table width="100%%" border="0" cellpadding="0" cellspacing="0"><tr><td align="center" style="padding:20px 0;"><img src="%s" width="220" height="220" alt="Reset link QR" /></td></tr></table>`, qrDataURI)
	}
	html := wrapLayout("PASSWORD RESET", fmt.Sprintf(`<p>We received a request to reset your password. This link expires in 30 minutes:</p>
    <table border="0" cellspacing="0" cellpadding="0" style="margin:20px 0;"><tr><td bgcolor="#2E6BE6" style="border-radius:50px;padding:15px 35px;"><a href="%s" style="color:#ffffff;text-decoration:none;font-weight:bold;">RESET PASSWORD</a></td></tr></table>
    %s
    <p style="margin-top:25px;color:#999999;font-size:13px;">If you did not request this, please ignore this email. Your password will not change.</p>`, resetLink, qrBlock))
	return s.Send(EmailMessage{To: []string{to}, Subject: "Attendance Tracker - Password Reset", HTMLBody: html})
}

// SendPasswordChangedEmail confirms a completed password reset.
func (s *EmailService) SendPasswordChangedEmail(to string) error {
	html := wrapLayout("PASSWORD CHANGED", `<p>Your password was changed successfully.</p>
    <p style="margin-top:25px;color:#999999;font-size:13px;">If this was not you, reset your password immediately and contact support.</p>`)
	return s.Send(EmailMessage{To: []string{to}, Subject: "Attendance Tracker - Password Changed", HTMLBody: html})
}

// SendAccountUnlockedEmail confirms a manual account unlock.
func (s *EmailService) SendAccountUnlockedEmail(to string) error {
	html := wrapLayout("ACCOUNT UNLOCKED", `<p>Your account has been unlocked. You can sign in again now.</p>`)
	return s.Send(EmailMessage{To: []string{to}, Subject: "Attendance Tracker - Account Unlocked", HTMLBody: html})
}

func wrapLayout(title, inner string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f5f5f5;"><table width="100%%" border="0" cellspacing="0" cellpadding="0" bgcolor="#f5f5f5"><tr><td align="center" style="padding:40px 0;"><table width="600" border="0" cellspacing="0" cellpadding="0" bgcolor="#ffffff" style="border-radius:16px;overflow:hidden;box-shadow:0 4px 15px rgba(0,0,0,0.1);">
    <tr><td height="8" bgcolor="#2E6BE6" style="line-height:8px;font-size:8px;">&nbsp;</td></tr>
    <tr><td align="left" style="padding:35px 40px;"><h1 style="margin:0;color:#2E6BE6;font-size:24px;font-weight:bold;letter-spacing:1px;">ATTENDANCE TRACKER</h1></td></tr>
    <tr><td style="padding:10px 40px 40px 40px;"><h2 style="color:#000000;margin:0 0 10px 0;">%s</h2>%s</td></tr>
    <tr><td align="center" bgcolor="#2c2c2c" style="padding:20px;color:#999999;font-size:12px;">© 2026 Attendance Tracker. All rights reserved.</td></tr></table></td></tr></table></body></html>`, title, inner)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
