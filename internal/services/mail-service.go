package services

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type MailService struct {
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
	mailFrom string
	fromName string
	subject  string
}

func NewMailService(
	smtpHost string,
	smtpPort string,
	smtpUser string,
	smtpPass string,
	mailFrom string,
	fromName string,
	subject string,
) *MailService {
	return &MailService{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
		mailFrom: mailFrom,
		fromName: fromName,
		subject:  subject,
	}
}

// SendOTPEmail makes a single synchronous delivery attempt. No retry, no
// queue; the caller decides what a failure means.
func (s *MailService) SendOTPEmail(to string, code string) error {
	fromHeader := fmt.Sprintf("%s <%s>", s.fromName, s.mailFrom)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", s.subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		fmt.Sprintf("Your OTP is: %s", code),
	}, "\r\n")

	log.Printf("[MAIL] smtp sending to=%s via=%s", to, s.addr())

	if err := s.sendSMTPWithTimeout(to, []byte(msg)); err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *MailService) addr() string {
	return net.JoinHostPort(s.smtpHost, s.smtpPort)
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", s.addr(), 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole SMTP conversation
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.smtpHost)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.smtpHost}); err != nil {
			return err
		}
	}

	if s.smtpUser != "" {
		auth := smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.mailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
