package email

import (
	"context"
	"fmt"
	"net/smtp"

	"orgsite-backend/pkg/logger"
)

type EmailService interface {
	SendNewsletterWelcome(ctx context.Context, data NewsletterWelcomeData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
	orgName  string
}

func NewSMTPEmailService(smtpHost, smtpPort, from, orgName string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
		orgName:  orgName,
	}
}

func (s *smtpEmailService) SendNewsletterWelcome(ctx context.Context, data NewsletterWelcomeData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	greeting := "Hi"
	if data.Name != "" {
		greeting = "Hi " + data.Name
	}
	subject := fmt.Sprintf("Welcome to the %s newsletter", s.orgName)
	body := fmt.Sprintf(`%s,

Thanks for subscribing. You will hear from us about events, projects and recruitment.

To stop receiving these emails, unsubscribe here:
%s
`, greeting, data.UnsubscribeURL)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}

	logger.Info("newsletter welcome sent", map[string]interface{}{"email": data.Email})
	return nil
}
