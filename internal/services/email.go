package services

import (
	"context"
	"fmt"
	"log"

	"studentevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSubmissionNotice sends the new-submission notice to the moderators
// using the "submission_notice" template.
func (s *emailService) SendSubmissionNotice(ctx context.Context, data *domain.SubmissionNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("submission notice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("submission_notice", data)
	if err != nil {
		return fmt.Errorf("failed to render submission_notice template: %w", err)
	}
	if err := s.mailer.Send(data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send submission notice: %w", err)
	}
	log.Printf("[EMAIL] Submission notice sent to %s", data.To)
	return nil
}
