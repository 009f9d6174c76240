package domain

import "context"

// Mailer sends a single email. Implementations: AWS SES, noop.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named template into subject, html, and text
// bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// SubmissionNoticeEmailData is the data for the notice sent to moderators when
// a new event is submitted.
type SubmissionNoticeEmailData struct {
	To       string
	Title    string
	Date     string
	Time     string
	Location string
}

// EmailService sends the application emails.
type EmailService interface {
	SendSubmissionNotice(ctx context.Context, data *SubmissionNoticeEmailData) error
}
