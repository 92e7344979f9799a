package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lms/config"
)

// SendEmail sends an HTML email through the configured SMTP relay.
// A blank EMAIL_SENDER disables outgoing mail entirely (tests, local dev).
func SendEmail(to []string, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.EmailSender == "" {
		log.Printf("Email disabled, skipping %q to %s", subject, strings.Join(to, ", "))
		return nil
	}

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.Password, cfg.SMTPHost)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		cfg.EmailSender, strings.Join(to, ","), subject)

	msg := []byte(headers + htmlBody)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, cfg.EmailSender, to, msg); err != nil {
		log.Printf("Error sending email %q: %v", subject, err)
		return err
	}

	return nil
}

func getEmailTemplate(title, body string) string {
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #333333; max-width: 600px; margin: 0 auto;">
		<div style="background-color: #2563EB; color: #ffffff; padding: 20px; text-align: center;">
			<h2>%s</h2>
		</div>
		<div style="padding: 20px; border: 1px solid #E0E0E0;">
			%s
		</div>
		<div style="padding: 15px; text-align: center; font-size: 12px; color: #999999;">
			This is an automated message, please do not reply.
		</div>
	</body>
	</html>`, title, body)
}

// SendWelcomeEmail greets a newly registered account
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to the platform"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been successfully created. You can now browse the catalog and start learning.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail confirms a new course enrollment
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<p>Head over to your dashboard to start your first lesson.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// SendCourseCompletionEmail congratulates a learner who reached full
// progress and points at the issued certificate
func SendCourseCompletionEmail(email, name, courseTitle, certificateNumber string) {
	subject := "Congratulations! You completed " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully completed <strong>%s</strong>.</p>
		<p>Your certificate <strong>%s</strong> is now available on your certificates page.</p>
	`, name, courseTitle, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Completed", body))
}
