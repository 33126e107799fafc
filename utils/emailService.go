package utils

import (
	"fmt"
	"log"

	"lumina/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through Sendgrid. Skipped with a log line
// when no API key is configured.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email skipped (no SENDGRID_API_KEY): %s -> %s", subject, toEmail)
		return nil
	}

	from := sgmail.NewEmail("Lumina Academy", config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Sendgrid returned %d for %s", resp.StatusCode, toEmail)
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the shared layout
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0;">
		<div style="max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden;">
			<div style="background-color: #1E1B4B; padding: 30px; text-align: center;">
				<h1 style="color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px;">LUMINA ACADEMY</h1>
			</div>
			<div style="padding: 40px 30px; color: #1E1B4B; line-height: 1.6;">
				<h2 style="margin-top: 0;">%s</h2>
				%s
			</div>
			<div style="background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666;">
				&copy; 2026 Lumina Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered account
func SendWelcomeEmail(email, name string) {
	go func() {
		body := fmt.Sprintf(`<p>Hi %s,</p><p>Welcome to Lumina Academy! Browse the catalog, enroll in a course and start learning.</p>`, name)
		SendEmail(email, name, "Welcome to Lumina Academy", getEmailTemplate("Welcome aboard", body))
	}()
}

// SendCourseCompletionEmail congratulates a student on finishing a course
func SendCourseCompletionEmail(email, name, courseTitle string) {
	go func() {
		body := fmt.Sprintf(`<p>Hi %s,</p><p>Congratulations, you completed <b>%s</b>! Your certificate is available from your dashboard.</p>`, name, courseTitle)
		SendEmail(email, name, "Course completed: "+courseTitle, getEmailTemplate("Course completed", body))
	}()
}
