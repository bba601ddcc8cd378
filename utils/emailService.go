package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"scholarnest/config"
)

// SendEmail delivers an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ScholarNest <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.status-badge { display: inline-block; padding: 4px 10px; border-radius: 4px; font-size: 13px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SCHOLARNEST</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ScholarNest. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to ScholarNest"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>ScholarNest</strong>! Your account has been created.</p>
		<p>Browse our courses, scholarships and tutorials, and request enrollment in any course that interests you.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentDecisionEmail notifies a student that an admin approved or
// rejected their enrollment request.
func SendEnrollmentDecisionEmail(email, name, courseTitle, status string) {
	badgeColor := "#28A745"
	headline := "Enrollment Approved"
	detail := "You now have full access to the course content. Happy learning!"
	if status != "approved" {
		badgeColor = "#DC3545"
		headline = "Enrollment Rejected"
		detail = "Unfortunately your enrollment request was not approved. You can contact support for details."
	}

	subject := fmt.Sprintf("Enrollment update: %s", courseTitle)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your enrollment request for <strong>%s</strong> has been reviewed.</p>
		<div style="margin: 20px 0;">
			<span class="status-badge" style="background-color: %s;">%s</span>
		</div>
		<p>%s</p>
	`, name, courseTitle, badgeColor, strings.ToUpper(status), detail)

	if err := SendEmail([]string{email}, subject, getEmailTemplate(headline, body)); err != nil {
		fmt.Println("Enrollment decision email failed for:", email)
	}
}
