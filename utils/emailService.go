package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"formadmin/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Centre de Formation <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// SendEvaluationDecisionEmail notifies a student that an evaluation was reviewed
func SendEvaluationDecisionEmail(email, name, formation, status, note string) error {
	subject := fmt.Sprintf("Your evaluation for %s was %s", formation, strings.ToLower(status))
	body := fmt.Sprintf(`
	<html><body>
	<p>Hello %s,</p>
	<p>Your work-study evaluation for <b>%s</b> has been <b>%s</b>.</p>
	<p>%s</p>
	<p>Centre de Formation</p>
	</body></html>`, name, formation, strings.ToLower(status), note)

	return SendEmail([]string{email}, subject, body)
}
