package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"kabulearn/config"
)

// SendEmail sends an HTML mail through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender is not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Kabulearn <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendWelcomeEmail greets a freshly signed-up learner.
func SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<body>
		<h2>ようこそ、%sさん！</h2>
		<p>株式投資の学習プラットフォームへの登録が完了しました。</p>
		<p>Stage 1 のレッスンから学習を始めましょう。クイズに正解すると進捗が記録されます。</p>
	</body>
	</html>`, name)

	return SendEmail([]string{to}, "登録ありがとうございます", body)
}
