package utils

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/models"

	"gopkg.in/gomail.v2"
)

// SendIssueNotification mails the configured mailbox when a stock item
// is issued. Mailing is best effort: without SMTP settings it is a
// no-op, and a send failure only logs.
func SendIssueNotification(product models.Product, user models.User) {
	if config.SMTPHost == "" || config.SMTPSender == "" || config.SMTPNotifyTo == "" {
		return
	}

	subject := fmt.Sprintf("Stock item %s issued to %s", product.SerialNumber, user.Username)
	body := fmt.Sprintf(`
		<html>
			<body>
				<p>Stock item with serial number <b>%s</b> (bill %s) was issued to <b>%s</b>.</p>
				<p>Holder contact: %s, %s</p>
			</body>
		</html>
	`, product.SerialNumber, product.BillNumber, user.Username, user.MobileNumber, user.Address)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.SMTPNotifyTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send issue notification:", err)
	}
}
