package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSupportAlert(toEmail, userMessage, botResponse string, chatId uint) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendSupportAlert notifies the support inbox that a customer asked for a
// human agent, so someone can pick up the conversation.
func (s *emailService) SendSupportAlert(toEmail, userMessage, botResponse string, chatId uint) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("[Sneakers Store] Support requested (chat #%d)", chatId))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A customer asked for a human agent</h2>
			<p><strong>Chat ID:</strong> %d</p>
			<p><strong>Customer message:</strong></p>
			<blockquote style="border-left: 3px solid #007BFF; padding-left: 10px;">%s</blockquote>
			<p><strong>Bot reply sent:</strong></p>
			<blockquote style="border-left: 3px solid #999; padding-left: 10px;">%s</blockquote>
			<p>Open the admin panel to resolve this conversation.</p>
		</div>
	`, chatId, userMessage, botResponse)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send support alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Support alert sent to %s\n", toEmail)
	return nil
}
