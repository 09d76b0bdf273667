package utils

import (
	"fmt"
	"log"

	"pitchhub/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendInvestmentReceipt mails a confirmation to the investor. Without an API
// key configured the receipt is skipped silently.
func SendInvestmentReceipt(investorName, email, pitchTitle, amount string) error {
	if config.AppConfig.SendgridApiKey == "" {
		return nil
	}

	from := mail.NewEmail("PitchHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(investorName, email)
	subject := "Your investment has been recorded"

	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour investment of %s in \"%s\" has been recorded.\n\nThank you for investing with us.",
		investorName, amount, pitchTitle,
	)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your investment of <strong>%s</strong> in <strong>%s</strong> has been recorded.</p><p>Thank you for investing with us.</p>",
		investorName, amount, pitchTitle,
	)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Printf("Investment receipt sent to %s", email)
	return nil
}
