package infrastructure

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"shopfront/internal/config"
)

// Mailer sends best-effort notification emails. Without an API key it is
// a no-op.
type Mailer struct {
	sender string
	client *resend.Client
}

func NewMailer(cfg *config.Config) *Mailer {
	if cfg.EmailAPIKey == "" {
		log.Println("mailer disabled: no email API key configured")
		return &Mailer{}
	}

	maskedKey := ""
	if len(cfg.EmailAPIKey) > 8 {
		maskedKey = cfg.EmailAPIKey[:4] + "****" + cfg.EmailAPIKey[len(cfg.EmailAPIKey)-4:]
	}
	log.Printf("mailer config - API key: %s, sender: %s", maskedKey, cfg.EmailSender)

	return &Mailer{
		sender: cfg.EmailSender,
		client: resend.NewClient(cfg.EmailAPIKey),
	}
}

// SendWelcome never blocks signup; failures are only logged.
func (m *Mailer) SendWelcome(email string) {
	if m.client == nil {
		return
	}

	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{email},
		Subject: "Welcome to Shopfront",
		Text:    fmt.Sprintf("Hi %s, your account is ready. Happy browsing!", email),
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		log.Printf("welcome email to %s failed: %v", email, err)
	}
}
