package infrastructure

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"shopfront/internal/config"
)

// CaptchaService talks to the external human-verification endpoint.
type CaptchaService struct {
	siteKey   string
	secretKey string
	verifyURL string
	devMode   bool
	client    *http.Client
}

func NewCaptchaService(cfg *config.Config) *CaptchaService {
	return &CaptchaService{
		siteKey:   cfg.RecaptchaSiteKey,
		secretKey: cfg.RecaptchaSecretKey,
		verifyURL: cfg.RecaptchaVerifyURL,
		devMode:   cfg.DevMode,
		client:    &http.Client{Timeout: cfg.VerifyTimeout},
	}
}

// SiteKey is the public key rendered into the signup/signin forms.
func (c *CaptchaService) SiteKey() string {
	return c.siteKey
}

// Verify checks the response token with the verification endpoint. In dev
// mode verification is skipped entirely. Transport errors, non-200
// responses and malformed bodies all count as failed verification.
func (c *CaptchaService) Verify(ctx context.Context, token string) bool {
	if c.devMode {
		return true
	}

	form := url.Values{
		"secret":   {c.secretKey},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("captcha verification request failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("captcha verification response malformed: %v", err)
		return false
	}
	return result.Success
}
