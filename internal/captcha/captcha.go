package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Recaptcha verifies challenge responses against the siteverify endpoint.
// With no private key configured, verification is disabled and every
// challenge passes (local development).
type Recaptcha struct {
	privateKey string
	client     *http.Client
	log        *zap.Logger
}

func NewRecaptcha(config utils.RecaptchaConfig, log *zap.Logger) *Recaptcha {
	return &Recaptcha{
		privateKey: config.PrivateKey,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log.With(zap.String("component", "captcha")),
	}
}

func (c *Recaptcha) Verify(ctx context.Context, response string) error {
	if c.privateKey == "" {
		return nil
	}

	if response == "" {
		return fmt.Errorf("missing captcha response")
	}

	form := url.Values{}
	form.Set("secret", c.privateKey)
	form.Set("response", response)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Captcha verification request failed", zap.Error(err))
		return fmt.Errorf("verify captcha: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode captcha response: %w", err)
	}

	if !result.Success {
		c.log.Warn("Captcha challenge rejected", zap.Strings("error_codes", result.ErrorCodes))
		return fmt.Errorf("captcha challenge rejected")
	}

	return nil
}
