package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks a human-verification token. Implementations are opaque
// boolean verifiers: false means the challenge was refused, an error means
// the verification service itself failed.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// GoogleVerifier validates reCAPTCHA tokens against the siteverify endpoint.
type GoogleVerifier struct {
	Secret    string
	VerifyURL string // overridable in tests
	Client    *http.Client
}

// NewGoogleVerifier builds a verifier for the given server-side secret.
func NewGoogleVerifier(secret string) *GoogleVerifier {
	return &GoogleVerifier{
		Secret:    secret,
		VerifyURL: googleVerifyURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("captcha: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha: verify request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("captcha: decode response: %w", err)
	}
	return result.Success, nil
}
