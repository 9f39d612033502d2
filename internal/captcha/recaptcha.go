// Package captcha wraps the reCAPTCHA v3 siteverify call. The check is
// advisory for this site: a low score or an unreachable backend must never
// cost a genuine RSVP, so the caller logs and proceeds either way.
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

const (
	defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

	// Scores below this are logged for review; they do not block.
	passingScore = 0.5
)

type Verifier struct {
	secret     string
	httpClient *http.Client

	// Overridable in tests.
	verifyURL string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		verifyURL:  defaultVerifyURL,
	}
}

// Verify submits the client token and returns the trust score and whether it
// clears the passing threshold. A transport or decode failure is returned as
// an error for the caller to log; it carries no verdict.
func (v *Verifier) Verify(ctx context.Context, token string) (float64, bool, error) {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return 0, false, fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("siteverify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("siteverify status: %s", resp.Status)
	}

	var result struct {
		Success bool    `json:"success"`
		Score   float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, false, fmt.Errorf("decode siteverify response: %w", err)
	}

	return result.Score, result.Success && result.Score >= passingScore, nil
}
