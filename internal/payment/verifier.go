package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/config"
	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
)

// Verifier confirms payments against a PortOne-style gateway: issue an
// access token, then fetch the payment record by its uid. Every call is
// bounded by the configured timeout; a timeout is a verification failure,
// never a "maybe paid".
type Verifier struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	apiSecret string
}

func NewVerifier(cfg config.Payment) *Verifier {
	return &Verifier{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
	}
}

type tokenResponse struct {
	Response struct {
		AccessToken string `json:"access_token"`
	} `json:"response"`
}

type paymentResponse struct {
	Response struct {
		Amount int    `json:"amount"`
		Status string `json:"status"`
		PaidAt int64  `json:"paid_at"`
	} `json:"response"`
}

func (v *Verifier) Verify(ctx context.Context, paymentUID string) (entities.PaymentVerification, error) {
	token, err := v.accessToken(ctx)
	if err != nil {
		return entities.PaymentVerification{}, fmt.Errorf("failed to issue gateway token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/payments/"+paymentUID, nil)
	if err != nil {
		return entities.PaymentVerification{}, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := v.client.Do(req)
	if err != nil {
		return entities.PaymentVerification{}, fmt.Errorf("failed to fetch payment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.PaymentVerification{}, fmt.Errorf("gateway returned status %d for payment %s", resp.StatusCode, paymentUID)
	}

	var body paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.PaymentVerification{}, fmt.Errorf("failed to decode payment: %w", err)
	}

	return entities.PaymentVerification{
		Amount: body.Response.Amount,
		Status: body.Response.Status,
		PaidAt: time.Unix(body.Response.PaidAt, 0).UTC(),
	}, nil
}

func (v *Verifier) accessToken(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"imp_key":    v.apiKey,
		"imp_secret": v.apiSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/users/getToken", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned status %d for token", resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Response.AccessToken == "" {
		return "", fmt.Errorf("gateway returned empty token")
	}
	return body.Response.AccessToken, nil
}
