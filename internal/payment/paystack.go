package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultPaystackBaseURL = "https://api.paystack.co"

// Paystack is the Paystack adapter. Amounts are converted to minor units
// (kobo) on the wire.
type Paystack struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewPaystack creates a Paystack gateway. baseURL is overridable for tests.
func NewPaystack(secretKey, baseURL string) *Paystack {
	if baseURL == "" {
		baseURL = defaultPaystackBaseURL
	}
	return &Paystack{
		secretKey: secretKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Name identifies the provider
func (p *Paystack) Name() string { return "paystack" }

// Initialize starts a transaction
func (p *Paystack) Initialize(ctx context.Context, email string, amount float64, currency string) (*InitResult, error) {
	reference := uuid.NewString()
	payload := map[string]interface{}{
		"email":     email,
		"amount":    int64(amount * 100),
		"currency":  currency,
		"reference": reference,
	}

	raw, err := p.post(ctx, "/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}

	var reply struct {
		Status bool `json:"status"`
		Data   struct {
			AuthorizationURL string `json:"authorization_url"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	if !reply.Status {
		return nil, fmt.Errorf("paystack rejected initialize for %s", email)
	}
	if reply.Data.Reference != "" {
		reference = reply.Data.Reference
	}

	return &InitResult{
		Reference:        reference,
		AuthorizationURL: reply.Data.AuthorizationURL,
		Raw:              raw,
	}, nil
}

// Verify fetches the final status of a transaction
func (p *Paystack) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	raw, err := p.get(ctx, "/transaction/verify/"+reference)
	if err != nil {
		return nil, err
	}

	var reply struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
			Amount int64  `json:"amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	return &VerifyResult{
		Reference: reference,
		Succeeded: reply.Status && reply.Data.Status == "success",
		Amount:    float64(reply.Data.Amount) / 100,
		Raw:       raw,
	}, nil
}

func (p *Paystack) post(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return p.do(req)
}

func (p *Paystack) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return p.do(req)
}

func (p *Paystack) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read paystack response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("paystack returned status %d", resp.StatusCode)
	}
	return raw, nil
}
