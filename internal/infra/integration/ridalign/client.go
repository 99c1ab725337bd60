package ridalign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the interbank RID alignment provider. Contracts paying by
// direct debit have their mandate data forwarded there; the provider answers
// with an alignment reference the back office tracks on the contract.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
	}
}

type MandateInput struct {
	ContractCode string `json:"contract_code"` // plico
	IBAN         string `json:"iban"`
	RequestedAt  string `json:"requested_at"` // YYYY-MM-DD
}

type MandateOutput struct {
	Reference string `json:"reference"`
	State     string `json:"state"` // requested, aligned, refused
}

func (c *Client) SubmitMandate(ctx context.Context, input MandateInput) (*MandateOutput, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal mandate: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/mandates", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rid alignment request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rid alignment provider returned %d", resp.StatusCode)
	}

	var out MandateOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode mandate response: %w", err)
	}
	return &out, nil
}
