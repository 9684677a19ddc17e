package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/gateway"
)

const (
	defaultBaseURL      = "https://api.razorpay.com"
	orderRequestTimeout = 15 * time.Second
)

// RazorpayClient creates orders against the Razorpay Orders API using the
// key id / key secret pair as basic auth
type RazorpayClient struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewRazorpayClient creates a new Razorpay order client. With empty
// credentials the client reports itself disabled and rejects order creation.
func NewRazorpayClient(keyID, keySecret string, logger coreport.Logger) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: orderRequestTimeout,
		},
		logger: logger,
	}
}

// WithBaseURL overrides the API endpoint, used by tests
func (c *RazorpayClient) WithBaseURL(baseURL string) *RazorpayClient {
	c.baseURL = baseURL
	return c
}

// Enabled reports whether the gateway is configured
func (c *RazorpayClient) Enabled() bool {
	return c.keyID != "" && c.keySecret != ""
}

// KeyID returns the public key id for client-side checkout
func (c *RazorpayClient) KeyID() string {
	return c.keyID
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
	Status   string            `json:"status"`
}

// CreateOrder creates a gateway order for the given amount in paise
func (c *RazorpayClient) CreateOrder(ctx context.Context, amountPaise int64, receipt string, notes map[string]string) (*gateway.Order, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%w: gateway credentials not configured", errs.ErrGatewayUnavailable)
	}

	body, err := json.Marshal(orderRequest{
		Amount:   amountPaise,
		Currency: "INR",
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Gateway order request failed", map[string]any{
			"amount_paise": amountPaise,
			"receipt":      receipt,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Gateway rejected order creation", map[string]any{
			"status":       resp.StatusCode,
			"amount_paise": amountPaise,
			"receipt":      receipt,
			"body":         string(payload),
		})
		return nil, fmt.Errorf("%w: gateway returned status %d", errs.ErrGatewayUnavailable, resp.StatusCode)
	}

	var parsed orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("%w: gateway returned an empty order id", errs.ErrGatewayUnavailable)
	}

	c.logger.Info("Gateway order created", map[string]any{
		"order_id":     parsed.ID,
		"amount_paise": parsed.Amount,
		"receipt":      parsed.Receipt,
	})

	return &gateway.Order{
		ID:          parsed.ID,
		AmountPaise: parsed.Amount,
		Currency:    parsed.Currency,
		Receipt:     parsed.Receipt,
		Notes:       parsed.Notes,
	}, nil
}
