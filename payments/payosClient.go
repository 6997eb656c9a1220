package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// PayOS caps payment descriptions at 25 characters.
const maxDescriptionLength = 25

const defaultBaseURL = "https://api-merchant.payos.vn"

// Config carries the PayOS credentials and endpoints. It is built once at
// startup and injected; the client never reads environment state itself.
type Config struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	BaseURL     string
	ReturnURL   string
	CancelURL   string
	Timeout     time.Duration
}

// GatewayError reports a failed gateway call, carrying the gateway's own
// error description when one was returned.
type GatewayError struct {
	StatusCode int
	Code       string
	Desc       string
}

func (e *GatewayError) Error() string {
	if e.Desc != "" {
		if e.Code != "" {
			return fmt.Sprintf("payment gateway error (code %s): %s", e.Code, e.Desc)
		}
		return "payment gateway error: " + e.Desc
	}
	return fmt.Sprintf("payment gateway request failed with status %d", e.StatusCode)
}

type Client struct {
	cfg  Config
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("x-client-id", cfg.ClientID).
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{cfg: cfg, http: httpClient}
}

// CreatePaymentLink registers a payable amount with the gateway under the
// given order code and returns the hosted checkout URL plus the gateway's
// transaction identifier. Amount is in minor currency units.
func (c *Client) CreatePaymentLink(ctx context.Context, orderCode string, amount int64, description string) (string, string, error) {
	numericCode := NumericOrderCode(orderCode)
	description = truncateDescription(description)

	body := map[string]any{
		"orderCode":   numericCode,
		"amount":      amount,
		"description": description,
		"returnUrl":   c.cfg.ReturnURL,
		"cancelUrl":   c.cfg.CancelURL,
		"signature":   c.sign(numericCode, amount, description),
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/v2/payment-requests")
	if err != nil {
		return "", "", &GatewayError{Desc: err.Error()}
	}

	data, err := decodeEnvelope(resp.StatusCode(), resp.Body())
	if err != nil {
		return "", "", err
	}

	paymentURL, ok := probeString(data, "checkoutUrl", "CheckoutUrl")
	if !ok {
		return "", "", &GatewayError{StatusCode: resp.StatusCode(), Desc: "checkout URL missing from gateway response"}
	}
	transactionID, _ := probeString(data, "paymentLinkId", "PaymentLinkId", "transactionId", "TransactionId", "id")

	return paymentURL, transactionID, nil
}

// VerifyPayment fetches the live status of a previously created payment and
// returns it normalized to a plain string. An empty string means the gateway
// answered but exposed no recognizable status field.
func (c *Client) VerifyPayment(ctx context.Context, orderCode string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/v2/payment-requests/" + strconv.FormatInt(NumericOrderCode(orderCode), 10))
	if err != nil {
		return "", &GatewayError{Desc: err.Error()}
	}

	data, err := decodeEnvelope(resp.StatusCode(), resp.Body())
	if err != nil {
		return "", err
	}

	status, _ := probeString(data, "status", "Status", "state", "State")
	return status, nil
}

// sign produces the HMAC-SHA256 hex digest PayOS requires over the canonical
// alphabetically-ordered field string.
func (c *Client) sign(orderCode, amount int64, description string) string {
	payload := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		amount, c.cfg.CancelURL, description, orderCode, c.cfg.ReturnURL)

	mac := hmac.New(sha256.New, []byte(c.cfg.ChecksumKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// NumericOrderCode maps an order code onto the positive integer the gateway
// requires. Numeric codes pass through; anything else gets a stable FNV-1a
// hash so retries for the same code always address the same gateway record.
func NumericOrderCode(orderCode string) int64 {
	if n, err := strconv.ParseInt(orderCode, 10, 64); err == nil && n > 0 {
		return n
	}
	h := fnv.New32a()
	h.Write([]byte(orderCode))
	return int64(h.Sum32())
}

func truncateDescription(description string) string {
	if description == "" {
		return "Payment"
	}
	if len(description) > maxDescriptionLength {
		return description[:maxDescriptionLength]
	}
	return description
}

// decodeEnvelope unwraps the gateway's {code, desc, data} envelope. A non-2xx
// HTTP status or a non-"00" gateway code is a GatewayError carrying the
// gateway's own description.
func decodeEnvelope(status int, body []byte) (map[string]any, error) {
	var envelope struct {
		Code string          `json:"code"`
		Desc string          `json:"desc"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &GatewayError{StatusCode: status, Desc: "unparseable gateway response"}
	}

	if status < 200 || status >= 300 || (envelope.Code != "" && envelope.Code != "00") {
		return nil, &GatewayError{StatusCode: status, Code: envelope.Code, Desc: envelope.Desc}
	}

	var data map[string]any
	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, &GatewayError{StatusCode: status, Desc: "unparseable gateway response data"}
		}
	}
	return data, nil
}

// probeString returns the first present non-empty string among the given
// keys. The gateway's response schema is loosely structured; the same logical
// field shows up under different names and casings.
func probeString(data map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := data[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}
