package hyperliquid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hyperliquid-journal/internal/errors"
)

// MainnetAPIURL is the default info API endpoint.
const MainnetAPIURL = "https://api.hyperliquid.xyz"

// Client talks to the Hyperliquid info API. All calls are read-only
// POST requests against the /info endpoint; the client never retries
// on its own.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for baseURL. An empty baseURL selects
// mainnet; a zero timeout defaults to 15 seconds.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = MainnetAPIURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// ValidateAddress checks the 40-hex-digit wallet address form, with
// or without the 0x prefix.
func ValidateAddress(address string) error {
	addr := strings.TrimPrefix(address, "0x")
	if len(addr) != 40 {
		return errors.NewValidationError("wallet_address", address, "must be 40 hex characters")
	}
	for _, c := range addr {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return errors.NewValidationError("wallet_address", address, "must be 40 hex characters")
		}
	}
	return nil
}

// NormalizeAddress lowercases the address and ensures the 0x prefix.
func NormalizeAddress(address string) string {
	addr := strings.ToLower(strings.TrimSpace(address))
	if !strings.HasPrefix(addr, "0x") {
		addr = "0x" + addr
	}
	return addr
}

// UserFills fetches the wallet's recent fills, newest first as the
// API reports them.
func (c *Client) UserFills(ctx context.Context, address string) ([]Fill, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, errors.NewProviderError(errors.ProviderInvalidAddress, address, err)
	}
	var fills []Fill
	if err := c.info(ctx, infoRequest{Type: "userFills", User: NormalizeAddress(address)}, &fills); err != nil {
		return nil, err
	}
	c.log.Debug().Str("wallet", NormalizeAddress(address)).Int("fills", len(fills)).Msg("Fetched user fills")
	return fills, nil
}

// UserState fetches the wallet's account state: margin summary and
// open positions.
func (c *Client) UserState(ctx context.Context, address string) (*UserState, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, errors.NewProviderError(errors.ProviderInvalidAddress, address, err)
	}
	state := &UserState{}
	if err := c.info(ctx, infoRequest{Type: "clearinghouseState", User: NormalizeAddress(address)}, state); err != nil {
		return nil, err
	}
	return state, nil
}

type infoRequest struct {
	Type string `json:"type"`
	User string `json:"user"`
}

func (c *Client) info(ctx context.Context, payload infoRequest, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.NewProviderError(errors.ProviderUnknown, "encoding request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/info", bytes.NewReader(body))
	if err != nil {
		return errors.NewProviderError(errors.ProviderUnknown, "building request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("type", payload.Type).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Info API call")

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewProviderError(errors.ProviderUnknown, "decoding response", err)
	}
	return nil
}

func classifyTransportError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "Client.Timeout") ||
		strings.Contains(strings.ToLower(msg), "timeout") {
		return errors.NewProviderError(errors.ProviderTimeout, "request timed out", err)
	}
	return errors.NewProviderError(errors.ProviderUnknown, "request failed", err)
}

func classifyStatus(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return errors.NewProviderError(errors.ProviderRateLimited, msg, nil)
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout:
		return errors.NewProviderError(errors.ProviderTimeout, msg, nil)
	case resp.StatusCode >= 400 && resp.StatusCode < 500 &&
		strings.Contains(strings.ToLower(string(snippet)), "invalid address"):
		return errors.NewProviderError(errors.ProviderInvalidAddress, msg, nil)
	default:
		return errors.NewProviderError(errors.ProviderUnknown, msg, nil)
	}
}
