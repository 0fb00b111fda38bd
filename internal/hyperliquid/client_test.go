package hyperliquid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
)

const testAddress = "0x1234567890123456789012345678901234567890"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zerolog.Nop())
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateAddress(testAddress))
	assert.NoError(t, ValidateAddress("1234567890123456789012345678901234567890"))
	assert.NoError(t, ValidateAddress("0xABCDEFabcdef12345678901234567890abcdef12"))

	assert.Error(t, ValidateAddress(""))
	assert.Error(t, ValidateAddress("0x123"))
	assert.Error(t, ValidateAddress("0xZZ34567890123456789012345678901234567890"))
}

func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, testAddress, NormalizeAddress("0x1234567890123456789012345678901234567890"))
	assert.Equal(t, "0xabcdef1234567890123456789012345678901234",
		NormalizeAddress("ABCDEF1234567890123456789012345678901234"))
}

func TestUserFills(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/info", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "userFills", req["type"])
		require.Equal(t, testAddress, req["user"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"coin":"BTC","px":"64000.5","sz":"0.25","side":"B","time":1755684600000,
			 "closedPnl":"120.5","fee":"1.2","oid":98765,"hash":"0xabc"},
			{"coin":"ETH","px":"2600","sz":"1.5","side":"A","time":1755684700000,
			 "closedPnl":"-14.2","fee":"0.9","oid":0,"hash":"0xdef"}
		]`))
	})

	fills, err := client.UserFills(context.Background(), testAddress)
	require.NoError(t, err)
	require.Len(t, fills, 2)

	long := fills[0].Trade()
	assert.Equal(t, "98765", long.ID)
	assert.Equal(t, "BTC", long.Coin)
	assert.Equal(t, models.SideLong, long.Side)
	assert.Equal(t, 0.25, long.Size)
	assert.Equal(t, 64000.5, long.Price)
	assert.Equal(t, 120.5, long.PnL)
	assert.Equal(t, models.TradeTypeAPI, long.Type)
	assert.Equal(t, "2025-08-20 10:10:00", long.Time)

	short := fills[1].Trade()
	assert.Equal(t, "0xdef", short.ID, "oid 0 falls back to hash")
	assert.Equal(t, models.SideShort, short.Side)
}

func TestUserState(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "clearinghouseState", req["type"])

		w.Write([]byte(`{
			"marginSummary": {"accountValue": "10500.75"},
			"assetPositions": [
				{"position": {"coin": "BTC", "szi": "-0.4", "unrealizedPnl": "55.1"}}
			]
		}`))
	})

	state, err := client.UserState(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, 10500.75, state.AccountValue())
	require.Len(t, state.AssetPositions, 1)

	pos := state.AssetPositions[0].Position
	assert.Equal(t, models.SideShort, pos.Side())
	assert.Equal(t, -0.4, pos.Size())
	assert.Equal(t, 55.1, pos.PnL())
}

func TestInvalidAddressRejectedBeforeRequest(t *testing.T) {
	t.Parallel()

	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.UserFills(context.Background(), "0xnope")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidAddress)
	assert.False(t, called)
}

func TestRateLimitedDistinctFromTimeout(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.UserFills(context.Background(), testAddress)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRateLimited)
	assert.NotErrorIs(t, err, errors.ErrTimeout)

	var perr *errors.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ProviderRateLimited, perr.Kind)
}

func TestTimeoutClassification(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.UserFills(ctx, testAddress)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTimeout)
}

func TestUnknownFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.UserFills(context.Background(), testAddress)
	require.Error(t, err)

	var perr *errors.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ProviderUnknown, perr.Kind)
	assert.NotErrorIs(t, err, errors.ErrRateLimited)
}
