package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"trading-journal/internal/commands"
	"trading-journal/internal/config"
	"trading-journal/internal/models"
	"trading-journal/internal/server"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// setupTestClient creates a Client pointed at handler.
func setupTestClient(handler http.Handler) (*Client, *httptest.Server) {
	ts := httptest.NewServer(handler)

	c := &Client{
		client:  resty.New().SetBaseURL(ts.URL),
		logger:  zap.NewNop(),
		limiter: rate.NewLimiter(rate.Inf, 1), // Allow all requests in tests
	}
	return c, ts
}

// stubServer serves the real command router in stub mode.
func stubServer() http.Handler {
	router := commands.NewRouter(zap.NewNop())
	commands.Register(router, commands.Stub{})
	return server.NewServer(router, zap.NewNop(), "127.0.0.1", 0, "test", config.ModeStub).Handler()
}

func TestClient_AgainstStubServer(t *testing.T) {
	ctx := context.Background()
	c, ts := setupTestClient(stubServer())
	defer ts.Close()

	t.Run("SaveAccount", func(t *testing.T) {
		acc := models.Account{Name: "Demo", Type: "forex", InitialBalance: 1000, CurrentBalance: 1000, Broker: "X", Leverage: "1:100"}

		out, err := c.SaveAccount(ctx, acc)

		require.NoError(t, err)
		expected, _ := json.Marshal(acc)
		assert.Equal(t, string(expected), out)
	})

	t.Run("SaveProfile", func(t *testing.T) {
		p := models.Profile{Name: "Ana", Experience: "pro", Currency: "USD", Timezone: "UTC"}

		out, err := c.SaveProfile(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, `{"name":"Ana","email":null,"experience":"pro","currency":"USD","timezone":"UTC"}`, out)
	})

	t.Run("GetProfile", func(t *testing.T) {
		p, err := c.GetProfile(ctx)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("GetAccountsAndTrades", func(t *testing.T) {
		accounts, err := c.GetAccounts(ctx)
		require.NoError(t, err)
		assert.Empty(t, accounts)

		trades, err := c.GetTrades(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, trades)

		summary, err := c.GetStatistics(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalTrades)
	})

	t.Run("InvokeRaw", func(t *testing.T) {
		out, err := c.InvokeRaw(ctx, commands.GetTrades, json.RawMessage(`{"accountId":2}`))
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(out))
	})

	t.Run("CommandError", func(t *testing.T) {
		_, err := c.InvokeRaw(ctx, commands.GetTrades, json.RawMessage(`{}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "command get_trades failed")
		assert.Contains(t, err.Error(), "missing required key accountId")
	})
}

func TestClient_RetriesServerErrors(t *testing.T) {
	// Arrange: fail once with 503, then succeed
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoke/get_accounts", r.URL.Path)
		_, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"busy"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Demo","type":"forex","initialBalance":1,"currentBalance":1,"broker":"X","leverage":"1:1","instruments":null}]`))
	})
	c, ts := setupTestClient(handler)
	defer ts.Close()

	// Act
	accounts, err := c.GetAccounts(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, int64(1), *accounts[0].ID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_ContextCanceledDuringBackoff(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c, ts := setupTestClient(handler)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c.client.OnAfterResponse(func(*resty.Client, *resty.Response) error {
		cancel()
		return nil
	})

	_, err := c.GetAccounts(ctx)

	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	cfg := &config.Client{BaseURL: "http://127.0.0.1:1420", RateLimit: 20, RateLimitBurst: 5, Timeout: 10}

	c := NewClient(cfg, zap.NewNop())

	assert.NotNil(t, c)
	assert.Equal(t, cfg.BaseURL, c.client.BaseURL)
	assert.Equal(t, 5, c.limiter.Burst())
}
