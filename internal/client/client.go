package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"trading-journal/internal/commands"
	"trading-journal/internal/config"
	"trading-journal/internal/models"
	"trading-journal/internal/stats"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxRetries = 3

// Client invokes journal commands on a running command server.
type Client struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewClient creates a new command client.
func NewClient(cfg *config.Client, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	// rate.Limit is requests per second.
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &Client{
		client:  client,
		logger:  logger.Named("client"),
		limiter: limiter,
	}
}

// errorResponse is the body the server sends with a failed command.
type errorResponse struct {
	Error string `json:"error"`
}

// Invoke calls command with args (marshalled to the JSON argument object, nil for none)
// and decodes the JSON result into result when it is non-nil.
func (c *Client) Invoke(ctx context.Context, command string, args any, result any) error {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetError(&errorResponse{})
	if args != nil {
		req.SetBody(args)
	}
	if result != nil {
		req.SetResult(result)
	}

	if _, err := c.doRequest(ctx, http.MethodPost, "/invoke/"+command, req); err != nil {
		return fmt.Errorf("command %s failed: %w", command, err)
	}
	return nil
}

// InvokeRaw calls command with a raw JSON argument object and returns the raw JSON result.
func (c *Client) InvokeRaw(ctx context.Context, command string, args json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	var body any
	if len(args) > 0 {
		body = []byte(args)
	}
	if err := c.Invoke(ctx, command, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// doRequest handles the actual request execution with rate limiting and retry logic.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error

	for i := 0; i < maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil
		}

		shouldRetry := false
		var retryAfter time.Duration

		if err == nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				if seconds, convErr := strconv.Atoi(resp.Header().Get("Retry-After")); convErr == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
		} else {
			// Network or other client-side errors
			shouldRetry = true
		}

		if !shouldRetry {
			if e, ok := resp.Error().(*errorResponse); ok && e.Error != "" {
				return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), e.Error)
			}
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
		}

		if i == maxRetries-1 {
			break
		}

		if retryAfter == 0 {
			// Exponential backoff: 1s, 2s
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err == nil {
		err = fmt.Errorf("status %s", resp.Status())
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
}

// SaveProfile invokes save_profile and returns the serialized profile.
func (c *Client) SaveProfile(ctx context.Context, p models.Profile) (string, error) {
	var out string
	err := c.Invoke(ctx, commands.SaveProfile, map[string]any{"profile": p}, &out)
	return out, err
}

// GetProfile invokes get_profile. It returns nil when no profile exists.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var out *models.Profile
	err := c.Invoke(ctx, commands.GetProfile, nil, &out)
	return out, err
}

// SaveAccount invokes save_account and returns the serialized account.
func (c *Client) SaveAccount(ctx context.Context, a models.Account) (string, error) {
	var out string
	err := c.Invoke(ctx, commands.SaveAccount, map[string]any{"account": a}, &out)
	return out, err
}

// GetAccounts invokes get_accounts.
func (c *Client) GetAccounts(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	err := c.Invoke(ctx, commands.GetAccounts, nil, &out)
	return out, err
}

// SaveTrade invokes save_trade and returns the serialized trade.
func (c *Client) SaveTrade(ctx context.Context, t models.Trade) (string, error) {
	var out string
	err := c.Invoke(ctx, commands.SaveTrade, map[string]any{"trade": t}, &out)
	return out, err
}

// GetTrades invokes get_trades for one account.
func (c *Client) GetTrades(ctx context.Context, accountID int64) ([]models.Trade, error) {
	var out []models.Trade
	err := c.Invoke(ctx, commands.GetTrades, map[string]any{"accountId": accountID}, &out)
	return out, err
}

// GetStatistics invokes get_statistics for one account.
func (c *Client) GetStatistics(ctx context.Context, accountID int64) (stats.Summary, error) {
	var out stats.Summary
	err := c.Invoke(ctx, commands.GetStatistics, map[string]any{"accountId": accountID}, &out)
	return out, err
}
