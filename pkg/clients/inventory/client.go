package inventory

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/stockpilot/stockpilot/internal/config"
)

// Session is the persisted session state the client reads before every
// request and clears on authentication failure.
type Session interface {
	Token() string
	SetSession(token, role string) error
	Clear() error
}

// Client is the single configured sender for the inventory API. It owns the
// base URL, the JSON content type, the bearer-token request hook and the
// 401 response hook shared by every domain API module.
type Client struct {
	http    *resty.Client
	session Session
	logger  *zap.Logger

	mu          sync.Mutex
	invalidated []func()

	Auth      *AuthAPI
	Products  *ProductAPI
	Suppliers *SupplierAPI
	Stock     *StockAPI
}

// New builds an inventory API client using the provided configuration.
func New(cfg config.APIConfig, sess Session, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	c := &Client{
		http:    restyClient,
		session: sess,
		logger:  logger,
	}

	// Attach the bearer token when one is present. The session read is
	// synchronous and never fails.
	restyClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := sess.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	// Any 401 anywhere invalidates the whole session, background requests
	// included. The original error still propagates to the caller.
	restyClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			if err := sess.Clear(); err != nil {
				logger.Error("failed to clear session after auth failure", zap.Error(err))
			}
			c.notifySessionInvalidated()
		}
		return nil
	})

	c.Auth = &AuthAPI{c: c, session: sess}
	c.Products = &ProductAPI{c: c}
	c.Suppliers = &SupplierAPI{c: c}
	c.Stock = &StockAPI{c: c}

	return c
}

// OnSessionInvalidated registers fn to run whenever a response clears the
// session. The presentation layer subscribes here to route back to login
// instead of the data layer reaching into navigation state.
func (c *Client) OnSessionInvalidated(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, fn)
}

func (c *Client) notifySessionInvalidated() {
	c.mu.Lock()
	subscribers := make([]func(), len(c.invalidated))
	copy(subscribers, c.invalidated)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetError(new(errorBody))
}
