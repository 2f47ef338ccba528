// Package api is the typed client for the Cryptotrade commerce backend. Every
// operation validates the backend's JSON against the entity shapes in model.go
// and degrades to the embedded fixtures instead of failing: callers always get
// a well-typed result, and a fallback is observable only in the warn log.
package api

import (
	"context"
	"log/slog"
	"net/http"
)

const (
	healthPath   = "/health"
	productsPath = "/api/v1/products"
	ordersPath   = "/api/v1/orders"
)

// Options configures a Client. BaseURL must already have its trailing slash
// stripped (config.Load does this). HTTPClient is optional and mainly useful
// in tests.
type Options struct {
	BaseURL    string
	MockMode   bool
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches and validates backend resources. Safe for concurrent use;
// all fields are read-only after construction.
type Client struct {
	transport *transport
	mockMode  bool
	logger    *slog.Logger
}

func NewClient(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		transport: newTransport(opts.BaseURL, opts.HTTPClient),
		mockMode:  opts.MockMode,
		logger:    log,
	}
}

// GetHealth reports the backend's health, or the mock health fixture.
func (c *Client) GetHealth(ctx context.Context) HealthResponse {
	return fallback(c, ctx, "getHealth", func(ctx context.Context) (HealthResponse, error) {
		body, err := c.transport.get(ctx, healthPath, nil)
		if err != nil {
			return HealthResponse{}, err
		}
		return decodeHealth(body)
	}, MockHealth)
}

// GetProducts lists the catalog, or the fixture catalog.
func (c *Client) GetProducts(ctx context.Context) []Product {
	return fallback(c, ctx, "getProducts", func(ctx context.Context) ([]Product, error) {
		body, err := c.transport.get(ctx, productsPath, nil)
		if err != nil {
			return nil, err
		}
		return decodeProducts(body)
	}, MockProducts)
}

// GetProduct fetches a single product by id. Unlike the collection
// operations, its fallback can legitimately come up empty: when the fixtures
// contain no product with this id, the result is nil rather than an error.
func (c *Client) GetProduct(ctx context.Context, id string) *Product {
	return fallback(c, ctx, "getProduct", func(ctx context.Context) (*Product, error) {
		body, err := c.transport.get(ctx, productsPath+"/"+id, nil)
		if err != nil {
			return nil, err
		}
		p, err := decodeProduct(body)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}, MockProduct(id))
}

// GetOrders lists the order history, or the fixture orders.
func (c *Client) GetOrders(ctx context.Context) []Order {
	return fallback(c, ctx, "getOrders", func(ctx context.Context) ([]Order, error) {
		body, err := c.transport.get(ctx, ordersPath, nil)
		if err != nil {
			return nil, err
		}
		return decodeOrders(body)
	}, MockOrders)
}

// fallback makes an operation total. Mock mode short-circuits to the fixture
// without invoking fetch at all. Otherwise any fetch error — transport or
// validation — is demoted to a warn log and the fixture is returned. The
// fixture itself is trusted.
func fallback[T any](c *Client, ctx context.Context, op string, fetch func(context.Context) (T, error), fixture T) T {
	if c.mockMode {
		return fixture
	}
	v, err := fetch(ctx)
	if err != nil {
		c.logger.Warn("falling back to mock data due to API error",
			"operation", op,
			"error", err,
		)
		return fixture
	}
	return v
}
