package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_shop/internal/order/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// CartClient talks to the cart service over plain HTTP/JSON. One call,
// one request: no retries and no circuit breaking.
type CartClient struct {
	baseURL string
	http    *http.Client
}

func NewCartClient(baseURL string, timeout time.Duration) *CartClient {
	return &CartClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *CartClient) GetCart(ctx context.Context, userID string) (*domain.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/cart/%s", c.baseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build cart request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call cart service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrCartNotFound
	default:
		return nil, fmt.Errorf("cart service returned %d", resp.StatusCode)
	}

	var snapshot domain.CartSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}
	return &snapshot, nil
}

// DeleteCart treats 404 as success: the cart service's delete is
// idempotent and an already-absent cart is the desired end state.
func (c *CartClient) DeleteCart(ctx context.Context, userID string) error {
	endpoint := fmt.Sprintf("%s/cart/%s", c.baseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build cart delete request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call cart service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent &&
		resp.StatusCode != http.StatusOK &&
		resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("cart service returned %d", resp.StatusCode)
	}
	return nil
}
