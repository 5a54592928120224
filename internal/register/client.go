package register

import (
	"context"
	"fmt"
	"log/slog"

	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/upstream"
)

// Client fetches the full prison register from the register API.
type Client struct {
	base *upstream.Client
}

// NewClient builds the register API client.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{base: upstream.NewClient("prison-register-api", cfg, logger)}
}

// GetPrisons returns every establishment the register knows about, active or
// not. Filtering for active happens at the cache boundary.
func (c *Client) GetPrisons(ctx context.Context, token string) ([]Prison, error) {
	var out prisonsResponse
	if err := c.base.Get(ctx, token, "/prisons", &out); err != nil {
		return nil, fmt.Errorf("fetch prison register: %w", err)
	}
	return out, nil
}
