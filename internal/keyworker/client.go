package keyworker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/upstream"
	"prisonerprofile/pkg/domain"
	"prisonerprofile/pkg/platform/sentinel"
)

// KeyWorker is the member of staff currently allocated to a prisoner.
type KeyWorker struct {
	StaffID   int64  `json:"staffId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Client calls the key-worker allocation API.
type Client struct {
	base *upstream.Client
}

// NewClient builds the key-worker API client.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{base: upstream.NewClient("keyworker-api", cfg, logger)}
}

// CurrentAllocation returns the prisoner's key worker, or nil when none is
// allocated. No allocation is a legitimate state, not an error.
func (c *Client) CurrentAllocation(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) (*KeyWorker, error) {
	var out KeyWorker
	err := c.base.Get(ctx, token, "/key-worker/offender/"+prisonerNumber.String(), &out)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch key worker: %w", err)
	}
	return &out, nil
}
