package casenotes

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

// UsageCount is the number of case notes of one type recorded against a
// prisoner.
type UsageCount struct {
	Type    string `json:"caseNoteType"`
	SubType string `json:"caseNoteSubType"`
	Count   int    `json:"numCaseNotes"`
}

// Client calls the case notes API.
type Client struct {
	base *upstream.Client
}

// NewClient builds the case notes API client.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{base: upstream.NewClient("casenotes-api", cfg, logger)}
}

// UsageCounts returns per-type case note counts. A prisoner with no case
// notes is an empty success.
func (c *Client) UsageCounts(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]UsageCount, error) {
	var out []UsageCount
	err := c.base.Get(ctx, token, "/case-notes/usage/"+prisonerNumber.String(), &out)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []UsageCount{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch case note usage: %w", err)
	}
	if out == nil {
		out = []UsageCount{}
	}
	return out, nil
}
