package alerts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/upstream"
	"prisonerprofile/pkg/domain"
	"prisonerprofile/pkg/platform/sentinel"
)

// Client calls the Alerts API, the newer of the two alert sources.
type Client struct {
	base *upstream.Client
}

// NewClient builds the Alerts API client.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{base: upstream.NewClient("alerts-api", cfg, logger)}
}

// Active returns the prisoner's active alerts in the unified shape. An
// unknown prisoner is an empty success.
func (c *Client) Active(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]Alert, error) {
	var page apiPage
	err := c.base.Get(ctx, token, "/prisoners/"+prisonerNumber.String()+"/alerts?isActive=true", &page)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []Alert{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch alerts: %w", err)
	}

	out := make([]Alert, 0, len(page.Content))
	for _, dto := range page.Content {
		out = append(out, mapAPIAlert(dto))
	}
	return out, nil
}

func mapAPIAlert(dto apiAlert) Alert {
	return Alert{
		Code:            dto.AlertCode.Code,
		CodeDescription: dto.AlertCode.Description,
		Type:            dto.AlertCode.AlertTypeCode,
		TypeDescription: dto.AlertCode.AlertTypeDesc,
		Comment:         dto.Description,
		ActiveFrom:      parseDate(dto.ActiveFrom),
		ActiveTo:        parseDate(dto.ActiveTo),
		Active:          dto.Active,
		Source:          SourceAlertsAPI,
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
