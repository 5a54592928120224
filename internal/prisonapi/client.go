package prisonapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"prisonerprofile/internal/alerts"
	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/upstream"
	"prisonerprofile/pkg/domain"
	"prisonerprofile/pkg/platform/sentinel"
)

// Client calls the Prison API, the system of record for prisoner identity
// and the legacy source for alerts and assessments.
type Client struct {
	base *upstream.Client
}

// NewClient builds the Prison API client.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{base: upstream.NewClient("prison-api", cfg, logger)}
}

// GetPrisoner fetches the essential prisoner record. Unlike the degradable
// sections, not-found propagates: a profile for an unknown prisoner does not
// exist.
func (c *Client) GetPrisoner(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) (Prisoner, error) {
	var out Prisoner
	if err := c.base.Get(ctx, token, "/api/offenders/"+prisonerNumber.String(), &out); err != nil {
		return Prisoner{}, fmt.Errorf("fetch prisoner: %w", err)
	}
	return out, nil
}

// GetAlerts returns the prisoner's alerts from the legacy flat shape,
// normalized into the unified alerts view. An unknown prisoner is an empty
// success.
func (c *Client) GetAlerts(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]alerts.Alert, error) {
	var dtos []legacyAlert
	err := c.base.Get(ctx, token, "/api/offenders/"+prisonerNumber.String()+"/alerts/v2", &dtos)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []alerts.Alert{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch legacy alerts: %w", err)
	}

	out := make([]alerts.Alert, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, mapLegacyAlert(dto))
	}
	return out, nil
}

// GetCSRAAssessments returns the prisoner's CSRA history. An unknown or
// never-assessed prisoner is an empty success.
func (c *Client) GetCSRAAssessments(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]CSRAAssessment, error) {
	var out []CSRAAssessment
	err := c.base.Get(ctx, token, "/api/offenders/"+prisonerNumber.String()+"/csra-assessments", &out)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []CSRAAssessment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch csra assessments: %w", err)
	}
	if out == nil {
		out = []CSRAAssessment{}
	}
	return out, nil
}

func mapLegacyAlert(dto legacyAlert) alerts.Alert {
	return alerts.Alert{
		Code:            dto.AlertCode,
		CodeDescription: dto.AlertCodeDesc,
		Type:            dto.AlertType,
		TypeDescription: dto.AlertTypeDesc,
		Comment:         dto.Comment,
		ActiveFrom:      parseDate(dto.DateCreated),
		ActiveTo:        parseDate(dto.DateExpires),
		Active:          dto.Active && !dto.Expired,
		Source:          alerts.SourcePrisonAPI,
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
