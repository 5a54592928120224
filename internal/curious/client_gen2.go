package curious

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

// Gen2Client calls the second-generation Curious API. Unlike Curious 1 it
// answers an unknown learner with 200 and an empty list, so only the envelope
// differs here; both clients hand the orchestrator the same "no data is a
// success" outcome.
type Gen2Client struct {
	base *upstream.Client
}

// NewGen2Client builds the Curious 2 client.
func NewGen2Client(cfg config.UpstreamConfig, logger *slog.Logger) *Gen2Client {
	return &Gen2Client{base: upstream.NewClient("curious-2-api", cfg, logger)}
}

// Courses returns the learner's course enrolments mapped into the unified
// shape and tagged SourceCurious2.
func (c *Gen2Client) Courses(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]CourseRecord, error) {
	var out gen2Enrolments
	err := c.base.Get(ctx, token, "/learners/"+prisonerNumber.String()+"/enrolments", &out)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []CourseRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("curious 2 courses: %w", err)
	}

	records := make([]CourseRecord, 0, len(out.Enrolments))
	for _, dto := range out.Enrolments {
		records = append(records, mapGen2Course(dto))
	}
	return records, nil
}

// Assessments returns the learner's functional-skills assessments mapped into
// the unified shape and tagged SourceCurious2.
func (c *Gen2Client) Assessments(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]AssessmentRecord, error) {
	var out gen2Assessments
	err := c.base.Get(ctx, token, "/learners/"+prisonerNumber.String()+"/assessments", &out)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []AssessmentRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("curious 2 assessments: %w", err)
	}

	records := make([]AssessmentRecord, 0, len(out.Assessments))
	for _, dto := range out.Assessments {
		records = append(records, mapGen2Assessment(dto))
	}
	return records, nil
}
