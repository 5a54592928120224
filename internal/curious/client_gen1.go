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

// Gen1Client calls the first-generation Curious API. A learner unknown to
// Curious 1 is answered with a 404, which this client normalizes into an
// empty success: "no learning records" is a legitimate state, not an error.
type Gen1Client struct {
	base *upstream.Client
}

// NewGen1Client builds the Curious 1 client.
func NewGen1Client(cfg config.UpstreamConfig, logger *slog.Logger) *Gen1Client {
	return &Gen1Client{base: upstream.NewClient("curious-1-api", cfg, logger)}
}

// Courses returns the learner's course enrolments mapped into the unified
// shape and tagged SourceCurious1.
func (c *Gen1Client) Courses(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]CourseRecord, error) {
	var page gen1Page
	err := c.base.Get(ctx, token, "/learnerEducation/"+prisonerNumber.String(), &page)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []CourseRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("curious 1 courses: %w", err)
	}

	records := make([]CourseRecord, 0, len(page.Content))
	for _, dto := range page.Content {
		records = append(records, mapGen1Course(dto))
	}
	return records, nil
}

// Assessments returns the learner's functional-skills assessments mapped into
// the unified shape and tagged SourceCurious1.
func (c *Gen1Client) Assessments(ctx context.Context, token string, prisonerNumber domain.PrisonerNumber) ([]AssessmentRecord, error) {
	var dtos []gen1Assessment
	err := c.base.Get(ctx, token, "/latestLearnerAssessments/"+prisonerNumber.String(), &dtos)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []AssessmentRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("curious 1 assessments: %w", err)
	}

	records := make([]AssessmentRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, mapGen1Assessment(dto))
	}
	return records, nil
}
