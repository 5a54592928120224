package curious

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisonerprofile/internal/platform/config"
	"prisonerprofile/pkg/domain"
)

func testUpstream(t *testing.T, handler http.Handler) config.UpstreamConfig {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}
}

func TestGen1Client_Courses(t *testing.T) {
	ctx := context.Background()
	prisonerNumber := domain.PrisonerNumber("A1234BC")

	t.Run("maps the gen1 schema into the unified shape", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/learnerEducation/A1234BC", r.URL.Path)
			_, _ = w.Write([]byte(`{"content":[{
				"establishmentId":"MDI",
				"courseName":"Maths Level 1",
				"courseCode":"MTH1",
				"learningStartDate":"2024-01-08",
				"learningPlannedEndDate":"2024-04-08",
				"learningActualEndDate":"2024-03-28",
				"completionStatus":"The course has been completed",
				"outcome":"Achieved",
				"outcomeGrade":"Pass",
				"isAccredited":true
			}]}`))
		}))

		courses, err := NewGen1Client(cfg, slog.New(slog.DiscardHandler)).Courses(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		got := courses[0]
		assert.Equal(t, "MDI", got.PrisonID)
		assert.Equal(t, "Maths Level 1", got.CourseName)
		assert.Equal(t, StatusCompleted, got.Status)
		assert.Equal(t, SourceCurious1, got.Source)
		assert.Equal(t, date("2024-03-28"), got.CompletionDate)
		assert.True(t, got.IsAccredited)
		// Explicit outcome grade wins over the generic outcome field.
		assert.Equal(t, "Pass", got.Grade)
	})

	t.Run("falls back to the generic outcome field", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"content":[{
				"courseName":"Barbering",
				"completionStatus":"The learner has withdrawn",
				"outcome":"Partial achievement"
			}]}`))
		}))

		courses, err := NewGen1Client(cfg, slog.New(slog.DiscardHandler)).Courses(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "Partial achievement", courses[0].Grade)
		assert.Equal(t, StatusWithdrawn, courses[0].Status)
	})

	t.Run("404 is an empty success, not an error", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		courses, err := NewGen1Client(cfg, slog.New(slog.DiscardHandler)).Courses(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		assert.NotNil(t, courses)
		assert.Empty(t, courses)
	})

	t.Run("5xx propagates as an error", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := NewGen1Client(cfg, slog.New(slog.DiscardHandler)).Courses(ctx, "tok", prisonerNumber)

		assert.Error(t, err)
	})
}

func TestGen2Client_Courses(t *testing.T) {
	ctx := context.Background()
	prisonerNumber := domain.PrisonerNumber("A1234BC")

	t.Run("maps the gen2 schema into the unified shape", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/learners/A1234BC/enrolments", r.URL.Path)
			_, _ = w.Write([]byte(`{"enrolments":[{
				"prisonId":"LEI",
				"courseName":"Plastering",
				"courseCode":"PLA2",
				"courseStartDate":"2025-02-03",
				"coursePlannedEndDate":"2025-08-01",
				"completionStatus":"Learner is continuing the course",
				"grade":"",
				"isAccredited":false
			}]}`))
		}))

		courses, err := NewGen2Client(cfg, slog.New(slog.DiscardHandler)).Courses(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		got := courses[0]
		assert.Equal(t, "LEI", got.PrisonID)
		assert.Equal(t, StatusInProgress, got.Status)
		assert.Equal(t, SourceCurious2, got.Source)
		assert.True(t, got.CompletionDate.IsZero())
	})

	t.Run("empty enrolments list is an empty success", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"enrolments":[]}`))
		}))

		courses, err := NewGen2Client(cfg, slog.New(slog.DiscardHandler)).Courses(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		assert.Empty(t, courses)
	})
}

func TestAssessmentClients(t *testing.T) {
	ctx := context.Background()
	prisonerNumber := domain.PrisonerNumber("A1234BC")

	t.Run("gen1 assessments map qualification fields", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latestLearnerAssessments/A1234BC", r.URL.Path)
			_, _ = w.Write([]byte(`[{
				"establishmentId":"MDI",
				"qualificationType":"English",
				"qualificationGrade":"Level 1",
				"assessmentDate":"2023-05-01"
			}]`))
		}))

		got, err := NewGen1Client(cfg, slog.New(slog.DiscardHandler)).Assessments(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, AssessmentRecord{
			Type:           "English",
			Level:          "Level 1",
			AssessmentDate: date("2023-05-01"),
			PrisonID:       "MDI",
			Source:         SourceCurious1,
		}, got[0])
	})

	t.Run("gen2 assessments map type and level fields", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/learners/A1234BC/assessments", r.URL.Path)
			_, _ = w.Write([]byte(`{"assessments":[{
				"prisonId":"LEI",
				"assessmentType":"Maths",
				"level":"Entry Level 3",
				"assessmentDate":"2024-11-12"
			}]}`))
		}))

		got, err := NewGen2Client(cfg, slog.New(slog.DiscardHandler)).Assessments(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Maths", got[0].Type)
		assert.Equal(t, SourceCurious2, got[0].Source)
	})

	t.Run("gen1 404 is an empty success", func(t *testing.T) {
		cfg := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		got, err := NewGen1Client(cfg, slog.New(slog.DiscardHandler)).Assessments(ctx, "tok", prisonerNumber)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
