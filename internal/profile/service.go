package profile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"prisonerprofile/internal/alerts"
	"prisonerprofile/internal/audit"
	"prisonerprofile/internal/casenotes"
	"prisonerprofile/internal/curious"
	"prisonerprofile/internal/keyworker"
	"prisonerprofile/internal/platform/metrics"
	"prisonerprofile/internal/prisonapi"
	"prisonerprofile/internal/register"
	"prisonerprofile/pkg/domain"
	dErrors "prisonerprofile/pkg/domain-errors"
	"prisonerprofile/pkg/platform/sentinel"
	"prisonerprofile/pkg/result"
)

// Ports the orchestrator depends on. Defined here, implemented by the
// upstream client packages, so tests swap in fakes without HTTP.

type PrisonAPI interface {
	GetPrisoner(ctx context.Context, token string, n domain.PrisonerNumber) (prisonapi.Prisoner, error)
	GetAlerts(ctx context.Context, token string, n domain.PrisonerNumber) ([]alerts.Alert, error)
	GetCSRAAssessments(ctx context.Context, token string, n domain.PrisonerNumber) ([]prisonapi.CSRAAssessment, error)
}

type AlertsAPI interface {
	Active(ctx context.Context, token string, n domain.PrisonerNumber) ([]alerts.Alert, error)
}

// CuriousAPI is implemented by both Curious generations; the orchestrator
// always holds one client per generation and never guesses which is which.
type CuriousAPI interface {
	Courses(ctx context.Context, token string, n domain.PrisonerNumber) ([]curious.CourseRecord, error)
	Assessments(ctx context.Context, token string, n domain.PrisonerNumber) ([]curious.AssessmentRecord, error)
}

type KeyWorkerAPI interface {
	CurrentAllocation(ctx context.Context, token string, n domain.PrisonerNumber) (*keyworker.KeyWorker, error)
}

type CaseNotesAPI interface {
	UsageCounts(ctx context.Context, token string, n domain.PrisonerNumber) ([]casenotes.UsageCount, error)
}

type Register interface {
	PrisonName(ctx context.Context, token string, prisonID domain.PrisonID) (register.Prison, bool)
}

type AuditPublisher interface {
	Emit(event audit.Event)
}

// Service is the page-level aggregation orchestrator. It fans every
// independent upstream call out concurrently, wraps each in a Result, and
// assembles the Profile aggregate. One failing dependency degrades exactly
// its own section; the page itself fails only when the essential prisoner
// record cannot be fetched.
type Service struct {
	prison    PrisonAPI
	alerts    AlertsAPI
	curious1  CuriousAPI
	curious2  CuriousAPI
	keyworker KeyWorkerAPI
	casenotes CaseNotesAPI
	register  Register
	audit     AuditPublisher
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewService(
	prison PrisonAPI,
	alertsAPI AlertsAPI,
	curious1, curious2 CuriousAPI,
	keyworkerAPI KeyWorkerAPI,
	casenotesAPI CaseNotesAPI,
	reg Register,
	auditPublisher AuditPublisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		prison:    prison,
		alerts:    alertsAPI,
		curious1:  curious1,
		curious2:  curious2,
		keyworker: keyworkerAPI,
		casenotes: casenotesAPI,
		register:  reg,
		audit:     auditPublisher,
		logger:    logger,
		tracer:    otel.Tracer("prisonerprofile/internal/profile"),
	}
}

// GetProfile aggregates one prisoner's profile. The identifier is validated
// before any upstream call: a malformed number is a deterministic not-found,
// never a downstream error. The prisoner record is fetched first because
// every other section is scoped to a prisoner that must exist; the remaining
// sections then fan out concurrently, so wall-clock latency is bounded by the
// slowest single dependency.
func (s *Service) GetProfile(ctx context.Context, token, staffID, rawNumber string) (*Profile, error) {
	start := time.Now()
	defer func() { metrics.ObserveAggregation(time.Since(start)) }()

	ctx, span := s.tracer.Start(ctx, "profile.GetProfile")
	defer span.End()

	prisonerNumber, err := domain.ParsePrisonerNumber(rawNumber)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "prisoner not found")
	}
	span.SetAttributes(attribute.String("prisoner.number", prisonerNumber.String()))

	prisoner, err := s.prison.GetPrisoner(ctx, token, prisonerNumber)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "prisoner not found")
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "essential prisoner fetch failed",
			"prisoner_number", prisonerNumber.String(),
			"endpoint", "prison-api",
			"error", err,
		)
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, err)
	}

	s.audit.Emit(audit.Event{
		StaffID:        staffID,
		PrisonerNumber: prisonerNumber.String(),
		Action:         audit.ActionViewProfile,
	})

	profile := &Profile{Prisoner: prisoner}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile.Alerts = result.Wrap(func(ctx context.Context) ([]alerts.Alert, error) {
			return s.mergedAlerts(ctx, token, prisonerNumber)
		}, s.logFailure(ctx, prisonerNumber, "alerts"))(gctx)
		return nil
	})

	g.Go(func() error {
		profile.CSRAAssessments = result.Wrap(func(ctx context.Context) ([]prisonapi.CSRAAssessment, error) {
			return s.prison.GetCSRAAssessments(ctx, token, prisonerNumber)
		}, s.logFailure(ctx, prisonerNumber, "csra-assessments"))(gctx)
		return nil
	})

	g.Go(func() error {
		profile.Courses = result.Wrap(func(ctx context.Context) (curious.MergedCourses, error) {
			return s.mergedCourses(ctx, token, prisonerNumber)
		}, s.logFailure(ctx, prisonerNumber, "courses"))(gctx)
		return nil
	})

	g.Go(func() error {
		profile.FunctionalSkills = result.Wrap(func(ctx context.Context) (curious.MergedAssessments, error) {
			return s.mergedAssessments(ctx, token, prisonerNumber)
		}, s.logFailure(ctx, prisonerNumber, "functional-skills"))(gctx)
		return nil
	})

	g.Go(func() error {
		profile.KeyWorker = result.Wrap(func(ctx context.Context) (*keyworker.KeyWorker, error) {
			return s.keyworker.CurrentAllocation(ctx, token, prisonerNumber)
		}, s.logFailure(ctx, prisonerNumber, "key-worker"))(gctx)
		return nil
	})

	g.Go(func() error {
		profile.CaseNoteCounts = result.Wrap(func(ctx context.Context) ([]casenotes.UsageCount, error) {
			return s.casenotes.UsageCounts(ctx, token, prisonerNumber)
		}, s.logFailure(ctx, prisonerNumber, "case-note-counts"))(gctx)
		return nil
	})

	g.Go(func() error {
		// Register enrichment is best-effort by construction; an unresolved
		// establishment leaves the raw id on display.
		if prisonID, err := domain.ParsePrisonID(prisoner.PrisonID); err == nil {
			if p, ok := s.register.PrisonName(gctx, token, prisonID); ok {
				profile.PrisonName = p.PrisonName
			}
		}
		return nil
	})

	// Section goroutines never return errors; Wait is only a join point.
	_ = g.Wait()

	return profile, nil
}

// mergedAlerts fetches both alert sources concurrently and merges them. A
// true failure on either source rejects the whole section; a prisoner
// unknown to a source was already normalized to an empty success by its
// client.
func (s *Service) mergedAlerts(ctx context.Context, token string, n domain.PrisonerNumber) ([]alerts.Alert, error) {
	var legacy, api []alerts.Alert

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		legacy, err = s.prison.GetAlerts(ctx, token, n)
		return err
	})
	g.Go(func() error {
		var err error
		api, err = s.alerts.Active(ctx, token, n)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return alerts.Merge(legacy, api), nil
}

// mergedCourses fetches both Curious generations concurrently and merges
// once both have settled. There is no partial merge: a failure on either
// generation rejects the whole merged section.
func (s *Service) mergedCourses(ctx context.Context, token string, n domain.PrisonerNumber) (curious.MergedCourses, error) {
	var gen1, gen2 []curious.CourseRecord

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		gen1, err = s.curious1.Courses(ctx, token, n)
		return err
	})
	g.Go(func() error {
		var err error
		gen2, err = s.curious2.Courses(ctx, token, n)
		return err
	})
	if err := g.Wait(); err != nil {
		return curious.MergedCourses{}, err
	}

	return curious.MergeCourses(gen1, gen2), nil
}

func (s *Service) mergedAssessments(ctx context.Context, token string, n domain.PrisonerNumber) (curious.MergedAssessments, error) {
	var gen1, gen2 []curious.AssessmentRecord

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		gen1, err = s.curious1.Assessments(ctx, token, n)
		return err
	})
	g.Go(func() error {
		var err error
		gen2, err = s.curious2.Assessments(ctx, token, n)
		return err
	})
	if err := g.Wait(); err != nil {
		return curious.MergedAssessments{}, err
	}

	return curious.MergeAssessments(gen1, gen2), nil
}

// logFailure is the Wrap onError hook: one warning per degraded section with
// enough context to diagnose, plus the section-failure counter.
func (s *Service) logFailure(ctx context.Context, n domain.PrisonerNumber, section string) func(error) {
	return func(err error) {
		metrics.SectionFailure(section)
		s.logger.WarnContext(ctx, "profile section degraded",
			"prisoner_number", n.String(),
			"section", section,
			"error", err,
		)
	}
}
