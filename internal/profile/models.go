package profile

import (
	"prisonerprofile/internal/alerts"
	"prisonerprofile/internal/casenotes"
	"prisonerprofile/internal/curious"
	"prisonerprofile/internal/keyworker"
	"prisonerprofile/internal/prisonapi"
	"prisonerprofile/pkg/result"
)

// Profile is the aggregate the rendering layer consumes. The prisoner record
// is essential and always present; every other section is Result-wrapped and
// degrades independently when its upstream fails. No field points back at its
// producer: the aggregate is a pure value, request-scoped and never shared.
type Profile struct {
	Prisoner prisonapi.Prisoner

	// PrisonName is best-effort register enrichment; empty when the register
	// could not resolve the prisoner's establishment.
	PrisonName string

	Alerts           result.Result[[]alerts.Alert]
	CSRAAssessments  result.Result[[]prisonapi.CSRAAssessment]
	Courses          result.Result[curious.MergedCourses]
	FunctionalSkills result.Result[curious.MergedAssessments]
	KeyWorker        result.Result[*keyworker.KeyWorker]
	CaseNoteCounts   result.Result[[]casenotes.UsageCount]
}
