package curious

import "time"

// Source records which generation of the Curious API a record came from.
// Provenance is kept through the merge so it is never lost downstream.
type Source string

const (
	SourceCurious1 Source = "CURIOUS1"
	SourceCurious2 Source = "CURIOUS2"
)

// CourseStatus is the unified classification derived from the upstream
// completion-status label after mapping, never from the source schema.
type CourseStatus string

const (
	StatusCompleted            CourseStatus = "COMPLETED"
	StatusInProgress           CourseStatus = "IN_PROGRESS"
	StatusWithdrawn            CourseStatus = "WITHDRAWN"
	StatusTemporarilyWithdrawn CourseStatus = "TEMPORARILY_WITHDRAWN"
)

// CourseRecord is one in-prison course enrolment in the unified shape shared
// by both API generations.
type CourseRecord struct {
	PrisonID         string       `json:"prisonId"`
	CourseName       string       `json:"courseName"`
	CourseCode       string       `json:"courseCode"`
	StartDate        time.Time    `json:"startDate"`
	PlannedEndDate   time.Time    `json:"plannedEndDate"`
	CompletionDate   time.Time    `json:"completionDate"`
	Status           CourseStatus `json:"status"`
	Grade            string       `json:"grade,omitempty"`
	WithdrawalReason string       `json:"withdrawalReason,omitempty"`
	IsAccredited     bool         `json:"isAccredited"`
	Source           Source       `json:"source"`
}

// AssessmentRecord is one functional-skills assessment (English, Maths,
// digital skills) in the unified shape.
type AssessmentRecord struct {
	Type           string    `json:"type"`
	Level          string    `json:"level"`
	AssessmentDate time.Time `json:"assessmentDate"`
	PrisonID       string    `json:"prisonId"`
	Source         Source    `json:"source"`
}

// ---------------------------------------------------------------------------
// Generation 1 DTOs (Curious 1). Field names follow that API's schema.
// ---------------------------------------------------------------------------

type gen1LearnerEducation struct {
	EstablishmentID        string `json:"establishmentId"`
	CourseName             string `json:"courseName"`
	CourseCode             string `json:"courseCode"`
	LearningStartDate      string `json:"learningStartDate"`
	LearningPlannedEndDate string `json:"learningPlannedEndDate"`
	LearningActualEndDate  string `json:"learningActualEndDate"`
	CompletionStatus       string `json:"completionStatus"`
	Outcome                string `json:"outcome"`
	OutcomeGrade           string `json:"outcomeGrade"`
	PrisonWithdrawalReason string `json:"prisonWithdrawalReason"`
	IsAccredited           bool   `json:"isAccredited"`
}

// gen1Page is Curious 1's paged envelope.
type gen1Page struct {
	Content []gen1LearnerEducation `json:"content"`
}

type gen1Assessment struct {
	EstablishmentID    string `json:"establishmentId"`
	QualificationType  string `json:"qualificationType"`
	QualificationGrade string `json:"qualificationGrade"`
	AssessmentDate     string `json:"assessmentDate"`
}

// ---------------------------------------------------------------------------
// Generation 2 DTOs (Curious 2). Same logical data, different shape.
// ---------------------------------------------------------------------------

type gen2CourseEnrolment struct {
	PrisonID             string `json:"prisonId"`
	CourseName           string `json:"courseName"`
	CourseCode           string `json:"courseCode"`
	CourseStartDate      string `json:"courseStartDate"`
	CoursePlannedEndDate string `json:"coursePlannedEndDate"`
	CourseCompletionDate string `json:"courseCompletionDate"`
	CompletionStatus     string `json:"completionStatus"`
	Grade                string `json:"grade"`
	WithdrawalReason     string `json:"withdrawalReason"`
	IsAccredited         bool   `json:"isAccredited"`
}

type gen2Enrolments struct {
	Enrolments []gen2CourseEnrolment `json:"enrolments"`
}

type gen2Assessment struct {
	PrisonID       string `json:"prisonId"`
	AssessmentType string `json:"assessmentType"`
	Level          string `json:"level"`
	AssessmentDate string `json:"assessmentDate"`
}

type gen2Assessments struct {
	Assessments []gen2Assessment `json:"assessments"`
}
