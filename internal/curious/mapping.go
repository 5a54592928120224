package curious

import (
	"strings"
	"time"
)

// Mapping functions, one per API generation. Each maps its generation's raw
// DTO into the unified shape and tags the record with its source. There is no
// generic mapper that guesses the generation from field presence: the caller
// always knows which API it called.

func mapGen1Course(dto gen1LearnerEducation) CourseRecord {
	return CourseRecord{
		PrisonID:         dto.EstablishmentID,
		CourseName:       dto.CourseName,
		CourseCode:       dto.CourseCode,
		StartDate:        parseDate(dto.LearningStartDate),
		PlannedEndDate:   parseDate(dto.LearningPlannedEndDate),
		CompletionDate:   parseDate(dto.LearningActualEndDate),
		Status:           ClassifyCompletionStatus(dto.CompletionStatus),
		Grade:            firstNonEmpty(dto.OutcomeGrade, dto.Outcome),
		WithdrawalReason: dto.PrisonWithdrawalReason,
		IsAccredited:     dto.IsAccredited,
		Source:           SourceCurious1,
	}
}

func mapGen2Course(dto gen2CourseEnrolment) CourseRecord {
	return CourseRecord{
		PrisonID:         dto.PrisonID,
		CourseName:       dto.CourseName,
		CourseCode:       dto.CourseCode,
		StartDate:        parseDate(dto.CourseStartDate),
		PlannedEndDate:   parseDate(dto.CoursePlannedEndDate),
		CompletionDate:   parseDate(dto.CourseCompletionDate),
		Status:           ClassifyCompletionStatus(dto.CompletionStatus),
		Grade:            dto.Grade,
		WithdrawalReason: dto.WithdrawalReason,
		IsAccredited:     dto.IsAccredited,
		Source:           SourceCurious2,
	}
}

func mapGen1Assessment(dto gen1Assessment) AssessmentRecord {
	return AssessmentRecord{
		Type:           dto.QualificationType,
		Level:          dto.QualificationGrade,
		AssessmentDate: parseDate(dto.AssessmentDate),
		PrisonID:       dto.EstablishmentID,
		Source:         SourceCurious1,
	}
}

func mapGen2Assessment(dto gen2Assessment) AssessmentRecord {
	return AssessmentRecord{
		Type:           dto.AssessmentType,
		Level:          dto.Level,
		AssessmentDate: parseDate(dto.AssessmentDate),
		PrisonID:       dto.PrisonID,
		Source:         SourceCurious2,
	}
}

// ClassifyCompletionStatus derives the unified status from the upstream
// completion-status label by keyword containment. The upstream guarantees the
// field is one of a small set of human-readable screen labels whose exact
// wording drifts between releases, so containment is deliberately tolerant
// where equality would be brittle.
func ClassifyCompletionStatus(label string) CourseStatus {
	upper := strings.ToUpper(label)
	switch {
	case strings.Contains(upper, "WITHDRAWN") && strings.Contains(upper, "TEMPORARILY"):
		return StatusTemporarilyWithdrawn
	case strings.Contains(upper, "WITHDRAWN"):
		return StatusWithdrawn
	case strings.Contains(upper, "COMPLETED"):
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// parseDate parses the upstream YYYY-MM-DD date format. Missing or malformed
// dates map to the zero time; consumers treat a zero date as "not set".
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
