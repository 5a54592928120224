package curious

import "time"

// MergedCourses is the unified, provenance-tagged union of both generations'
// course enrolments. It is computed fresh per request and never persisted.
type MergedCourses struct {
	All []CourseRecord `json:"records"`
}

// MergeCourses concatenates both generations' records into one merged set.
// The union is a simple concatenation: neither generation may suppress
// records from the other, and records are not de-duplicated across
// generations (distinct generations are assumed to represent genuinely
// distinct enrolments).
func MergeCourses(gen1, gen2 []CourseRecord) MergedCourses {
	all := make([]CourseRecord, 0, len(gen1)+len(gen2))
	all = append(all, gen1...)
	all = append(all, gen2...)
	return MergedCourses{All: all}
}

// TotalRecords is the size of the merged set.
func (m MergedCourses) TotalRecords() int {
	return len(m.All)
}

// ByStatus buckets the merged set by unified status. Bucketing is
// generation-agnostic by construction: it reads only the unified fields.
func (m MergedCourses) ByStatus() map[CourseStatus][]CourseRecord {
	buckets := make(map[CourseStatus][]CourseRecord)
	for _, c := range m.All {
		buckets[c.Status] = append(buckets[c.Status], c)
	}
	return buckets
}

// CompletedWithinLast12Months returns the completed courses whose completion
// date falls strictly inside the trailing twelve months from now.
func (m MergedCourses) CompletedWithinLast12Months(now time.Time) []CourseRecord {
	cutoff := now.AddDate(-1, 0, 0)
	recent := make([]CourseRecord, 0)
	for _, c := range m.All {
		if c.Status == StatusCompleted && c.CompletionDate.After(cutoff) {
			recent = append(recent, c)
		}
	}
	return recent
}

// HasCoursesCompletedOverAYearAgo reports whether any course completed more
// than twelve months before now. Evaluated over the merged set at call time.
func (m MergedCourses) HasCoursesCompletedOverAYearAgo(now time.Time) bool {
	cutoff := now.AddDate(-1, 0, 0)
	for _, c := range m.All {
		if c.Status == StatusCompleted && !c.CompletionDate.IsZero() && !c.CompletionDate.After(cutoff) {
			return true
		}
	}
	return false
}

// HasWithdrawnOrInProgress reports whether the merged set holds any
// withdrawn, temporarily withdrawn or in-progress course.
func (m MergedCourses) HasWithdrawnOrInProgress() bool {
	for _, c := range m.All {
		switch c.Status {
		case StatusWithdrawn, StatusTemporarilyWithdrawn, StatusInProgress:
			return true
		}
	}
	return false
}

// MergedAssessments is the unified union of both generations' functional-
// skills assessments.
type MergedAssessments struct {
	All []AssessmentRecord `json:"records"`
}

// MergeAssessments concatenates both generations' assessment records,
// preserving provenance. Like courses, the union never drops a generation.
func MergeAssessments(gen1, gen2 []AssessmentRecord) MergedAssessments {
	all := make([]AssessmentRecord, 0, len(gen1)+len(gen2))
	all = append(all, gen1...)
	all = append(all, gen2...)
	return MergedAssessments{All: all}
}

// TotalRecords is the size of the merged set.
func (m MergedAssessments) TotalRecords() int {
	return len(m.All)
}

// LatestByType returns the most recent assessment per functional-skill type
// across both generations.
func (m MergedAssessments) LatestByType() map[string]AssessmentRecord {
	latest := make(map[string]AssessmentRecord)
	for _, a := range m.All {
		current, ok := latest[a.Type]
		if !ok || a.AssessmentDate.After(current.AssessmentDate) {
			latest[a.Type] = a
		}
	}
	return latest
}
