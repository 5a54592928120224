package alerts

import "time"

// Source records which upstream shape an alert came from. The Prison API
// carries alerts in a flat legacy shape; the newer Alerts API nests the code
// metadata. Both are normalized here and provenance is kept after the merge.
type Source string

const (
	SourcePrisonAPI Source = "PRISON_API"
	SourceAlertsAPI Source = "ALERTS_API"
)

// Alert is the unified alert view the profile renders from, regardless of
// which upstream shape produced it.
type Alert struct {
	Code            string    `json:"code"`
	CodeDescription string    `json:"codeDescription"`
	Type            string    `json:"type"`
	TypeDescription string    `json:"typeDescription"`
	Comment         string    `json:"comment,omitempty"`
	ActiveFrom      time.Time `json:"activeFrom"`
	ActiveTo        time.Time `json:"activeTo"`
	Active          bool      `json:"active"`
	Source          Source    `json:"source"`
}

// apiAlert is the Alerts API wire shape, with the code metadata nested.
type apiAlert struct {
	AlertCode struct {
		Code          string `json:"code"`
		Description   string `json:"description"`
		AlertTypeCode string `json:"alertTypeCode"`
		AlertTypeDesc string `json:"alertTypeDescription"`
	} `json:"alertCode"`
	Description string `json:"description"`
	ActiveFrom  string `json:"activeFrom"`
	ActiveTo    string `json:"activeTo"`
	Active      bool   `json:"active"`
}

// apiPage is the Alerts API paged envelope.
type apiPage struct {
	Content []apiAlert `json:"content"`
}
