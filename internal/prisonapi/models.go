package prisonapi

// Prisoner is the essential identity record the profile page cannot render
// without.
type Prisoner struct {
	PrisonerNumber string `json:"offenderNo"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	PrisonID       string `json:"agencyId"`
	CellLocation   string `json:"assignedLivingUnitDesc"`
	Category       string `json:"category"`
}

// legacyAlert is the Prison API's nested alert shape, kept only as a wire
// DTO; it is normalized into the unified alerts view before leaving this
// package.
type legacyAlert struct {
	AlertID       int64  `json:"alertId"`
	AlertType     string `json:"alertType"`
	AlertTypeDesc string `json:"alertTypeDescription"`
	AlertCode     string `json:"alertCode"`
	AlertCodeDesc string `json:"alertCodeDescription"`
	Comment       string `json:"comment"`
	DateCreated   string `json:"dateCreated"`
	DateExpires   string `json:"dateExpires"`
	Active        bool   `json:"active"`
	Expired       bool   `json:"expired"`
}

// CSRAAssessment is one Cell Sharing Risk Assessment from the prisoner's
// assessment history.
type CSRAAssessment struct {
	Classification string `json:"classification"`
	AssessmentDate string `json:"assessmentDate"`
	PrisonID       string `json:"agencyId"`
	Comment        string `json:"assessmentComment"`
}
