package register

// Prison is one establishment from the prison register.
type Prison struct {
	PrisonID   string `json:"prisonId"`
	PrisonName string `json:"prisonName"`
	Active     bool   `json:"active"`
}

// prisonsResponse is the register API's list payload.
type prisonsResponse []Prison
