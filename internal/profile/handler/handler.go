// Package handler is the thin HTTP layer over the profile orchestrator. It
// translates Result-carried sections into the response envelope and never
// contains aggregation logic of its own.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"prisonerprofile/internal/platform/middleware"
	"prisonerprofile/internal/profile"
	"prisonerprofile/pkg/platform/httputil"
	"prisonerprofile/pkg/result"
)

// Service is the slice of the orchestrator the handler needs.
type Service interface {
	GetProfile(ctx context.Context, token, staffID, rawNumber string) (*profile.Profile, error)
}

type Handler struct {
	svc    Service
	logger *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/prisoners/{prisonerNumber}/profile", h.getProfile)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.svc.GetProfile(
		ctx,
		middleware.GetRawToken(ctx),
		middleware.GetStaffID(ctx),
		chi.URLParam(r, "prisonerNumber"),
	)
	if err != nil {
		h.logger.WarnContext(ctx, "profile request failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toResponse(p))
}

// section is the wire envelope for one degradable section: the data when the
// section settled fulfilled, or an unavailable marker when it was rejected.
// The two states are mutually exclusive on the wire.
type section[T any] struct {
	Data        T
	Unavailable bool
}

func toSection[T any](res result.Result[T]) section[T] {
	v, err := res.GetOrThrow()
	if err != nil {
		return section[T]{Unavailable: true}
	}
	return section[T]{Data: v}
}

func (s section[T]) MarshalJSON() ([]byte, error) {
	if s.Unavailable {
		return []byte(`{"unavailable":true}`), nil
	}
	return json.Marshal(map[string]any{"data": s.Data})
}

type profileResponse struct {
	PrisonerNumber string `json:"prisonerNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	PrisonID       string `json:"prisonId"`
	PrisonName     string `json:"prisonName,omitempty"`
	CellLocation   string `json:"cellLocation,omitempty"`
	Category       string `json:"category,omitempty"`

	Alerts           any `json:"alerts"`
	CSRAAssessments  any `json:"csraAssessments"`
	Courses          any `json:"courses"`
	FunctionalSkills any `json:"functionalSkills"`
	KeyWorker        any `json:"keyWorker"`
	CaseNoteCounts   any `json:"caseNoteCounts"`
}

func toResponse(p *profile.Profile) profileResponse {
	return profileResponse{
		PrisonerNumber:   p.Prisoner.PrisonerNumber,
		FirstName:        p.Prisoner.FirstName,
		LastName:         p.Prisoner.LastName,
		DateOfBirth:      p.Prisoner.DateOfBirth,
		PrisonID:         p.Prisoner.PrisonID,
		PrisonName:       p.PrisonName,
		CellLocation:     p.Prisoner.CellLocation,
		Category:         p.Prisoner.Category,
		Alerts:           toSection(p.Alerts),
		CSRAAssessments:  toSection(p.CSRAAssessments),
		Courses:          toSection(p.Courses),
		FunctionalSkills: toSection(p.FunctionalSkills),
		KeyWorker:        toSection(p.KeyWorker),
		CaseNoteCounts:   toSection(p.CaseNoteCounts),
	}
}
