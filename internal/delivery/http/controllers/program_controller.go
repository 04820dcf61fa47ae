package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"programviewer/internal/delivery/http/helpers"
	"programviewer/internal/delivery/http/middleware"
	"programviewer/internal/domain"
)

// ProgramSuccessResponse is the success response envelope for GET /api/program (200).
type ProgramSuccessResponse struct {
	Data  domain.ProgramView `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// OptionsSuccessResponse is the success response envelope for GET /api/program/options (200).
type OptionsSuccessResponse struct {
	Data  domain.FilterOptions `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SpeakerSuccessResponse is the success response envelope for GET /api/speakers/{speakerID} (200).
type SpeakerSuccessResponse struct {
	Data  *domain.SpeakerDetail `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ReloadResponse describes the snapshot installed by a reload.
type ReloadResponse struct {
	Source      string    `json:"source"`
	Agendas     int       `json:"agendas"`
	LoadedAt    time.Time `json:"loaded_at"`
	RequestedBy string    `json:"requested_by"`
}

// ReloadSuccessResponse is the success response envelope for POST /api/program/reload (200).
type ReloadSuccessResponse struct {
	Data  ReloadResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ProgramController struct {
	Logger  *slog.Logger
	Service domain.ProgramService
}

func NewProgramController(logger *slog.Logger, svc domain.ProgramService) *ProgramController {
	return &ProgramController{
		Logger:  logger,
		Service: svc,
	}
}

// Program godoc
// @Summary Get the filtered program
// @Description Applies the grouping, location and search filters to the loaded program and returns the display tree. When nothing is visible, placeholder is "no_data" (no program loaded) or "no_match" (filters exclude everything).
// @Tags program
// @Produce json
// @Param agenda query string false "Grouping value (agenda id or date), or all"
// @Param location query string false "Exact location, or all"
// @Param q query string false "Case-insensitive search text"
// @Success 200 {object} controllers.ProgramSuccessResponse "data contains the program view"
// @Router /api/program [get]
func (c *ProgramController) Program(w http.ResponseWriter, r *http.Request) {
	criteria := helpers.ParseCriteria(r)
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Program(r.Context(), criteria))
}

// Options godoc
// @Summary Get the filter options
// @Description Returns the grouping values (in program order) and the sorted distinct locations. A location that is no longer offered is reset to all in the returned criteria.
// @Tags program
// @Produce json
// @Param agenda query string false "Current grouping value"
// @Param location query string false "Current location"
// @Param q query string false "Current search text"
// @Success 200 {object} controllers.OptionsSuccessResponse "data contains the filter options"
// @Router /api/program/options [get]
func (c *ProgramController) Options(w http.ResponseWriter, r *http.Request) {
	criteria := helpers.ParseCriteria(r)
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Options(r.Context(), criteria))
}

// Speaker godoc
// @Summary Get speaker details
// @Description Returns the detail view of a structured speaker of the loaded program.
// @Tags program
// @Produce json
// @Param speakerID path string true "Speaker ID"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the speaker detail"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/speakers/{speakerID} [get]
func (c *ProgramController) Speaker(w http.ResponseWriter, r *http.Request) {
	speakerID := r.PathValue("speakerID")
	if speakerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerID")
		return
	}
	detail, err := c.Service.Speaker(r.Context(), domain.ID(speakerID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Reload godoc
// @Summary Reload the program
// @Description Loads the program again from the configured source and replaces the current snapshot. A failed load installs an empty program and is reported through agendas=0. Requires a token with the program:reload scope.
// @Tags program
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ReloadSuccessResponse "data describes the installed snapshot"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/program/reload [post]
func (c *ProgramController) Reload(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	p := c.Service.Reload(r.Context())
	c.Logger.InfoContext(r.Context(), "program reloaded on request", "subject", subject, "agendas", len(p.Agendas))
	helpers.WriteJSONSuccess(w, http.StatusOK, ReloadResponse{
		Source:      p.Source,
		Agendas:     len(p.Agendas),
		LoadedAt:    p.LoadedAt,
		RequestedBy: subject,
	})
}
