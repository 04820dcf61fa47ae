package controllers

import (
	"net/http"

	"programviewer/internal/delivery/http/helpers"
	"programviewer/internal/domain"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status string `json:"status"`
	Source string `json:"source,omitempty"`
}

type HealthController struct {
	Service domain.ProgramService
}

func NewHealthController(svc domain.ProgramService) *HealthController {
	return &HealthController{Service: svc}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /health/live [get]
func (c *HealthController) Live(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok"})
}

// Ready godoc
// @Summary Readiness probe
// @Description Ready once a load attempt has completed, even if it produced an empty program.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 503 {object} helpers.APIResponse
// @Router /health/ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, _ *http.Request) {
	p := c.Service.Snapshot()
	if p.LoadedAt.IsZero() {
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeNotReady, "program not loaded yet")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ready", Source: p.Source})
}
