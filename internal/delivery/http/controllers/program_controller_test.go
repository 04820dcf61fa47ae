package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"programviewer/internal/delivery/http/helpers"
	"programviewer/internal/delivery/http/middleware"
	"programviewer/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeProgramService implements domain.ProgramService for handler tests.
type fakeProgramService struct {
	snapshot     *domain.Program
	view         domain.ProgramView
	options      domain.FilterOptions
	speaker      *domain.SpeakerDetail
	speakerErr   error
	reloads      int
	lastCriteria domain.FilterCriteria
	lastSpeaker  domain.ID
}

func (f *fakeProgramService) Reload(_ context.Context) *domain.Program {
	f.reloads++
	return f.Snapshot()
}

func (f *fakeProgramService) Snapshot() *domain.Program {
	if f.snapshot == nil {
		return domain.NewProgram(nil, "fake", time.Time{})
	}
	return f.snapshot
}

func (f *fakeProgramService) Program(_ context.Context, c domain.FilterCriteria) domain.ProgramView {
	f.lastCriteria = c
	return f.view
}

func (f *fakeProgramService) Options(_ context.Context, c domain.FilterCriteria) domain.FilterOptions {
	f.lastCriteria = c
	opts := f.options
	opts.Criteria = c
	return opts
}

func (f *fakeProgramService) Speaker(_ context.Context, id domain.ID) (*domain.SpeakerDetail, error) {
	f.lastSpeaker = id
	return f.speaker, f.speakerErr
}

func decodeEnvelope(t *testing.T, body io.Reader, data any) *helpers.APIError {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	if data != nil && env.Error == nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env.Error
}

func TestProgramController_Program(t *testing.T) {
	svc := &fakeProgramService{view: domain.ProgramView{
		HasEvents: true,
		Sections:  []domain.AgendaSection{{Key: "1", ID: "1", Label: "Day 1"}},
	}}
	c := NewProgramController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/program?agenda=1&location=Room+A&q=go", nil)
	rr := httptest.NewRecorder()
	c.Program(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var view domain.ProgramView
	assert.Nil(t, decodeEnvelope(t, rr.Body, &view))
	assert.True(t, view.HasEvents)
	require.Len(t, view.Sections, 1)
	assert.Equal(t, domain.FilterCriteria{Agenda: "1", Location: "Room A", SearchText: "go"}, svc.lastCriteria)
}

func TestProgramController_ProgramPlaceholder(t *testing.T) {
	svc := &fakeProgramService{view: domain.ProgramView{
		Placeholder: domain.PlaceholderNoData,
		Message:     domain.NoDataMessage,
	}}
	c := NewProgramController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.Program(rr, httptest.NewRequest(http.MethodGet, "/api/program", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var view domain.ProgramView
	assert.Nil(t, decodeEnvelope(t, rr.Body, &view))
	assert.Equal(t, domain.PlaceholderNoData, view.Placeholder)
	assert.Equal(t, domain.NoDataMessage, view.Message)
	assert.Empty(t, view.Sections)
}

func TestProgramController_Options(t *testing.T) {
	svc := &fakeProgramService{options: domain.FilterOptions{
		Groupings: []domain.GroupingOption{{Value: "1", Label: "Day 1"}},
		Locations: []string{"Room A", "Room B"},
	}}
	c := NewProgramController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.Options(rr, httptest.NewRequest(http.MethodGet, "/api/program/options?day=1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var opts domain.FilterOptions
	assert.Nil(t, decodeEnvelope(t, rr.Body, &opts))
	assert.Equal(t, []string{"Room A", "Room B"}, opts.Locations)
	assert.Equal(t, "1", opts.Criteria.Agenda)
	assert.Equal(t, domain.Wildcard, opts.Criteria.Location)
}

func TestProgramController_Speaker(t *testing.T) {
	tests := []struct {
		name       string
		pathID     string
		svc        *fakeProgramService
		wantStatus int
		wantCode   string
	}{
		{
			name:   "found",
			pathID: "s1",
			svc: &fakeProgramService{speaker: &domain.SpeakerDetail{
				ID: "s1", Name: "Ada Lovelace", Annotation: "(Engineer)",
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing id",
			pathID:     "",
			svc:        &fakeProgramService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown speaker",
			pathID:     "nope",
			svc:        &fakeProgramService{speakerErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "service failure",
			pathID:     "s1",
			svc:        &fakeProgramService{speakerErr: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewProgramController(testLogger, tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/speakers/"+tt.pathID, nil)
			req.SetPathValue("speakerID", tt.pathID)
			rr := httptest.NewRecorder()

			c.Speaker(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var detail domain.SpeakerDetail
			apiErr := decodeEnvelope(t, rr.Body, &detail)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			assert.Nil(t, apiErr)
			assert.Equal(t, "Ada Lovelace", detail.Name)
			assert.Equal(t, domain.ID(tt.pathID), tt.svc.lastSpeaker)
		})
	}
}

func TestProgramController_Reload(t *testing.T) {
	loadedAt := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	svc := &fakeProgramService{snapshot: domain.NewProgram(
		[]domain.Agenda{{ID: "1"}, {ID: "2"}}, "file:program.json", loadedAt,
	)}
	c := NewProgramController(testLogger, svc)

	t.Run("authenticated reload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/program/reload", nil)
		req = req.WithContext(middleware.SetSubject(req.Context(), "ops"))
		rr := httptest.NewRecorder()

		c.Reload(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ReloadResponse
		assert.Nil(t, decodeEnvelope(t, rr.Body, &resp))
		assert.Equal(t, 1, svc.reloads)
		assert.Equal(t, 2, resp.Agendas)
		assert.Equal(t, "file:program.json", resp.Source)
		assert.True(t, loadedAt.Equal(resp.LoadedAt))
		assert.Equal(t, "ops", resp.RequestedBy)
	})

	t.Run("no subject in context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c.Reload(rr, httptest.NewRequest(http.MethodPost, "/api/program/reload", nil))

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		apiErr := decodeEnvelope(t, rr.Body, nil)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeUnauthorized, apiErr.Code)
		assert.Equal(t, 1, svc.reloads)
	})
}
