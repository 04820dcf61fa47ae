package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"programviewer/internal/adapters/page"
	"programviewer/internal/delivery/http/helpers"
	"programviewer/internal/domain"
)

// PageRenderer renders a named HTML page.
type PageRenderer interface {
	Render(w io.Writer, name string, data page.Data) error
}

// PageController serves the server-rendered program pages.
type PageController struct {
	Logger   *slog.Logger
	Service  domain.ProgramService
	Renderer PageRenderer
	Title    string
}

func NewPageController(logger *slog.Logger, svc domain.ProgramService, renderer PageRenderer, title string) *PageController {
	return &PageController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
		Title:    title,
	}
}

// Index renders the interactive program page for the query's criteria.
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, page.ProgramPage)
}

// Print renders the compact printable program for the query's criteria.
func (c *PageController) Print(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, page.PrintPage)
}

func (c *PageController) render(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()
	// options may reset a stale location; render with what the selects show
	opts := c.Service.Options(ctx, helpers.ParseCriteria(r))
	data := page.Data{
		Title:    c.Title,
		View:     c.Service.Program(ctx, opts.Criteria),
		Options:  opts,
		Criteria: opts.Criteria,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Renderer.Render(w, name, data); err != nil {
		c.Logger.ErrorContext(ctx, "page render failed", "page", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
