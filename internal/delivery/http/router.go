package http

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "programviewer/docs"
	"programviewer/internal/delivery/http/controllers"
	"programviewer/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	programController *controllers.ProgramController,
	pageController *controllers.PageController,
	healthController *controllers.HealthController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", pageController.Index)
	mux.HandleFunc("GET /print", pageController.Print)

	// API Routes
	mux.HandleFunc("GET /api/program", programController.Program)
	mux.HandleFunc("GET /api/program/options", programController.Options)
	mux.HandleFunc("GET /api/speakers/{speakerID}", programController.Speaker)
	mux.HandleFunc("POST /api/program/reload", requireAuth(programController.Reload))

	// Ops
	mux.HandleFunc("GET /health/live", healthController.Live)
	mux.HandleFunc("GET /health/ready", healthController.Ready)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// WithMiddleware wraps the router in the request pipeline: request IDs,
// panic recovery, access logging and CORS, outermost first.
func WithMiddleware(next http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	h := middleware.CORS(allowedOrigins, next)
	h = middleware.LoggingMiddleware(logger, h)
	h = chimw.Recoverer(h)
	return chimw.RequestID(h)
}
