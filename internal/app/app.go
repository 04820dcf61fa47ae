// Package app wires configuration, the program source and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"programviewer/config"
	"programviewer/internal/adapters/auth"
	"programviewer/internal/adapters/page"
	"programviewer/internal/adapters/source"
	deliveryhttp "programviewer/internal/delivery/http"
	"programviewer/internal/delivery/http/controllers"
	"programviewer/internal/delivery/http/middleware"
	"programviewer/internal/domain"
	"programviewer/internal/program"
	"programviewer/internal/services"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// App holds the long-lived components of one process.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Source  domain.ProgramSource
	Service domain.ProgramService

	closer io.Closer
}

// New builds the source and program service described by cfg. Nothing is
// loaded yet.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	src, closer, err := NewSource(cfg, &http.Client{Timeout: cfg.LoadTimeout})
	if err != nil {
		return nil, err
	}
	svc := services.NewProgramService(
		src,
		cfg.GroupingKey,
		program.NewLocationDenylist(cfg.LocationDenylist...),
		cfg.LoadTimeout,
		logger,
	)
	return &App{
		Config:  cfg,
		Logger:  logger,
		Source:  src,
		Service: svc,
		closer:  closer,
	}, nil
}

// Close releases the source's resources.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Handler builds the full HTTP handler for the service.
func (a *App) Handler() (http.Handler, error) {
	renderer, err := page.NewRenderer()
	if err != nil {
		return nil, err
	}
	var verifier domain.TokenVerifier = disabledVerifier{}
	if a.Config.ReloadEnabled() {
		verifier = auth.NewJWTVerifier(a.Config.JWTSecret)
	}
	mux := deliveryhttp.NewRouter(
		controllers.NewProgramController(a.Logger, a.Service),
		controllers.NewPageController(a.Logger, a.Service, renderer, a.Config.Title),
		controllers.NewHealthController(a.Service),
		middleware.RequireAuth(verifier, a.Logger),
	)
	return deliveryhttp.WithMiddleware(mux, a.Logger, a.Config.AllowedOrigins), nil
}

// Serve loads the program, then serves HTTP until ctx is cancelled. When
// watching is enabled for a file source, changes trigger a reload.
func (a *App) Serve(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	a.Service.Reload(ctx)

	srv := &http.Server{
		Addr:              a.Config.Address(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("server listening", "addr", srv.Addr, "source", a.Source.Describe())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.Logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if a.Config.WatchSource {
		if fs, ok := a.Source.(*source.FileSource); ok {
			g.Go(func() error {
				return source.Watch(gctx, fs.Path, a.Logger, func() { a.Service.Reload(gctx) })
			})
		} else {
			a.Logger.Warn("WATCH_SOURCE ignored: only file sources can be watched", "source", a.Source.Describe())
		}
	}
	return g.Wait()
}

type disabledVerifier struct{}

func (disabledVerifier) Verify(string) (string, error) {
	return "", fmt.Errorf("%w: reload disabled, JWT_SECRET not set", domain.ErrInvalidToken)
}
