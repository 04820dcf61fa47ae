package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"programviewer/config"
	"programviewer/internal/adapters/auth"
	"programviewer/internal/app"
	"programviewer/internal/domain"
)

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if src := cmd.String("source"); src != "" {
		cfg.ProgramSource = src
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --source: %w", err)
		}
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx)
}

func render(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// stdout carries the rendered program
	logger := config.NewLogger(os.Stderr)

	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	defer a.Close()

	a.Service.Reload(ctx)
	criteria := domain.NewFilterCriteria(cmd.String("agenda"), cmd.String("location"), cmd.String("search"))
	criteria = a.Service.Options(ctx, criteria).Criteria
	view := a.Service.Program(ctx, criteria)

	switch cmd.String("format") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "text":
		return app.WriteText(os.Stdout, view)
	default:
		return fmt.Errorf("unknown format %q (want json or text)", cmd.String("format"))
	}
}

func token(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.ReloadEnabled() {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	tok, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(cmd.String("subject"), cmd.Duration("ttl"))
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	fmt.Println(tok)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "programviewer",
		Usage: "Filter and render a conference program",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "Path to a .env file (default: .env when present)",
				Sources: cli.EnvVars("APP_ENV_FILE"),
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "Program source, overrides PROGRAM_SOURCE",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the program pages and API",
				Action: serve,
			},
			{
				Name:   "render",
				Usage:  "Load, filter and print the program once",
				Action: render,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "agenda", Aliases: []string{"day"}, Value: domain.Wildcard, Usage: "Grouping value, or all"},
					&cli.StringFlag{Name: "location", Value: domain.Wildcard, Usage: "Exact location, or all"},
					&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "Case-insensitive search text"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format: text or json"},
				},
			},
			{
				Name:   "token",
				Usage:  "Issue a bearer token for POST /api/program/reload",
				Action: token,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Value: "ops", Usage: "Token subject"},
					&cli.DurationFlag{Name: "ttl", Value: time.Hour, Usage: "Token lifetime"},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
