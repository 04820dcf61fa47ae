package app

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strings"

	_ "github.com/lib/pq"

	"programviewer/config"
	"programviewer/internal/adapters/sessionize"
	"programviewer/internal/adapters/source"
	"programviewer/internal/domain"
	"programviewer/internal/repository/postgres"
)

const sessionizePrefix = "sessionize:"

// NewSource builds the program source named by cfg.ProgramSource. The
// returned closer releases any connection the source holds.
func NewSource(cfg *config.Config, client *http.Client) (domain.ProgramSource, io.Closer, error) {
	raw := strings.TrimSpace(cfg.ProgramSource)
	switch {
	case raw == "":
		return nil, nil, fmt.Errorf("%w: empty program source", domain.ErrUnsupportedSource)

	case strings.HasPrefix(raw, sessionizePrefix):
		id := strings.TrimSpace(strings.TrimPrefix(raw, sessionizePrefix))
		if id == "" {
			return nil, nil, fmt.Errorf("%w: missing sessionize id", domain.ErrUnsupportedSource)
		}
		return sessionize.NewSource(client, sessionize.DefaultBaseURL, id), nopCloser{}, nil

	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return source.NewHTTPSource(client, raw, cfg.EnvelopeField), nopCloser{}, nil

	case cfg.IsPostgresSource():
		db, err := sql.Open("postgres", raw)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return postgres.NewProgramRepository(db, cfg.EventID), db, nil

	case strings.Contains(raw, "://"):
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, raw[:strings.Index(raw, "://")])
	}
	return source.NewFileSource(raw, cfg.EnvelopeField), nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
