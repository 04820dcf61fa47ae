package services

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"programviewer/internal/domain"
	"programviewer/internal/monitoring"
	"programviewer/internal/program"
)

type programService struct {
	source         domain.ProgramSource
	key            domain.GroupingKey
	denylist       program.LocationDenylist
	contextTimeout time.Duration
	logger         *slog.Logger

	snapshot atomic.Pointer[domain.Program]
}

// NewProgramService returns a ProgramService reading from source. Nothing is
// loaded until Reload is called; until then the program is empty.
func NewProgramService(source domain.ProgramSource, key domain.GroupingKey, denylist program.LocationDenylist, timeout time.Duration, logger *slog.Logger) domain.ProgramService {
	if !key.Valid() {
		key = domain.GroupByID
	}
	return &programService{
		source:         source,
		key:            key,
		denylist:       denylist,
		contextTimeout: timeout,
		logger:         logger,
	}
}

// Reload fetches the program and replaces the snapshot wholesale. A failed
// load is logged and yields an empty program; it is never returned.
func (s *programService) Reload(ctx context.Context) *domain.Program {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	source := s.source.Describe()
	agendas, err := s.source.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "program load failed", "source", source, "err", err)
		monitoring.RecordLoad(source, monitoring.LoadFailure, 0)
		agendas = nil
	} else {
		s.logger.InfoContext(ctx, "program loaded", "source", source, "agendas", len(agendas))
		monitoring.RecordLoad(source, monitoring.LoadSuccess, len(agendas))
	}

	p := domain.NewProgram(agendas, source, time.Now())
	s.snapshot.Store(p)
	return p
}

// Snapshot returns the current program; it is never nil.
func (s *programService) Snapshot() *domain.Program {
	if p := s.snapshot.Load(); p != nil {
		return p
	}
	return domain.NewProgram(nil, s.source.Describe(), time.Time{})
}

func (s *programService) Program(ctx context.Context, criteria domain.FilterCriteria) domain.ProgramView {
	view := program.Render(s.Snapshot().Agendas, s.key, criteria)
	monitoring.RecordRender(string(view.Placeholder))
	s.logger.DebugContext(ctx, "program rendered",
		"agenda", criteria.Agenda,
		"location", criteria.Location,
		"search", criteria.SearchText,
		"sections", len(view.Sections),
		"placeholder", string(view.Placeholder),
	)
	return view
}

func (s *programService) Options(_ context.Context, criteria domain.FilterCriteria) domain.FilterOptions {
	return program.Options(s.Snapshot().Agendas, s.key, criteria, s.denylist)
}

func (s *programService) Speaker(_ context.Context, id domain.ID) (*domain.SpeakerDetail, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	for _, a := range s.Snapshot().Agendas {
		for _, ts := range a.Events {
			for _, sess := range ts.Items {
				for _, sp := range sess.Speakers {
					if sp.ID == id {
						return program.SpeakerDetail(sp), nil
					}
				}
			}
		}
	}
	return nil, domain.ErrNotFound
}
