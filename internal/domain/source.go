package domain

import "context"

// ProgramSource loads the raw agenda sequence (a file, a URL, Sessionize, or a database).
type ProgramSource interface {
	Load(ctx context.Context) ([]Agenda, error)
	// Describe returns a short, credential-free label for logs.
	Describe() string
}

// ProgramService owns the loaded program snapshot and runs the
// filter/render pipeline against it.
type ProgramService interface {
	Reload(ctx context.Context) *Program
	Snapshot() *Program
	Program(ctx context.Context, criteria FilterCriteria) ProgramView
	Options(ctx context.Context, criteria FilterCriteria) FilterOptions
	Speaker(ctx context.Context, id ID) (*SpeakerDetail, error)
}
