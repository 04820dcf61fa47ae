package source

import (
	"context"
	"fmt"
	"os"

	"programviewer/internal/domain"
)

// FileSource reads the program from a local JSON or YAML file.
type FileSource struct {
	Path          string
	EnvelopeField string
}

// NewFileSource returns a source reading path; the format follows the extension.
func NewFileSource(path, envelopeField string) *FileSource {
	return &FileSource{Path: path, EnvelopeField: envelopeField}
}

func (s *FileSource) Load(ctx context.Context) ([]domain.Agenda, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}
	return Decode(data, FormatFromName(s.Path), s.EnvelopeField)
}

func (s *FileSource) Describe() string {
	return "file:" + s.Path
}
