package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"programviewer/internal/domain"
)

// maxDocumentBytes bounds the size of a fetched program document.
const maxDocumentBytes = 32 << 20

type httpSource struct {
	client        *http.Client
	url           string
	envelopeField string
}

// NewHTTPSource returns a source that GETs the program document from rawURL.
func NewHTTPSource(client *http.Client, rawURL, envelopeField string) domain.ProgramSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{client: client, url: rawURL, envelopeField: envelopeField}
}

func (s *httpSource) Load(ctx context.Context) ([]domain.Agenda, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch program: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("program endpoint returned status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read program response: %w", err)
	}
	return Decode(data, s.format(resp.Header.Get("Content-Type")), s.envelopeField)
}

func (s *httpSource) format(contentType string) Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return FormatYAML
	}
	if u, err := url.Parse(s.url); err == nil {
		return FormatFromName(u.Path)
	}
	return FormatJSON
}

func (s *httpSource) Describe() string {
	u, err := url.Parse(s.url)
	if err != nil {
		return "http"
	}
	return u.Scheme + "://" + u.Host + u.Path
}
