package sessionize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"programviewer/internal/domain"
	"programviewer/internal/program"
)

// DefaultBaseURL is the public Sessionize API root.
const DefaultBaseURL = "https://sessionize.com/api/v2"

// HTTPFetcher fetches GridSmart schedules over HTTP.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
}

// NewHTTPFetcher returns a fetcher that calls the Sessionize GridSmart API.
// An empty baseURL means DefaultBaseURL.
func NewHTTPFetcher(client *http.Client, baseURL string) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPFetcher{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, sessionizeID string) (domain.SessionizeResponse, error) {
	url := fmt.Sprintf("%s/%s/view/GridSmart", f.baseURL, sessionizeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from sessionize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sessionize api returned status: %d", resp.StatusCode)
	}

	var data domain.SessionizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode sessionize response: %w", err)
	}
	return data, nil
}

// Source is a program source backed by a Sessionize event.
type Source struct {
	fetcher      *HTTPFetcher
	sessionizeID string
}

// NewSource returns a program source for the given Sessionize event ID.
func NewSource(client *http.Client, baseURL, sessionizeID string) *Source {
	return &Source{fetcher: NewHTTPFetcher(client, baseURL), sessionizeID: sessionizeID}
}

func (s *Source) Load(ctx context.Context) ([]domain.Agenda, error) {
	data, err := s.fetcher.Fetch(ctx, s.sessionizeID)
	if err != nil {
		return nil, err
	}
	return ToAgendas(data), nil
}

func (s *Source) Describe() string {
	return "sessionize:" + s.sessionizeID
}

// ToAgendas converts a GridSmart response into agendas: one per day, one
// timeslot per start time, the room name as location and category items
// as tags. Service sessions (breaks) keep their room but carry no speakers.
func ToAgendas(data domain.SessionizeResponse) []domain.Agenda {
	var slots []program.Slot
	for _, grid := range data {
		for _, room := range grid.Rooms {
			for _, session := range room.Sessions {
				if session.StartsAt.IsZero() {
					continue
				}
				slots = append(slots, program.Slot{
					StartsAt: session.StartsAt.Time,
					Session:  toSession(session, room.Name),
				})
			}
		}
	}
	return program.AgendasFromSlots(slots)
}

func toSession(session domain.SessionizeSession, roomName string) domain.Session {
	desc := ""
	if session.Description != nil {
		desc = *session.Description
	}
	location := roomName
	if location == "" {
		location = session.Room
	}
	out := domain.Session{
		ID:          domain.ID(session.ID),
		Title:       session.Title,
		Location:    location,
		Description: desc,
		Tags:        domain.TagText(strings.Join(deriveTags(session.Categories), ", ")),
	}
	if !session.IsServiceSession {
		for _, sp := range session.Speakers {
			out.Speakers = append(out.Speakers, toSpeaker(sp))
		}
	}
	return out
}

// toSpeaker splits the GridSmart full name at the first space.
func toSpeaker(ref domain.SessionizeSpeakerRef) domain.Speaker {
	first, last, _ := strings.Cut(strings.TrimSpace(ref.Name), " ")
	return domain.Speaker{
		ID:        domain.ID(ref.ID),
		FirstName: first,
		LastName:  strings.TrimSpace(last),
	}
}

// deriveTags collects all category item names from Sessionize categories, deduped.
func deriveTags(categories []domain.SessionizeCategory) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, cat := range categories {
		for _, item := range cat.CategoryItems {
			if item.Name == "" {
				continue
			}
			if _, ok := seen[item.Name]; ok {
				continue
			}
			seen[item.Name] = struct{}{}
			out = append(out, item.Name)
		}
	}
	return out
}
