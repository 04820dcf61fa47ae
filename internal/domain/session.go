package domain

import "strings"

// Session is one schedulable program item (talk, workshop, break).
// Every field except ID is optional.
// swagger:model Session
type Session struct {
	ID          ID        `json:"id" yaml:"id"`
	Title       string    `json:"title,omitempty" yaml:"title"`
	Location    string    `json:"location,omitempty" yaml:"location"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Color       string    `json:"color,omitempty" yaml:"color"`
	Tags        TagText   `json:"tags,omitempty" yaml:"tags"`
	Presenters  string    `json:"presenters,omitempty" yaml:"presenters"`
	Speakers    []Speaker `json:"speakers,omitempty" yaml:"speakers"`
}

// SpeakerList is the speaker representation carried by a session:
// either LegacyPresenterText or StructuredSpeakers.
type SpeakerList interface {
	speakerList()
}

// LegacyPresenterText is the annotated free-text presenters field.
type LegacyPresenterText string

// StructuredSpeakers is the ordered list of structured speaker records.
type StructuredSpeakers []Speaker

func (LegacyPresenterText) speakerList() {}
func (StructuredSpeakers) speakerList()  {}

// SpeakerList returns the session's speaker representation, or nil when it
// has none. Structured speakers win over the legacy presenters text.
func (s Session) SpeakerList() SpeakerList {
	if len(s.Speakers) > 0 {
		return StructuredSpeakers(s.Speakers)
	}
	if strings.TrimSpace(s.Presenters) != "" {
		return LegacyPresenterText(s.Presenters)
	}
	return nil
}

// Timeslot is a time-bounded bucket of concurrent sessions.
// Start is display text and is never parsed.
type Timeslot struct {
	Start string    `json:"start" yaml:"start"`
	Items []Session `json:"items" yaml:"items"`
}
