package domain

// Placeholder tells the display surface which empty state to show.
type Placeholder string

const (
	PlaceholderNone    Placeholder = ""
	PlaceholderNoData  Placeholder = "no_data"
	PlaceholderNoMatch Placeholder = "no_match"
)

// Placeholder messages. They must stay distinct from each other.
const (
	NoDataMessage     = "No program data available"
	NoMatchMessage    = "No events match the selected filters"
	TitleUnavailable  = "Title unavailable"
	SpeakersHeading   = "Speakers"
	DefaultColorClass = "color-white"
)

// ProgramView is the display tree produced for one filter/render cycle.
// Either Sections is non-empty or Placeholder is set, never both.
// swagger:model ProgramView
type ProgramView struct {
	Sections    []AgendaSection `json:"sections"`
	HasEvents   bool            `json:"has_events"`
	Placeholder Placeholder     `json:"placeholder,omitempty"`
	Message     string          `json:"message,omitempty"`
}

// AgendaSection is the visible section of one agenda.
type AgendaSection struct {
	Key            string         `json:"key"`
	ID             ID             `json:"id"`
	Date           string         `json:"date,omitempty"`
	Label          string         `json:"label"`
	Workshop       bool           `json:"workshop"`
	SectionClass   string         `json:"section_class"`
	ContainerClass string         `json:"container_class"`
	Timeslots      []TimeslotView `json:"timeslots"`
}

// TimeslotView is one non-empty timeslot heading and its cards.
type TimeslotView struct {
	Start string      `json:"start"`
	Cards []EventCard `json:"cards"`
}

// EventCard is the display representation of one session.
type EventCard struct {
	ID          ID              `json:"id"`
	Title       string          `json:"title"`
	Location    string          `json:"location"`
	ColorClass  string          `json:"color_class"`
	Speakers    *SpeakerSection `json:"speakers,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// SpeakerKind names the representation a SpeakerSection was built from.
type SpeakerKind string

const (
	SpeakerKindPresenters SpeakerKind = "presenters"
	SpeakerKindSpeakers   SpeakerKind = "speakers"
)

// SpeakerSection is the speaker block of a card. Exactly one of Presenters
// and Speakers is populated, according to Kind.
type SpeakerSection struct {
	Kind       SpeakerKind    `json:"kind"`
	Heading    string         `json:"heading"`
	Presenters []string       `json:"presenters,omitempty"`
	Speakers   []SpeakerEntry `json:"speakers,omitempty"`
}

// SpeakerEntry is one formatted speaker of a card.
type SpeakerEntry struct {
	ID         ID           `json:"id"`
	Name       string       `json:"name"`
	Annotation string       `json:"annotation,omitempty"`
	Compact    string       `json:"compact"`
	HasDetail  bool         `json:"has_detail"`
	Attrs      SpeakerAttrs `json:"attrs"`
}

// SpeakerAttrs holds speaker text with quote characters replaced by their
// HTML entities, ready for attribute embedding.
type SpeakerAttrs struct {
	Name              string `json:"name"`
	JobTitle          string `json:"job_title,omitempty"`
	Organization      string `json:"organization,omitempty"`
	Bio               string `json:"bio,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// SpeakerDetail is the on-demand detail view of one speaker.
// swagger:model SpeakerDetail
type SpeakerDetail struct {
	ID         ID           `json:"id"`
	Name       string       `json:"name"`
	Annotation string       `json:"annotation,omitempty"`
	Attrs      SpeakerAttrs `json:"attrs"`
}

// GroupingOption is one selectable grouping value.
type GroupingOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions is the set of selectable filter values and the criteria
// they were computed for.
// swagger:model FilterOptions
type FilterOptions struct {
	Groupings []GroupingOption `json:"groupings"`
	Locations []string         `json:"locations"`
	Criteria  FilterCriteria   `json:"criteria"`
}
