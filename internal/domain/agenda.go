package domain

import (
	"strings"
	"time"
)

// Agenda is a top-level grouping of the program, such as a day or a track.
// swagger:model Agenda
type Agenda struct {
	ID     ID         `json:"id" yaml:"id"`
	Label  string     `json:"label" yaml:"label"`
	Date   string     `json:"date,omitempty" yaml:"date"`
	Events []Timeslot `json:"events" yaml:"events"`
}

// IsWorkshopDay reports whether the agenda label mentions a workshop.
func (a Agenda) IsWorkshopDay() bool {
	return strings.Contains(strings.ToLower(a.Label), "workshop")
}

// Program is one loaded snapshot of the agenda data. It is never mutated
// after load; a reload replaces it wholesale.
type Program struct {
	Agendas  []Agenda  `json:"agendas"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// NewProgram returns a Program snapshot for the given agendas.
func NewProgram(agendas []Agenda, source string, loadedAt time.Time) *Program {
	return &Program{
		Agendas:  agendas,
		Source:   source,
		LoadedAt: loadedAt,
	}
}

// GroupingKey selects which agenda field the grouping filter matches on.
type GroupingKey string

const (
	GroupByID   GroupingKey = "id"
	GroupByDate GroupingKey = "date"
)

// Of returns the grouping value of the agenda for this key.
func (k GroupingKey) Of(a Agenda) string {
	if k == GroupByDate {
		return a.Date
	}
	return string(a.ID)
}

// Valid reports whether k is a known grouping key.
func (k GroupingKey) Valid() bool {
	return k == GroupByID || k == GroupByDate
}
