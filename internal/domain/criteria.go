package domain

import "strings"

// Wildcard is the filter value meaning "no constraint on this dimension".
const Wildcard = "all"

// FilterCriteria is the transient grouping/location/search constraint set
// read from the current UI state.
// swagger:model FilterCriteria
type FilterCriteria struct {
	Agenda     string `json:"agenda"`
	Location   string `json:"location"`
	SearchText string `json:"search"`
}

// NewFilterCriteria returns criteria with blank dimensions set to Wildcard.
func NewFilterCriteria(agenda, location, search string) FilterCriteria {
	c := FilterCriteria{Agenda: agenda, Location: location, SearchText: search}
	if isWildcard(c.Agenda) {
		c.Agenda = Wildcard
	}
	if isWildcard(c.Location) {
		c.Location = Wildcard
	}
	return c
}

// HasAgenda reports whether the grouping dimension is constrained.
func (c FilterCriteria) HasAgenda() bool { return !isWildcard(c.Agenda) }

// HasLocation reports whether the location dimension is constrained.
func (c FilterCriteria) HasLocation() bool { return !isWildcard(c.Location) }

// Search returns the normalized search needle, or "" when search is inactive.
func (c FilterCriteria) Search() string {
	return strings.ToLower(strings.TrimSpace(c.SearchText))
}

func isWildcard(v string) bool {
	return v == "" || v == Wildcard
}
