package program

import (
	"strings"

	"programviewer/internal/domain"
)

// Result is the filtered program: the surviving agendas, each holding only
// its non-empty timeslots, in input order.
type Result struct {
	Agendas   []domain.Agenda
	HasEvents bool
}

// Filter applies the grouping, location and free-text criteria across the
// agenda, timeslot and session levels. It never reorders and never
// mutates its input. Timeslots left without sessions are dropped, and so are
// agendas left without timeslots.
func Filter(agendas []domain.Agenda, key domain.GroupingKey, c domain.FilterCriteria) Result {
	var res Result
	needle := c.Search()

	for _, a := range agendas {
		if c.HasAgenda() && key.Of(a) != c.Agenda {
			continue
		}

		var slots []domain.Timeslot
		for _, ts := range a.Events {
			var items []domain.Session
			for _, s := range ts.Items {
				if c.HasLocation() && s.Location != c.Location {
					continue
				}
				if needle != "" && !matchesSearch(s, needle) {
					continue
				}
				items = append(items, s)
			}
			if len(items) == 0 {
				continue
			}
			slots = append(slots, domain.Timeslot{Start: ts.Start, Items: items})
		}
		if len(slots) == 0 {
			continue
		}

		filtered := a
		filtered.Events = slots
		res.Agendas = append(res.Agendas, filtered)
		res.HasEvents = true
	}
	return res
}

// matchesSearch reports whether needle (already lower-cased) occurs in the
// title, description, presenters text or raw tags of s.
func matchesSearch(s domain.Session, needle string) bool {
	for _, field := range []string{s.Title, s.Description, s.Presenters, string(s.Tags)} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
