package program

import (
	"sort"
	"time"

	"programviewer/internal/domain"
)

// Layouts used when agendas are built from timestamped sessions.
const (
	DateKeyLayout   = "2006-01-02"
	DayLabelLayout  = "Monday 2 January 2006"
	SlotStartLayout = "15:04"
)

// Slot is a session placed on the calendar.
type Slot struct {
	StartsAt time.Time
	Session  domain.Session
}

// AgendasFromSlots groups timestamped sessions into one agenda per calendar
// day and one timeslot per distinct start time. Agendas are keyed by their
// date; sessions sharing a start keep their input order.
func AgendasFromSlots(slots []Slot) []domain.Agenda {
	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt.Before(sorted[j].StartsAt)
	})

	var agendas []domain.Agenda
	for _, sl := range sorted {
		date := sl.StartsAt.Format(DateKeyLayout)
		if len(agendas) == 0 || agendas[len(agendas)-1].Date != date {
			agendas = append(agendas, domain.Agenda{
				ID:    domain.ID(date),
				Label: sl.StartsAt.Format(DayLabelLayout),
				Date:  date,
			})
		}
		day := &agendas[len(agendas)-1]

		start := sl.StartsAt.Format(SlotStartLayout)
		if n := len(day.Events); n == 0 || day.Events[n-1].Start != start {
			day.Events = append(day.Events, domain.Timeslot{Start: start})
		}
		ts := &day.Events[len(day.Events)-1]
		ts.Items = append(ts.Items, sl.Session)
	}
	return agendas
}
