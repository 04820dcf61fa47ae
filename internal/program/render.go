package program

import "programviewer/internal/domain"

// Render runs the filter and builds the display tree. Empty input yields
// the no-data placeholder; input that filters down to nothing yields the
// no-match placeholder.
func Render(agendas []domain.Agenda, key domain.GroupingKey, c domain.FilterCriteria) domain.ProgramView {
	if len(agendas) == 0 {
		return domain.ProgramView{
			Sections:    []domain.AgendaSection{},
			Placeholder: domain.PlaceholderNoData,
			Message:     domain.NoDataMessage,
		}
	}

	res := Filter(agendas, key, c)
	if !res.HasEvents {
		return domain.ProgramView{
			Sections:    []domain.AgendaSection{},
			Placeholder: domain.PlaceholderNoMatch,
			Message:     domain.NoMatchMessage,
		}
	}

	view := domain.ProgramView{
		Sections:  make([]domain.AgendaSection, 0, len(res.Agendas)),
		HasEvents: true,
	}
	for _, a := range res.Agendas {
		view.Sections = append(view.Sections, buildSection(a, key))
	}
	return view
}

func buildSection(a domain.Agenda, key domain.GroupingKey) domain.AgendaSection {
	workshop := a.IsWorkshopDay()
	section := domain.AgendaSection{
		Key:            key.Of(a),
		ID:             a.ID,
		Date:           a.Date,
		Label:          a.Label,
		Workshop:       workshop,
		SectionClass:   "session-section",
		ContainerClass: "session-container",
		Timeslots:      make([]domain.TimeslotView, 0, len(a.Events)),
	}
	if workshop {
		section.SectionClass = "workshop-section"
		section.ContainerClass = "workshop-container"
	}
	for _, ts := range a.Events {
		cards := make([]domain.EventCard, 0, len(ts.Items))
		for _, s := range ts.Items {
			cards = append(cards, BuildEventCard(s))
		}
		section.Timeslots = append(section.Timeslots, domain.TimeslotView{Start: ts.Start, Cards: cards})
	}
	return section
}
