package program

import "programviewer/internal/domain"

// sampleProgram is a two-day program with a workshop day, mixed speaker
// representations and a catering slot.
func sampleProgram() []domain.Agenda {
	return []domain.Agenda{
		{
			ID:    "1",
			Label: "Day 1 - Talks",
			Date:  "2025-05-20",
			Events: []domain.Timeslot{
				{
					Start: "09:00",
					Items: []domain.Session{
						{ID: "101", Title: "Robotics Panel", Location: "Room A", Color: "#FF0000", Tags: "robots, ai", Presenters: "Ada Lovelace (Engineer @ Analytical, Ltd), Alan Turing"},
						{ID: "102", Title: "Cloud Native Go", Location: "Room B", Description: "Services in Go", Tags: "go,cloud"},
					},
				},
				{
					Start: "10:30",
					Items: []domain.Session{
						{ID: "103", Title: "Coffee", Location: "Catering"},
					},
				},
				{
					Start: "11:00",
					Items: []domain.Session{
						{ID: "104", Title: "Compilers", Location: "Room B", Speakers: []domain.Speaker{
							{ID: "s1", FirstName: "Grace", LastName: "Hopper", JobTitle: "Rear Admiral", Organization: "US Navy", Bio: "COBOL"},
						}},
					},
				},
			},
		},
		{
			ID:    "2",
			Label: "Day 2 - Workshops",
			Date:  "2025-05-21",
			Events: []domain.Timeslot{
				{
					Start: "09:00",
					Items: []domain.Session{
						{ID: "201", Title: "Hands-on Robots", Location: "Lab", Presenters: "Solo Name"},
						{ID: "202", Location: "Room A"},
					},
				},
			},
		},
	}
}

func sessionIDs(res Result) []domain.ID {
	var ids []domain.ID
	for _, a := range res.Agendas {
		for _, ts := range a.Events {
			for _, s := range ts.Items {
				ids = append(ids, s.ID)
			}
		}
	}
	return ids
}
