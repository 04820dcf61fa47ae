package app

import (
	"fmt"
	"io"
	"strings"

	"programviewer/internal/domain"
)

// WriteText prints the view in the compact print layout: one heading per
// section and timeslot, one line per card, compact speaker names.
func WriteText(w io.Writer, view domain.ProgramView) error {
	var b strings.Builder
	if view.Placeholder != domain.PlaceholderNone {
		b.WriteString(view.Message)
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	}
	for i, sec := range view.Sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "== %s ==\n", sec.Label)
		for _, ts := range sec.Timeslots {
			fmt.Fprintf(&b, "%s\n", ts.Start)
			for _, card := range ts.Cards {
				fmt.Fprintf(&b, "  [%s] %s", card.ID, card.Title)
				if card.Location != "" {
					fmt.Fprintf(&b, " (%s)", card.Location)
				}
				b.WriteByte('\n')
				for _, name := range compactSpeakers(card.Speakers) {
					fmt.Fprintf(&b, "      %s\n", name)
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func compactSpeakers(s *domain.SpeakerSection) []string {
	if s == nil {
		return nil
	}
	if s.Kind == domain.SpeakerKindPresenters {
		return s.Presenters
	}
	out := make([]string, 0, len(s.Speakers))
	for _, sp := range s.Speakers {
		out = append(out, sp.Compact)
	}
	return out
}
