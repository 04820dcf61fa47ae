package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"programviewer/internal/domain"
)

func TestWriteText(t *testing.T) {
	t.Run("placeholder", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteText(&buf, domain.ProgramView{
			Placeholder: domain.PlaceholderNoMatch,
			Message:     domain.NoMatchMessage,
		}))
		assert.Equal(t, domain.NoMatchMessage+"\n", buf.String())
	})

	t.Run("sections", func(t *testing.T) {
		view := domain.ProgramView{
			HasEvents: true,
			Sections: []domain.AgendaSection{{
				Label: "Day 1",
				Timeslots: []domain.TimeslotView{{
					Start: "09:00",
					Cards: []domain.EventCard{
						{
							ID: "1", Title: "Keynote", Location: "Main Hall",
							Speakers: &domain.SpeakerSection{
								Kind:     domain.SpeakerKindSpeakers,
								Speakers: []domain.SpeakerEntry{{Compact: "Ada Lovelace (Analytical)"}},
							},
						},
						{
							ID: "2", Title: "Panel",
							Speakers: &domain.SpeakerSection{
								Kind:       domain.SpeakerKindPresenters,
								Presenters: []string{"Bob (CTO @ X)", "Eve"},
							},
						},
					},
				}},
			}},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteText(&buf, view))
		want := "== Day 1 ==\n" +
			"09:00\n" +
			"  [1] Keynote (Main Hall)\n" +
			"      Ada Lovelace (Analytical)\n" +
			"  [2] Panel\n" +
			"      Bob (CTO @ X)\n" +
			"      Eve\n"
		assert.Equal(t, want, buf.String())
	})
}
