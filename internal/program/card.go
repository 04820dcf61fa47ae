package program

import (
	"strings"

	"programviewer/internal/domain"
)

// SplitTags splits a comma-separated tag field into trimmed, non-empty tags.
func SplitTags(raw domain.TagText) []string {
	var out []string
	for _, tag := range strings.Split(string(raw), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// BuildEventCard assembles the display card of one session. Missing fields
// degrade to a placeholder (title) or are omitted.
func BuildEventCard(s domain.Session) domain.EventCard {
	card := domain.EventCard{
		ID:          s.ID,
		Title:       s.Title,
		Location:    s.Location,
		ColorClass:  ColorClass(s.Color),
		Speakers:    buildSpeakerSection(s.SpeakerList()),
		Tags:        SplitTags(s.Tags),
	}
	if strings.TrimSpace(s.Description) != "" {
		card.Description = s.Description
	}
	if strings.TrimSpace(card.Title) == "" {
		card.Title = domain.TitleUnavailable
	}
	return card
}

func buildSpeakerSection(list domain.SpeakerList) *domain.SpeakerSection {
	switch v := list.(type) {
	case domain.StructuredSpeakers:
		return &domain.SpeakerSection{
			Kind:     domain.SpeakerKindSpeakers,
			Heading:  domain.SpeakersHeading,
			Speakers: FormatSpeakers(v),
		}
	case domain.LegacyPresenterText:
		names := ParsePresenters(string(v))
		if len(names) == 0 {
			return nil
		}
		return &domain.SpeakerSection{
			Kind:       domain.SpeakerKindPresenters,
			Heading:    domain.SpeakersHeading,
			Presenters: names,
		}
	}
	return nil
}
