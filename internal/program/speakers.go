package program

import (
	"strings"

	"programviewer/internal/domain"
)

var quoteEscaper = strings.NewReplacer(`"`, "&quot;", `'`, "&#39;")

// EscapeQuotes replaces quote characters with their HTML entities so the
// text can be embedded in an attribute value.
func EscapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// Annotation returns the role/organization annotation of a speaker:
// "(job title @ organization)", "(job title)", "(organization)" or "".
func Annotation(sp domain.Speaker) string {
	job := strings.TrimSpace(sp.JobTitle)
	org := strings.TrimSpace(sp.Organization)
	switch {
	case job != "" && org != "":
		return "(" + job + " @ " + org + ")"
	case job != "":
		return "(" + job + ")"
	case org != "":
		return "(" + org + ")"
	}
	return ""
}

// CompactName returns the non-interactive form "First Last (organization)".
func CompactName(sp domain.Speaker) string {
	name := sp.FullName()
	if org := strings.TrimSpace(sp.Organization); org != "" {
		return name + " (" + org + ")"
	}
	return name
}

// FormatSpeakers converts speaker records to display entries, one per
// speaker, in input order.
func FormatSpeakers(speakers []domain.Speaker) []domain.SpeakerEntry {
	out := make([]domain.SpeakerEntry, 0, len(speakers))
	for _, sp := range speakers {
		out = append(out, domain.SpeakerEntry{
			ID:         sp.ID,
			Name:       sp.FullName(),
			Annotation: Annotation(sp),
			Compact:    CompactName(sp),
			HasDetail:  sp.ID != "" && (strings.TrimSpace(sp.Bio) != "" || strings.TrimSpace(sp.ProfilePictureURL) != ""),
			Attrs:      speakerAttrs(sp),
		})
	}
	return out
}

// SpeakerDetail builds the detail view of one speaker.
func SpeakerDetail(sp domain.Speaker) *domain.SpeakerDetail {
	return &domain.SpeakerDetail{
		ID:         sp.ID,
		Name:       sp.FullName(),
		Annotation: Annotation(sp),
		Attrs:      speakerAttrs(sp),
	}
}

func speakerAttrs(sp domain.Speaker) domain.SpeakerAttrs {
	return domain.SpeakerAttrs{
		Name:              EscapeQuotes(sp.FullName()),
		JobTitle:          EscapeQuotes(sp.JobTitle),
		Organization:      EscapeQuotes(sp.Organization),
		Bio:               EscapeQuotes(sp.Bio),
		ProfilePictureURL: EscapeQuotes(sp.ProfilePictureURL),
	}
}
