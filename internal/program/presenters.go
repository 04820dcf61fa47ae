// Package program implements the filter/render pipeline: it turns a loaded
// agenda sequence and a set of filter criteria into a display tree.
package program

import "strings"

// ParsePresenters splits a free-text presenters field such as
// "Name Surname (Role @ Company), Other Name (Role)" into trimmed names.
// Commas inside parentheses do not separate presenters. Non-empty input
// always yields at least one presenter.
func ParsePresenters(presenters string) []string {
	if strings.TrimSpace(presenters) == "" {
		return nil
	}

	var (
		out     []string
		current strings.Builder
		inParen bool
	)
	flush := func() {
		if name := strings.TrimSpace(current.String()); name != "" {
			out = append(out, name)
		}
		current.Reset()
	}

	for _, r := range presenters {
		switch r {
		case '(':
			inParen = true
		case ')':
			inParen = false
		}
		if r == ',' && !inParen {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	if len(out) == 0 {
		out = []string{strings.TrimSpace(presenters)}
	}
	return out
}
