package helpers

import (
	"net/http"
	"strings"

	"programviewer/internal/domain"
)

// ParseCriteria reads the filter criteria from the query string. The
// grouping value is accepted as "agenda" or "day" and the search text as
// "q" or "search". Missing dimensions default to the wildcard.
func ParseCriteria(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	return domain.NewFilterCriteria(
		strings.TrimSpace(first(q.Get("agenda"), q.Get("day"))),
		strings.TrimSpace(q.Get("location")),
		first(q.Get("q"), q.Get("search")),
	)
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
