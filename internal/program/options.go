package program

import (
	"sort"
	"strings"

	"programviewer/internal/domain"
)

// LocationDenylist holds locations that never become filter options
// (reception and catering areas). Sessions held there still render.
type LocationDenylist map[string]struct{}

// NewLocationDenylist builds a denylist; matching ignores case and
// surrounding whitespace.
func NewLocationDenylist(locations ...string) LocationDenylist {
	d := make(LocationDenylist, len(locations))
	for _, loc := range locations {
		if loc = normalizeLocation(loc); loc != "" {
			d[loc] = struct{}{}
		}
	}
	return d
}

// Contains reports whether location is denylisted.
func (d LocationDenylist) Contains(location string) bool {
	_, ok := d[normalizeLocation(location)]
	return ok
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GroupingOptions returns the distinct grouping values in data order. The
// label of each option is taken from the first agenda carrying that value.
func GroupingOptions(agendas []domain.Agenda, key domain.GroupingKey) []domain.GroupingOption {
	seen := make(map[string]struct{})
	out := []domain.GroupingOption{}
	for _, a := range agendas {
		value := key.Of(a)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		label := a.Label
		if label == "" {
			label = value
		}
		out = append(out, domain.GroupingOption{Value: value, Label: label})
	}
	return out
}

// LocationOptions returns the distinct, sorted session locations, restricted
// to agendas matching grouping unless grouping is the wildcard.
func LocationOptions(agendas []domain.Agenda, key domain.GroupingKey, grouping string, deny LocationDenylist) []string {
	restrict := domain.FilterCriteria{Agenda: grouping}.HasAgenda()
	seen := make(map[string]struct{})
	out := []string{}
	for _, a := range agendas {
		if restrict && key.Of(a) != grouping {
			continue
		}
		for _, ts := range a.Events {
			for _, s := range ts.Items {
				if s.Location == "" || deny.Contains(s.Location) {
					continue
				}
				if _, ok := seen[s.Location]; ok {
					continue
				}
				seen[s.Location] = struct{}{}
				out = append(out, s.Location)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Options derives the selectable filter values for the current criteria.
// If the selected location is not offered under the selected grouping, the
// returned criteria have their location reset to the wildcard.
func Options(agendas []domain.Agenda, key domain.GroupingKey, c domain.FilterCriteria, deny LocationDenylist) domain.FilterOptions {
	c = domain.NewFilterCriteria(c.Agenda, c.Location, c.SearchText)
	locations := LocationOptions(agendas, key, c.Agenda, deny)
	if c.HasLocation() && !containsString(locations, c.Location) {
		c.Location = domain.Wildcard
	}
	return domain.FilterOptions{
		Groupings: GroupingOptions(agendas, key),
		Locations: locations,
		Criteria:  c,
	}
}

func containsString(list []string, v string) bool {
	i := sort.SearchStrings(list, v)
	return i < len(list) && list[i] == v
}
