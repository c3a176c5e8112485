// Package view holds pure projections over store state. Every function
// returns a fresh slice and leaves its input untouched.
package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
)

// FilteredStartups keeps startups whose name or description contains term
// (case-insensitive) and, unless sector is entity.SectorAll, whose sector
// equals sector. Stored order is preserved.
func FilteredStartups(items []entity.Startup, term string, sector entity.Sector) []entity.Startup {
	needle := strings.ToLower(term)
	out := make([]entity.Startup, 0, len(items))
	for _, s := range items {
		matchesSearch := strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Description), needle)
		matchesSector := sector == entity.SectorAll || s.Sector == sector
		if matchesSearch && matchesSector {
			out = append(out, s)
		}
	}
	return out
}

// FeaturedStartup returns the first featured startup in stored order.
func FeaturedStartup(items []entity.Startup) (entity.Startup, bool) {
	for _, s := range items {
		if s.Featured {
			return s, true
		}
	}
	return entity.Startup{}, false
}

// EventsByDate returns every event sorted ascending by date.
func EventsByDate(items []entity.Event) []entity.Event {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b entity.Event) int {
		return cmp.Compare(a.Date.Day(), b.Date.Day())
	})
	return out
}

// UpcomingEvents returns events dated today or later, ascending by date.
func UpcomingEvents(items []entity.Event, today entity.Date) []entity.Event {
	out := make([]entity.Event, 0, len(items))
	for _, e := range items {
		if !e.Date.Before(today) {
			out = append(out, e)
		}
	}
	return EventsByDate(out)
}

// MyEvents returns the events email participates in; none for an empty email.
func MyEvents(items []entity.Event, email string) []entity.Event {
	out := make([]entity.Event, 0)
	if email == "" {
		return out
	}
	for _, e := range items {
		if e.HasParticipant(email) {
			out = append(out, e)
		}
	}
	return out
}

// SectorCount is the number of startups listed in one sector.
type SectorCount struct {
	Sector     entity.Sector `json:"sector"`
	Count      int           `json:"count"`
	Percentage float64       `json:"percentage"`
}

// SectorCounts counts startups per assignable sector, in display order.
func SectorCounts(items []entity.Startup) []SectorCount {
	out := make([]SectorCount, 0, len(entity.Sectors()))
	for _, sector := range entity.Sectors() {
		n := 0
		for _, s := range items {
			if s.Sector == sector {
				n++
			}
		}
		sc := SectorCount{Sector: sector, Count: n}
		if len(items) > 0 {
			sc.Percentage = float64(int(float64(n)/float64(len(items))*1000+0.5)) / 10
		}
		out = append(out, sc)
	}
	return out
}

// DiscussionsByRole counts discussions per author role snapshot.
func DiscussionsByRole(items []entity.Discussion) map[entity.Role]int {
	out := make(map[entity.Role]int, len(entity.Roles()))
	for _, r := range entity.Roles() {
		out[r] = 0
	}
	for _, d := range items {
		out[d.Role]++
	}
	return out
}
