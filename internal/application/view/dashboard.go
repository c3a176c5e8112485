package view

import (
	"cmp"
	"slices"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
)

const dashboardListSize = 5

type Dashboard struct {
	TotalStartups     int                 `json:"totalStartups"`
	TotalEvents       int                 `json:"totalEvents"`
	TotalDiscussions  int                 `json:"totalDiscussions"`
	TotalParticipants int                 `json:"totalParticipants"`
	Sectors           []SectorCount       `json:"sectors"`
	RecentStartups    []entity.Startup    `json:"recentStartups"`
	UpcomingEvents    []entity.Event      `json:"upcomingEvents"`
	DiscussionsByRole map[entity.Role]int `json:"discussionsByRole"`
}

// BuildDashboard aggregates platform statistics for administrators.
func BuildDashboard(startups []entity.Startup, events []entity.Event, discussions []entity.Discussion, today entity.Date) Dashboard {
	sectors := SectorCounts(startups)
	slices.SortStableFunc(sectors, func(a, b SectorCount) int { return cmp.Compare(b.Count, a.Count) })

	recent := slices.Clone(startups)
	slices.SortStableFunc(recent, func(a, b entity.Startup) int {
		return cmp.Compare(b.CreatedAt.Day(), a.CreatedAt.Day())
	})

	participants := 0
	for _, e := range events {
		participants += len(e.Participants)
	}

	return Dashboard{
		TotalStartups:     len(startups),
		TotalEvents:       len(events),
		TotalDiscussions:  len(discussions),
		TotalParticipants: participants,
		Sectors:           sectors,
		RecentStartups:    head(recent, dashboardListSize),
		UpcomingEvents:    head(UpcomingEvents(events, today), dashboardListSize),
		DiscussionsByRole: DiscussionsByRole(discussions),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
