// Package analytics rolls an organizer's per-event sales rows up into the
// dashboard report.
package analytics

import (
	"math"
	"sort"

	"eventsphere/internal/models"
)

// TopN is the length both leaderboards are truncated to.
const TopN = 5

type EventStanding struct {
	Title       string `json:"title"`
	TicketsSold int    `json:"tickets_sold"`
	Revenue     int    `json:"revenue"`
}

type CategoryRevenue struct {
	Category string `json:"category"`
	Revenue  int    `json:"revenue"`
}

type RevenueShare struct {
	Title      string  `json:"title"`
	Revenue    int     `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type Report struct {
	HasData          bool              `json:"has_data"`
	TotalRevenue     int               `json:"total_revenue"`
	TotalTicketsSold int               `json:"total_tickets_sold"`
	TopEvents        []EventStanding   `json:"top_5_events"`
	TopCategories    []CategoryRevenue `json:"top_5_categories"`
	RevenueShares    []RevenueShare    `json:"event_revenue_percentage"`
}

// BuildReport computes the rollup over the stats rows. Rows must arrive in
// listing order: ties in both top-5 rankings keep that order. Revenue shares
// are omitted entirely when total revenue is zero.
func BuildReport(stats []models.EventStat) Report {
	if len(stats) == 0 {
		return Report{}
	}

	rep := Report{HasData: true}

	standings := make([]EventStanding, 0, len(stats))
	categoryTotals := make(map[string]int)
	categoryOrder := make([]string, 0)

	for _, stat := range stats {
		revenue := stat.Revenue()

		rep.TotalTicketsSold += stat.TicketsSold
		rep.TotalRevenue += revenue

		standings = append(standings, EventStanding{
			Title:       stat.Title,
			TicketsSold: stat.TicketsSold,
			Revenue:     revenue,
		})

		if _, seen := categoryTotals[stat.Category]; !seen {
			categoryOrder = append(categoryOrder, stat.Category)
		}
		categoryTotals[stat.Category] += revenue
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TicketsSold > standings[j].TicketsSold
	})
	rep.TopEvents = truncate(standings)

	categories := make([]CategoryRevenue, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		categories = append(categories, CategoryRevenue{
			Category: category,
			Revenue:  categoryTotals[category],
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Revenue > categories[j].Revenue
	})
	rep.TopCategories = truncate(categories)

	if rep.TotalRevenue > 0 {
		for _, stat := range stats {
			revenue := stat.Revenue()
			if revenue == 0 {
				continue
			}

			pct := float64(revenue) / float64(rep.TotalRevenue) * 100

			rep.RevenueShares = append(rep.RevenueShares, RevenueShare{
				Title:      stat.Title,
				Revenue:    revenue,
				Percentage: math.Round(pct*100) / 100,
			})
		}
	}

	return rep
}

func truncate[T any](items []T) []T {
	if len(items) > TopN {
		return items[:TopN]
	}
	return items
}
