// Package views computes read-only projections of the cached stores:
// dashboard aggregates, the pipeline board grouping, and the filtered job
// listing. Everything here is a pure function over store snapshots; the
// stores stay the single source of truth.
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/jobdeck/job-deck/internal/models"
)

// Filters narrows the job listing. Status and Source accept "all" (or "")
// for no constraint; Search is a case-insensitive substring match over
// title and company together. All three apply at once.
type Filters struct {
	Status string
	Source string
	Search string
}

// FilterJobs returns the jobs satisfying every filter, preserving order.
func FilterJobs(jobs []models.Job, f Filters) []models.Job {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if f.Status != "" && f.Status != "all" && job.Status != f.Status {
			continue
		}
		if f.Source != "" && f.Source != "all" && job.Source != f.Source {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(job.Title + " " + job.Company)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, job)
	}
	return out
}

// GroupByStatus partitions jobs into the six pipeline buckets. Every bucket
// is present even when empty, and jobs keep their relative store order. A
// job with an unknown or missing status lands in "saved".
func GroupByStatus(jobs []models.Job) map[string][]models.Job {
	grouped := make(map[string][]models.Job, len(models.Statuses))
	for _, status := range models.Statuses {
		grouped[status] = []models.Job{}
	}
	for _, job := range jobs {
		status := job.Status
		if _, ok := grouped[status]; !ok {
			status = models.StatusSaved
		}
		grouped[status] = append(grouped[status], job)
	}
	return grouped
}

// DashboardStats is everything the dashboard renders.
type DashboardStats struct {
	TotalJobs      int
	AppliedCount   int
	InterviewCount int
	OfferCount     int
	ThisWeekCount  int
	StatusCounts   map[string]int
	SourceCounts   map[string]int
	Upcoming       []models.Activity
}

const upcomingLimit = 5

// Dashboard aggregates jobs and activities relative to now: totals, counts
// per status (unknown status counted as saved), jobs created since Monday
// 00:00 local time, a per-source distribution (missing source grouped under
// "Other"), and the 5 soonest activities dated at or after the start of
// today, ascending.
func Dashboard(jobs []models.Job, activities []models.Activity, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalJobs:    len(jobs),
		StatusCounts: make(map[string]int, len(models.Statuses)),
		SourceCounts: map[string]int{},
	}
	for _, status := range models.Statuses {
		stats.StatusCounts[status] = 0
	}

	weekStart := startOfWeek(now)
	for _, job := range jobs {
		status := job.Status
		if _, ok := stats.StatusCounts[status]; !ok {
			status = models.StatusSaved
		}
		stats.StatusCounts[status]++

		switch status {
		case models.StatusApplied:
			stats.AppliedCount++
		case models.StatusInterview:
			stats.InterviewCount++
		case models.StatusOffer:
			stats.OfferCount++
		}

		source := job.Source
		if source == "" {
			source = "Other"
		}
		stats.SourceCounts[source]++

		if !job.CreatedAt.IsZero() && !job.CreatedAt.Before(weekStart) && !job.CreatedAt.After(now) {
			stats.ThisWeekCount++
		}
	}

	todayStart := startOfDay(now)
	upcoming := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if activity.Date.IsZero() || activity.Date.Before(todayStart) {
			continue
		}
		upcoming = append(upcoming, activity)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	stats.Upcoming = upcoming

	return stats
}

// startOfWeek returns Monday 00:00 local time for the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
