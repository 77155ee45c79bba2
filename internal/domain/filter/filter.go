// Package filter computes the visible subset of the request queue for the
// review screens. It is deliberately pure: the full list and the screen's
// filter state go in, an order-preserving subsequence comes out, and the
// reference instant is a parameter so results are reproducible.
package filter

import (
	"strings"
	"time"

	"petromap/internal/domain/entities"
)

// Sentinel value meaning a structured filter is inactive.
const All = "all"

// DateRange is the relative creation-date bucket.
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// State is the ephemeral filter selection of one screen. It is never
// persisted.
//
// StartDate and EndDate are calendar dates ("2006-01-02"); either may be
// empty for an open bound. The explicit range stacks with DateRange via
// AND, matching the screens it replaces: both apply when both are set,
// even though that can produce empty result sets.
type State struct {
	Status    entities.RequestStatus
	Search    string
	Company   string
	District  string
	DateRange DateRange
	StartDate string
	EndDate   string
}

// NewState returns a State with every structured filter inactive and the
// given status tab selected.
func NewState(status entities.RequestStatus) State {
	return State{
		Status:    status,
		Company:   All,
		District:  All,
		DateRange: DateRangeAll,
	}
}

// Visible applies the filter chain to all requests and returns the ones the
// screen should show, in the order they were given. Every predicate is a
// commutative AND term, so application order only matters for speed.
func Visible(all []entities.PumpRequest, s State, now time.Time) []entities.PumpRequest {
	visible := make([]entities.PumpRequest, 0, len(all))

	query := strings.ToLower(strings.TrimSpace(s.Search))
	today := midnight(now)

	for _, req := range all {
		if req.Status != s.Status {
			continue
		}
		if query != "" && !matchesQuery(req, query) {
			continue
		}
		if s.Company != "" && s.Company != All && req.Company != s.Company {
			continue
		}
		if s.District != "" && s.District != All && req.District != s.District {
			continue
		}
		if !inDateRange(req, s.DateRange, today) {
			continue
		}
		if !inExplicitRange(req, s.StartDate, s.EndDate, now.Location()) {
			continue
		}
		visible = append(visible, req)
	}
	return visible
}

// CountByStatus tallies the unfiltered list per status. Tab badges use
// these counts, so they stay fixed while search and structured filters
// change.
func CountByStatus(all []entities.PumpRequest) map[entities.RequestStatus]int {
	counts := map[entities.RequestStatus]int{
		entities.RequestStatusPending:  0,
		entities.RequestStatusApproved: 0,
		entities.RequestStatusRejected: 0,
	}
	for _, req := range all {
		counts[req.Status]++
	}
	return counts
}

// matchesQuery reports whether any searchable field contains the
// already-lowercased query.
func matchesQuery(req entities.PumpRequest, query string) bool {
	for _, field := range []string{
		req.CustomerName,
		req.District,
		req.Company,
		req.DealerName,
		req.SapCode,
	} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func inDateRange(req entities.PumpRequest, r DateRange, today time.Time) bool {
	var cutoff time.Time
	switch r {
	case DateRangeToday:
		cutoff = today
	case DateRangeWeek:
		cutoff = today.Add(-7 * 24 * time.Hour)
	case DateRangeMonth:
		cutoff = today.Add(-30 * 24 * time.Hour)
	default:
		// Unknown buckets are inactive, like the sentinel.
		return true
	}
	if req.CreatedAt.IsZero() {
		return false
	}
	return !req.CreatedAt.Before(cutoff)
}

func inExplicitRange(req entities.PumpRequest, startDate, endDate string, loc *time.Location) bool {
	if startDate == "" && endDate == "" {
		return true
	}
	if req.CreatedAt.IsZero() {
		return false
	}
	if startDate != "" {
		start, err := time.ParseInLocation("2006-01-02", startDate, loc)
		if err != nil || req.CreatedAt.Before(start) {
			return false
		}
	}
	if endDate != "" {
		end, err := time.ParseInLocation("2006-01-02", endDate, loc)
		if err != nil {
			return false
		}
		end = end.Add(24*time.Hour - time.Millisecond)
		if req.CreatedAt.After(end) {
			return false
		}
	}
	return true
}

func midnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
