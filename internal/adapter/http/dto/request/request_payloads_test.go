package request

import (
	"testing"

	"petromap/internal/domain/entities"
	"petromap/internal/domain/filter"
)

func TestListRequestsQuery_ToFilterState(t *testing.T) {
	t.Run("empty status defaults to pending", func(t *testing.T) {
		s, ok := ListRequestsQuery{}.ToFilterState()
		if !ok {
			t.Fatalf("expected valid state")
		}
		if s.Status != entities.RequestStatusPending {
			t.Fatalf("expected pending, got %s", s.Status)
		}
		if s.Company != filter.All || s.District != filter.All || s.DateRange != filter.DateRangeAll {
			t.Fatalf("expected inactive filters: %+v", s)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		if _, ok := (ListRequestsQuery{Status: "archived"}).ToFilterState(); ok {
			t.Fatalf("expected invalid state")
		}
	})

	t.Run("all fields carried", func(t *testing.T) {
		q := ListRequestsQuery{
			Status:    "approved",
			Search:    "shree",
			Company:   "HPCL",
			District:  "Pune",
			DateRange: "week",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		}
		s, ok := q.ToFilterState()
		if !ok {
			t.Fatalf("expected valid state")
		}
		if s.Status != entities.RequestStatusApproved || s.Search != "shree" ||
			s.Company != "HPCL" || s.District != "Pune" ||
			s.DateRange != filter.DateRangeWeek ||
			s.StartDate != "2024-01-01" || s.EndDate != "2024-01-31" {
			t.Fatalf("unexpected state: %+v", s)
		}
	})
}

func TestUpdateRequestPayload_ToPatch(t *testing.T) {
	p := UpdateRequestPayload{
		CustomerName: "Shree Fuel Point",
		Latitude:     "18.5204",
		Longitude:    "abc",
	}
	patch := p.ToPatch()
	if patch.CustomerName != "Shree Fuel Point" {
		t.Fatalf("unexpected patch: %+v", patch)
	}
	// Coordinates stay raw text here; coercion happens downstream.
	if patch.Latitude != "18.5204" || patch.Longitude != "abc" {
		t.Fatalf("unexpected coordinates: %q %q", patch.Latitude, patch.Longitude)
	}
}
