package usecase

import (
	"context"
	"sort"
	"strings"

	"petromap/internal/usecase/interfaces"
)

// IPumpUseCase exposes the published-registry reads the screens need.

type IPumpUseCase interface {
	Districts(ctx context.Context) ([]string, error)
}

type PumpUseCase struct {
	repo interfaces.IPumpRepository
}

var _ IPumpUseCase = (*PumpUseCase)(nil)

func NewPumpUseCase(repo interfaces.IPumpRepository) *PumpUseCase {
	return &PumpUseCase{repo: repo}
}

// Districts returns the distinct district names across the published
// registry, trimmed, uppercased and sorted, for the district autocomplete.
func (u *PumpUseCase) Districts(ctx context.Context) ([]string, error) {
	raw, err := u.repo.ListDistricts(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	districts := make([]string, 0, len(raw))
	for _, d := range raw {
		d = strings.ToUpper(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		districts = append(districts, d)
	}
	sort.Strings(districts)
	return districts, nil
}
