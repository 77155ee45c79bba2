package interfaces

import (
	"context"

	"petromap/internal/domain/entities"
)

// IPumpRepository abstracts DynamoDB persistence for the published
// petrol_pumps registry. The review workflow only ever inserts into it;
// ListDistricts feeds the district autocomplete on the edit forms.

type IPumpRepository interface {
	Create(ctx context.Context, p entities.PetrolPump) (entities.PetrolPump, error)
	ListDistricts(ctx context.Context) ([]string, error)
}
