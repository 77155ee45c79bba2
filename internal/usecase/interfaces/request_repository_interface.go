package interfaces

import (
	"context"

	"petromap/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for PumpRequest.
//
// The review screens need:
//   - a fresh full scan, newest first, as the filter engine's source
//   - point reads at approval time (ground truth, never a cached copy)
//   - narrow status writes for approve/reject and a field overwrite for edit
//
// Read and update operations return a zero-value PumpRequest (empty ID)
// when the target does not exist; the use case turns that into NotFound.

type IRequestRepository interface {
	List(ctx context.Context) ([]entities.PumpRequest, error)
	GetByID(ctx context.Context, id string) (entities.PumpRequest, error)
	Create(ctx context.Context, r entities.PumpRequest) (entities.PumpRequest, error)
	ApproveByID(ctx context.Context, id, actor string) (entities.PumpRequest, error)
	RejectByID(ctx context.Context, id, actor, reason string) (entities.PumpRequest, error)
	UpdateDetailsByID(ctx context.Context, id string, d entities.RequestDetails, actor string) (entities.PumpRequest, error)
	DeleteByID(ctx context.Context, id string) error
}
