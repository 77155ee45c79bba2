package interfaces

import (
	"context"

	"petromap/internal/domain/entities"
)

// IUserRepository is the read-only lookup into user_data. Both methods
// return a zero-value profile when nothing matches; a missing profile is
// not an error for any caller.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	FindByUserID(ctx context.Context, userID string) (entities.UserProfile, error)
}
