package repositories

import (
	"context"

	"github.com/myung2-love/Miniter/internal/models"
)

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	Delete(ctx context.Context, id int64) error
}
