package contract

import (
	"context"

	"sneakers-store-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindById(ctx context.Context, id uint) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds either
	// identifier.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
