package ports

import (
	"context"

	"github.com/fastlegal/case-service/internal/core/domain"
)

type UserService interface {
	UpdateProfile(ctx context.Context, id, username, password string) error
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}
