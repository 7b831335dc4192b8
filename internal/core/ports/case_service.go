package ports

import (
	"context"

	"github.com/fastlegal/case-service/internal/core/domain"
)

type CaseService interface {
	Create(ctx context.Context, title, content string) (*domain.Case, error)
	Update(ctx context.Context, id, title, content string) (*domain.Case, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Case, error)
	Get(ctx context.Context, id string) (*domain.Case, error)
}
