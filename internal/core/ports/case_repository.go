package ports

import (
	"context"

	"github.com/fastlegal/case-service/internal/core/domain"
)

// CaseRepository defines persistence for case records.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	FindAll(ctx context.Context) ([]domain.Case, error)
	FindByID(ctx context.Context, id string) (*domain.Case, error)
	UpdateByID(ctx context.Context, id, title, content string) (*domain.Case, error)
	DeleteByID(ctx context.Context, id string) error
}
