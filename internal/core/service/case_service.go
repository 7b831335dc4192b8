package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fastlegal/case-service/internal/api/metrics"
	"github.com/fastlegal/case-service/internal/core/domain"
	"github.com/fastlegal/case-service/internal/core/ports"
)

// CaseService implements CRUD on case records. Every operation is a single
// store call; field presence is enforced at the handler layer.
type CaseService struct {
	repo   ports.CaseRepository
	logger zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, logger: logger}
}

func (s *CaseService) Create(ctx context.Context, title, content string) (*domain.Case, error) {
	created, err := s.repo.Create(ctx, &domain.Case{Title: title, Content: content})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create case")
		return nil, err
	}

	metrics.CasesCreatedTotal.Inc()
	s.logger.Info().Str("case_id", created.ID).Msg("case created")
	return created, nil
}

func (s *CaseService) Update(ctx context.Context, id, title, content string) (*domain.Case, error) {
	return s.repo.UpdateByID(ctx, id, title, content)
}

// Delete removes the record. Deleting an unknown id is not an error.
func (s *CaseService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.repo.FindAll(ctx)
}

func (s *CaseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.repo.FindByID(ctx, id)
}
