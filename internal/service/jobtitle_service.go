package service

import (
	"context"
	"strings"

	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
	"github.com/sampleemps-api/internal/repository"
)

// JobTitleService определяет интерфейс бизнес-логики для должностей
type JobTitleService interface {
	Create(ctx context.Context, req *dto.CreateJobTitleRequest) (*domain.JobTitle, error)
	GetByID(ctx context.Context, id int64) (*domain.JobTitle, error)
	List(ctx context.Context) ([]domain.JobTitle, error)
}

type jobTitleService struct {
	jobRepo repository.JobTitleRepository
}

// NewJobTitleService создаёт новый экземпляр сервиса
func NewJobTitleService(jobRepo repository.JobTitleRepository) JobTitleService {
	return &jobTitleService{jobRepo: jobRepo}
}

func (s *jobTitleService) Create(ctx context.Context, req *dto.CreateJobTitleRequest) (*domain.JobTitle, error) {
	title := strings.TrimSpace(req.Title)

	exists, err := s.jobRepo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateJobTitle
	}

	jt := &domain.JobTitle{Title: title}
	if err := s.jobRepo.Create(ctx, jt); err != nil {
		return nil, err
	}

	return jt, nil
}

func (s *jobTitleService) GetByID(ctx context.Context, id int64) (*domain.JobTitle, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobTitleService) List(ctx context.Context) ([]domain.JobTitle, error) {
	return s.jobRepo.List(ctx)
}
