package repository

import (
	"context"
	"errors"

	"github.com/sampleemps-api/internal/domain"
	"gorm.io/gorm"
)

// JobTitleRepository определяет интерфейс для работы с должностями
type JobTitleRepository interface {
	Create(ctx context.Context, jt *domain.JobTitle) error
	GetByID(ctx context.Context, id int64) (*domain.JobTitle, error)
	List(ctx context.Context) ([]domain.JobTitle, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

type jobTitleRepository struct {
	db *gorm.DB
}

// NewJobTitleRepository создаёт новый экземпляр репозитория
func NewJobTitleRepository(db *gorm.DB) JobTitleRepository {
	return &jobTitleRepository{db: db}
}

func (r *jobTitleRepository) Create(ctx context.Context, jt *domain.JobTitle) error {
	err := r.db.WithContext(ctx).Create(jt).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateJobTitle
	}
	return err
}

func (r *jobTitleRepository) GetByID(ctx context.Context, id int64) (*domain.JobTitle, error) {
	var jt domain.JobTitle
	err := r.db.WithContext(ctx).First(&jt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobTitleNotFound
		}
		return nil, err
	}
	return &jt, nil
}

func (r *jobTitleRepository) List(ctx context.Context) ([]domain.JobTitle, error) {
	var titles []domain.JobTitle
	err := r.db.WithContext(ctx).Order("id ASC").Find(&titles).Error
	return titles, err
}

func (r *jobTitleRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.JobTitle{}).
		Where("LOWER(title) = LOWER(?)", title).
		Count(&count).Error
	return count > 0, err
}
