package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/sampleemps-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками и их должностями
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByNameContaining(ctx context.Context, subname string) ([]domain.Employee, error)
	FindByEmailContaining(ctx context.Context, subemail string) ([]domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	SaveJobTitle(ctx context.Context, employeeID, jobTitleID int64, manager string) error
	DeleteJobTitle(ctx context.Context, employeeID, jobTitleID int64) error
	CountJobTitles(ctx context.Context) ([]domain.EmpNameCountJobs, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Department").
		Preload("JobTitles", func(db *gorm.DB) *gorm.DB {
			return db.Order("jobtitle_id ASC")
		}).
		Preload("JobTitles.JobTitle")
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.withRelations(ctx).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.withRelations(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) FindByNameContaining(ctx context.Context, subname string) ([]domain.Employee, error) {
	return r.findContaining(ctx, "name", subname)
}

func (r *employeeRepository) FindByEmailContaining(ctx context.Context, subemail string) ([]domain.Employee, error) {
	return r.findContaining(ctx, "email", subemail)
}

// findContaining ищет без учёта регистра; column приходит только из кода
func (r *employeeRepository) findContaining(ctx context.Context, column, needle string) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.withRelations(ctx).
		Where("LOWER("+column+") LIKE ? ESCAPE '\\'", likePattern(needle)).
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(needle string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(needle)) + "%"
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(emp).Error; err != nil {
			return err
		}
		return insertJobTitles(tx, emp)
	})
}

// Update перезаписывает все поля сотрудника и полностью заменяет набор его должностей
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(emp).
			Select("Name", "Email", "DepartmentID", "UpdatedAt").
			Omit(clause.Associations).
			Updates(emp)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}

		if err := tx.Where("employee_id = ?", emp.ID).Delete(&domain.EmployeeJobTitle{}).Error; err != nil {
			return err
		}
		return insertJobTitles(tx, emp)
	})
}

func insertJobTitles(tx *gorm.DB, emp *domain.Employee) error {
	if len(emp.JobTitles) == 0 {
		return nil
	}
	for i := range emp.JobTitles {
		emp.JobTitles[i].EmployeeID = emp.ID
	}
	return tx.Omit(clause.Associations).Create(&emp.JobTitles).Error
}

// Delete удаляет сотрудника вместе со всеми его связями с должностями
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&domain.EmployeeJobTitle{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Employee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}
		return nil
	})
}

// SaveJobTitle создаёт связь или обновляет manager у существующей
func (r *employeeRepository) SaveJobTitle(ctx context.Context, employeeID, jobTitleID int64, manager string) error {
	link := domain.EmployeeJobTitle{
		EmployeeID: employeeID,
		JobTitleID: jobTitleID,
		Manager:    manager,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "jobtitle_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"manager", "updated_at"}),
		}).
		Omit(clause.Associations).
		Create(&link).Error
}

func (r *employeeRepository) DeleteJobTitle(ctx context.Context, employeeID, jobTitleID int64) error {
	result := r.db.WithContext(ctx).
		Where("employee_id = ? AND jobtitle_id = ?", employeeID, jobTitleID).
		Delete(&domain.EmployeeJobTitle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeJobTitleNotFound
	}
	return nil
}

func (r *employeeRepository) CountJobTitles(ctx context.Context) ([]domain.EmpNameCountJobs, error) {
	var counts []domain.EmpNameCountJobs
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.name AS name, COUNT(ej.jobtitle_id) AS job_count").
		Joins("LEFT JOIN employee_jobtitles AS ej ON ej.employee_id = e.id").
		Group("e.id, e.name").
		Order("e.id ASC").
		Scan(&counts).Error
	return counts, err
}
