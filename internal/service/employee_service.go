package service

import (
	"context"
	"strings"

	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
	"github.com/sampleemps-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByNameContaining(ctx context.Context, subname string) ([]domain.Employee, error)
	FindByEmailContaining(ctx context.Context, subemail string) ([]domain.Employee, error)
	Save(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, req *dto.UpdateEmployeeRequest, id int64) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	DeleteEmpJobTitle(ctx context.Context, employeeID, jobTitleID int64) error
	AddEmpJobTitle(ctx context.Context, employeeID, jobTitleID int64, manager string) error
	GetEmpNameCountJobs(ctx context.Context) ([]domain.EmpNameCountJobs, error)
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	jobRepo  repository.JobTitleRepository
	deptRepo repository.DepartmentRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	jobRepo repository.JobTitleRepository,
	deptRepo repository.DepartmentRepository,
) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		jobRepo:  jobRepo,
		deptRepo: deptRepo,
	}
}

func (s *employeeService) FindAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) FindByNameContaining(ctx context.Context, subname string) ([]domain.Employee, error) {
	return s.empRepo.FindByNameContaining(ctx, subname)
}

func (s *employeeService) FindByEmailContaining(ctx context.Context, subemail string) ([]domain.Employee, error) {
	return s.empRepo.FindByEmailContaining(ctx, subemail)
}

// Save создаёт сотрудника при ID == 0, иначе полностью заменяет существующего:
// поля, не переданные в emp, перезаписываются пустыми значениями.
func (s *employeeService) Save(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	emp.Name = strings.TrimSpace(emp.Name)
	emp.Email = strings.TrimSpace(emp.Email)

	if err := s.checkDepartment(ctx, emp.DepartmentID); err != nil {
		return nil, err
	}

	links, err := s.resolveJobTitles(ctx, emp.JobTitles)
	if err != nil {
		return nil, err
	}
	emp.JobTitles = links

	if emp.ID == 0 {
		if err := s.empRepo.Create(ctx, emp); err != nil {
			return nil, err
		}
		return s.empRepo.GetByID(ctx, emp.ID)
	}

	// Проверяем существование: PUT не создаёт новых сотрудников
	if _, err := s.empRepo.GetByID(ctx, emp.ID); err != nil {
		return nil, err
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return s.empRepo.GetByID(ctx, emp.ID)
}

// Update переносит в сотрудника только переданные (не nil) поля
func (s *employeeService) Update(ctx context.Context, req *dto.UpdateEmployeeRequest, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		emp.Email = strings.TrimSpace(*req.Email)
	}

	if req.DepartmentID != nil {
		if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
		emp.DepartmentID = req.DepartmentID
		emp.Department = nil
	}

	// Пустой список должностей не сбрасывает текущие
	if len(req.JobTitles) > 0 {
		links := make([]domain.EmployeeJobTitle, 0, len(req.JobTitles))
		for _, jt := range req.JobTitles {
			links = append(links, domain.EmployeeJobTitle{JobTitleID: jt.JobTitleID, Manager: jt.Manager})
		}
		emp.JobTitles, err = s.resolveJobTitles(ctx, links)
		if err != nil {
			return nil, err
		}
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

func (s *employeeService) DeleteEmpJobTitle(ctx context.Context, employeeID, jobTitleID int64) error {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}
	if _, err := s.jobRepo.GetByID(ctx, jobTitleID); err != nil {
		return err
	}
	return s.empRepo.DeleteJobTitle(ctx, employeeID, jobTitleID)
}

func (s *employeeService) AddEmpJobTitle(ctx context.Context, employeeID, jobTitleID int64, manager string) error {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}
	if _, err := s.jobRepo.GetByID(ctx, jobTitleID); err != nil {
		return err
	}
	return s.empRepo.SaveJobTitle(ctx, employeeID, jobTitleID, strings.TrimSpace(manager))
}

func (s *employeeService) GetEmpNameCountJobs(ctx context.Context) ([]domain.EmpNameCountJobs, error) {
	return s.empRepo.CountJobTitles(ctx)
}

func (s *employeeService) checkDepartment(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := s.deptRepo.GetByID(ctx, *id)
	return err
}

// resolveJobTitles проверяет, что должности существуют, и схлопывает повторы:
// при повторе одной должности побеждает последний manager.
func (s *employeeService) resolveJobTitles(ctx context.Context, links []domain.EmployeeJobTitle) ([]domain.EmployeeJobTitle, error) {
	if len(links) == 0 {
		return nil, nil
	}

	position := make(map[int64]int, len(links))
	result := make([]domain.EmployeeJobTitle, 0, len(links))

	for _, link := range links {
		jt, err := s.jobRepo.GetByID(ctx, link.JobTitleID)
		if err != nil {
			return nil, err
		}

		resolved := domain.EmployeeJobTitle{
			JobTitleID: jt.ID,
			Manager:    strings.TrimSpace(link.Manager),
			JobTitle:   jt,
		}

		if i, ok := position[jt.ID]; ok {
			result[i] = resolved
			continue
		}
		position[jt.ID] = len(result)
		result = append(result, resolved)
	}

	return result, nil
}
