// Package seed заполняет базу демонстрационными данными.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
	"github.com/sampleemps-api/internal/service"
	"gorm.io/gorm"
)

type employeeSeed struct {
	name       string
	email      string
	department string
	titles     map[string]string // должность -> manager
}

var (
	departments = []string{"Engineering", "Finance", "Operations"}
	jobTitles   = []string{"Big Boss", "Wizard", "Knower of All Things", "Designer"}

	employees = []employeeSeed{
		{
			name:       "CINNAMON",
			email:      "cinnamon@lambdaschool.local",
			department: "Operations",
			titles:     map[string]string{"Big Boss": "Stumps", "Wizard": "Ford"},
		},
		{
			name:       "BARNBARN",
			email:      "barnbarn@lambdaschool.local",
			department: "Engineering",
			titles:     map[string]string{"Knower of All Things": "Stumps"},
		},
		{
			name:       "JOHN MITCHUM",
			email:      "john@mitchum.local",
			department: "Finance",
		},
	}
)

// Seeder создаёт данные через сервисы, чтобы соблюдались те же правила, что и в API
type Seeder struct {
	db          *gorm.DB
	empService  service.EmployeeService
	jobService  service.JobTitleService
	deptService service.DepartmentService
	logger      *slog.Logger
}

func NewSeeder(
	db *gorm.DB,
	empService service.EmployeeService,
	jobService service.JobTitleService,
	deptService service.DepartmentService,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		db:          db,
		empService:  empService,
		jobService:  jobService,
		deptService: deptService,
		logger:      logger,
	}
}

// Run заполняет базу. Если сотрудники уже есть и clear == false, ничего не делает.
func (s *Seeder) Run(ctx context.Context, clear bool) error {
	if clear {
		if err := s.clear(ctx); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
	}

	existing, err := s.empService.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Info("database already seeded, skipping", slog.Int("employees", len(existing)))
		return nil
	}

	deptIDs := make(map[string]int64, len(departments))
	for _, name := range departments {
		dept, err := s.deptService.Create(ctx, &dto.CreateDepartmentRequest{Name: name})
		if err != nil {
			return fmt.Errorf("failed to seed department %q: %w", name, err)
		}
		deptIDs[name] = dept.ID
	}

	titleIDs := make(map[string]int64, len(jobTitles))
	for _, title := range jobTitles {
		jt, err := s.jobService.Create(ctx, &dto.CreateJobTitleRequest{Title: title})
		if err != nil {
			return fmt.Errorf("failed to seed job title %q: %w", title, err)
		}
		titleIDs[title] = jt.ID
	}

	for _, e := range employees {
		deptID := deptIDs[e.department]
		emp := &domain.Employee{
			Name:         e.name,
			Email:        e.email,
			DepartmentID: &deptID,
		}
		for _, title := range jobTitles {
			if manager, ok := e.titles[title]; ok {
				emp.JobTitles = append(emp.JobTitles, domain.EmployeeJobTitle{
					JobTitleID: titleIDs[title],
					Manager:    manager,
				})
			}
		}

		if _, err := s.empService.Save(ctx, emp); err != nil {
			return fmt.Errorf("failed to seed employee %q: %w", e.name, err)
		}
	}

	s.logger.Info("seed completed",
		slog.Int("departments", len(departments)),
		slog.Int("jobtitles", len(jobTitles)),
		slog.Int("employees", len(employees)),
	)
	return nil
}

func (s *Seeder) clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{
			&domain.EmployeeJobTitle{},
			&domain.Employee{},
			&domain.JobTitle{},
			&domain.Department{},
		} {
			if err := tx.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
