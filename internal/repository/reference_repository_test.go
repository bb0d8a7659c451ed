package repository_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/repository"
)

var _ = Describe("JobTitle Repository", func() {
	var (
		ctx  context.Context
		repo repository.JobTitleRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = repository.NewJobTitleRepository(openTestDB())
	})

	It("creates and lists job titles in id order", func() {
		Expect(repo.Create(ctx, &domain.JobTitle{Title: "Engineer"})).To(Succeed())
		Expect(repo.Create(ctx, &domain.JobTitle{Title: "Analyst"})).To(Succeed())

		list, err := repo.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
		Expect(list[0].Title).To(Equal("Engineer"))
	})

	It("detects existing titles regardless of case", func() {
		Expect(repo.Create(ctx, &domain.JobTitle{Title: "Engineer"})).To(Succeed())

		exists, err := repo.ExistsByTitle(ctx, "engineer")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("maps a unique index violation to ErrDuplicateJobTitle", func() {
		Expect(repo.Create(ctx, &domain.JobTitle{Title: "Engineer"})).To(Succeed())

		err := repo.Create(ctx, &domain.JobTitle{Title: "Engineer"})
		Expect(err).To(MatchError(domain.ErrDuplicateJobTitle))
	})

	It("returns ErrJobTitleNotFound for a missing id", func() {
		_, err := repo.GetByID(ctx, 42)
		Expect(err).To(MatchError(domain.ErrJobTitleNotFound))
	})
})

var _ = Describe("Department Repository", func() {
	var (
		ctx  context.Context
		repo repository.DepartmentRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = repository.NewDepartmentRepository(openTestDB())
	})

	It("creates and fetches a department", func() {
		dept := &domain.Department{Name: "Research"}
		Expect(repo.Create(ctx, dept)).To(Succeed())
		Expect(dept.ID).To(BeNumerically(">", 0))

		found, err := repo.GetByID(ctx, dept.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("Research"))

		exists, err := repo.ExistsByName(ctx, "Research")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("maps a unique index violation to ErrDuplicateDepartmentName", func() {
		Expect(repo.Create(ctx, &domain.Department{Name: "Research"})).To(Succeed())

		err := repo.Create(ctx, &domain.Department{Name: "Research"})
		Expect(err).To(MatchError(domain.ErrDuplicateDepartmentName))
	})

	It("returns ErrDepartmentNotFound for a missing id", func() {
		_, err := repo.GetByID(ctx, 7)
		Expect(err).To(MatchError(domain.ErrDepartmentNotFound))
	})
})
