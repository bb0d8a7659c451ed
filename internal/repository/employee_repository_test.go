package repository_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/repository"
	"gorm.io/gorm"
)

var _ = Describe("Employee Repository", func() {
	var (
		ctx      context.Context
		db       *gorm.DB
		repo     repository.EmployeeRepository
		titles   repository.JobTitleRepository
		engineer *domain.JobTitle
		lead     *domain.JobTitle
	)

	createEmployee := func(name, email string, links ...domain.EmployeeJobTitle) *domain.Employee {
		emp := &domain.Employee{Name: name, Email: email, JobTitles: links}
		Expect(repo.Create(ctx, emp)).To(Succeed())
		return emp
	}

	linkCount := func(employeeID int64) int64 {
		var count int64
		Expect(db.Model(&domain.EmployeeJobTitle{}).Where("employee_id = ?", employeeID).Count(&count).Error).To(Succeed())
		return count
	}

	BeforeEach(func() {
		ctx = context.Background()
		db = openTestDB()
		repo = repository.NewEmployeeRepository(db)
		titles = repository.NewJobTitleRepository(db)

		engineer = &domain.JobTitle{Title: "Engineer"}
		lead = &domain.JobTitle{Title: "Team Lead"}
		Expect(titles.Create(ctx, engineer)).To(Succeed())
		Expect(titles.Create(ctx, lead)).To(Succeed())
	})

	Describe("Create", func() {
		It("assigns distinct ids to sequential inserts", func() {
			ada := createEmployee("Ada", "ada@x.com")
			bob := createEmployee("Bob", "bob@x.com")

			Expect(ada.ID).To(BeNumerically(">", 0))
			Expect(bob.ID).To(BeNumerically(">", 0))
			Expect(bob.ID).NotTo(Equal(ada.ID))
		})

		It("stores job title links", func() {
			ada := createEmployee("Ada", "ada@x.com",
				domain.EmployeeJobTitle{JobTitleID: engineer.ID, Manager: "Stumps"},
			)

			found, err := repo.GetByID(ctx, ada.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.JobTitles).To(HaveLen(1))
			Expect(found.JobTitles[0].Manager).To(Equal("Stumps"))
			Expect(found.JobTitles[0].JobTitle).NotTo(BeNil())
			Expect(found.JobTitles[0].JobTitle.Title).To(Equal("Engineer"))
		})
	})

	Describe("GetByID", func() {
		It("returns the stored record", func() {
			ada := createEmployee("Ada", "ada@x.com")

			found, err := repo.GetByID(ctx, ada.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(ada.ID))
			Expect(found.Name).To(Equal("Ada"))
			Expect(found.Email).To(Equal("ada@x.com"))
		})

		It("returns ErrEmployeeNotFound for a missing id", func() {
			_, err := repo.GetByID(ctx, 999)
			Expect(err).To(MatchError(domain.ErrEmployeeNotFound))
		})
	})

	Describe("substring search", func() {
		BeforeEach(func() {
			createEmployee("Ada", "ada@lovelace.org")
			createEmployee("Bob", "bob@example.com")
			createEmployee("Dana", "DANA@EXAMPLE.COM")
		})

		It("matches names case-insensitively", func() {
			found, err := repo.FindByNameContaining(ctx, "DA")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(2))
			Expect(found[0].Name).To(Equal("Ada"))
			Expect(found[1].Name).To(Equal("Dana"))
		})

		It("matches emails", func() {
			found, err := repo.FindByEmailContaining(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(2))
		})

		It("returns an empty result when nothing matches", func() {
			found, err := repo.FindByNameContaining(ctx, "zed")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeEmpty())
		})

		It("matches non-ASCII names as stored and in any case", func() {
			createEmployee("Ärger Ölsen", "aerger@x.com")

			found, err := repo.FindByNameContaining(ctx, "Ärger")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Name).To(Equal("Ärger Ölsen"))

			found, err = repo.FindByNameContaining(ctx, "ölsen")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
		})

		It("treats LIKE wildcards literally", func() {
			createEmployee("100%_real", "real@x.com")

			found, err := repo.FindByNameContaining(ctx, "%_")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Name).To(Equal("100%_real"))
		})
	})

	Describe("Update", func() {
		It("overwrites fields and replaces the job title set", func() {
			ada := createEmployee("Ada", "ada@x.com",
				domain.EmployeeJobTitle{JobTitleID: engineer.ID, Manager: "Stumps"},
			)

			Expect(repo.Update(ctx, &domain.Employee{
				ID:        ada.ID,
				Name:      "Ada Lovelace",
				Email:     "countess@x.com",
				JobTitles: []domain.EmployeeJobTitle{{JobTitleID: lead.ID, Manager: "Ford"}},
			})).To(Succeed())

			found, err := repo.GetByID(ctx, ada.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("Ada Lovelace"))
			Expect(found.Email).To(Equal("countess@x.com"))
			Expect(found.JobTitles).To(HaveLen(1))
			Expect(found.JobTitles[0].JobTitleID).To(Equal(lead.ID))
		})

		It("returns ErrEmployeeNotFound for a missing id", func() {
			err := repo.Update(ctx, &domain.Employee{ID: 999, Name: "Ghost", Email: "g@x.com"})
			Expect(err).To(MatchError(domain.ErrEmployeeNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes the employee and all of its links", func() {
			ada := createEmployee("Ada", "ada@x.com",
				domain.EmployeeJobTitle{JobTitleID: engineer.ID},
				domain.EmployeeJobTitle{JobTitleID: lead.ID},
			)
			Expect(linkCount(ada.ID)).To(Equal(int64(2)))

			Expect(repo.Delete(ctx, ada.ID)).To(Succeed())

			_, err := repo.GetByID(ctx, ada.ID)
			Expect(err).To(MatchError(domain.ErrEmployeeNotFound))
			Expect(linkCount(ada.ID)).To(BeZero())
		})

		It("returns ErrEmployeeNotFound for a missing id", func() {
			Expect(repo.Delete(ctx, 999)).To(MatchError(domain.ErrEmployeeNotFound))
		})
	})

	Describe("job title links", func() {
		It("upserts without duplicating", func() {
			ada := createEmployee("Ada", "ada@x.com")

			Expect(repo.SaveJobTitle(ctx, ada.ID, engineer.ID, "Stumps")).To(Succeed())
			Expect(repo.SaveJobTitle(ctx, ada.ID, engineer.ID, "Stumps")).To(Succeed())
			Expect(linkCount(ada.ID)).To(Equal(int64(1)))

			Expect(repo.SaveJobTitle(ctx, ada.ID, engineer.ID, "Ford")).To(Succeed())
			found, err := repo.GetByID(ctx, ada.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.JobTitles).To(HaveLen(1))
			Expect(found.JobTitles[0].Manager).To(Equal("Ford"))
		})

		It("fails the second delete of the same link", func() {
			ada := createEmployee("Ada", "ada@x.com",
				domain.EmployeeJobTitle{JobTitleID: engineer.ID},
			)

			Expect(repo.DeleteJobTitle(ctx, ada.ID, engineer.ID)).To(Succeed())
			Expect(repo.DeleteJobTitle(ctx, ada.ID, engineer.ID)).To(MatchError(domain.ErrEmployeeJobTitleNotFound))
		})
	})

	Describe("CountJobTitles", func() {
		It("reports every employee, including those without titles", func() {
			createEmployee("Ada", "ada@x.com",
				domain.EmployeeJobTitle{JobTitleID: engineer.ID},
				domain.EmployeeJobTitle{JobTitleID: lead.ID},
			)
			createEmployee("Bob", "bob@x.com")

			counts, err := repo.CountJobTitles(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal([]domain.EmpNameCountJobs{
				{Name: "Ada", JobCount: 2},
				{Name: "Bob", JobCount: 0},
			}))
		})
	})
})
