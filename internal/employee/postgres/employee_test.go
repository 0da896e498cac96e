package postgres_test

import (
	"testing"
	"time"

	internal "github.com/nattawut/office-management/internal"
	employeeDatamodel "github.com/nattawut/office-management/internal/core/datamodel/employee"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
	"github.com/nattawut/office-management/internal/employee"
	employeePostgres "github.com/nattawut/office-management/internal/employee/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

var _ = Describe("Employee Repository", func() {
	var (
		db      *gorm.DB
		repo    employee.Repository
		creator *userDatamodel.User
	)

	newEmployee := func(badge string, email *string) *employeeDatamodel.Employee {
		return &employeeDatamodel.Employee{
			EmployeeID: badge,
			FirstName:  "Somchai",
			LastName:   "Jaidee",
			Email:      email,
			Status:     "active",
			CreatedBy:  &creator.ID,
		}
	}

	str := func(s string) *string { return &s }

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{}, &employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		creator = &userDatamodel.User{
			Username:     "hr01",
			Email:        "hr@company.com",
			PasswordHash: "irrelevant",
			Role:         "hr",
			FullName:     "HR Manager",
		}
		Expect(db.Create(creator).Error).To(Succeed())

		repo = employeePostgres.NewEmployeeRepository(db)
	})

	Describe("Create", func() {
		It("should create an employee record", func() {
			salary, err := decimal.NewFromString("55000.00")
			Expect(err).NotTo(HaveOccurred())

			e := newEmployee("EMP001", str("somchai@company.com"))
			e.Salary = decimal.NullDecimal{Decimal: salary, Valid: true}
			Expect(repo.Create(e)).To(Succeed())
			Expect(e.ID).To(BeNumerically(">", 0))

			got, err := repo.GetByID(e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Salary.Valid).To(BeTrue())
			Expect(got.Salary.Decimal.Equal(salary)).To(BeTrue())
		})

		It("should map a duplicate badge code to the conflict error", func() {
			Expect(repo.Create(newEmployee("EMP001", nil))).To(Succeed())

			err := repo.Create(newEmployee("EMP001", nil))
			Expect(err).To(Equal(internal.ErrEmployeeExists))
		})

		It("should map a duplicate email to the conflict error", func() {
			Expect(repo.Create(newEmployee("EMP001", str("somchai@company.com")))).To(Succeed())

			err := repo.Create(newEmployee("EMP002", str("somchai@company.com")))
			Expect(err).To(Equal(internal.ErrEmployeeExists))
		})

		It("should allow multiple records without an email", func() {
			Expect(repo.Create(newEmployee("EMP001", nil))).To(Succeed())
			Expect(repo.Create(newEmployee("EMP002", nil))).To(Succeed())
		})
	})

	Describe("GetAllWithCreator", func() {
		It("should return employees newest first with the creator name", func() {
			Expect(repo.Create(newEmployee("EMP001", nil))).To(Succeed())
			time.Sleep(10 * time.Millisecond)
			Expect(repo.Create(newEmployee("EMP002", nil))).To(Succeed())

			rows, err := repo.GetAllWithCreator()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].EmployeeID).To(Equal("EMP002"))
			Expect(rows[1].EmployeeID).To(Equal("EMP001"))

			Expect(rows[0].CreatedByName).NotTo(BeNil())
			Expect(*rows[0].CreatedByName).To(Equal("HR Manager"))
		})
	})

	Describe("Update", func() {
		It("should persist field changes", func() {
			e := newEmployee("EMP001", nil)
			Expect(repo.Create(e)).To(Succeed())

			position := "Senior Engineer"
			e.Position = &position
			Expect(repo.Update(e)).To(Succeed())

			got, err := repo.GetByID(e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Position).NotTo(BeNil())
			Expect(*got.Position).To(Equal("Senior Engineer"))
		})

		It("should map a badge collision to the conflict error", func() {
			a := newEmployee("EMP001", nil)
			b := newEmployee("EMP002", nil)
			Expect(repo.Create(a)).To(Succeed())
			Expect(repo.Create(b)).To(Succeed())

			b.EmployeeID = "EMP001"
			Expect(repo.Update(b)).To(Equal(internal.ErrEmployeeExists))
		})
	})

	Describe("Delete", func() {
		It("should remove the row", func() {
			e := newEmployee("EMP001", nil)
			Expect(repo.Create(e)).To(Succeed())

			Expect(repo.Delete(e.ID)).To(Succeed())
			_, err := repo.GetByID(e.ID)
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})

		It("should return the typed not-found error for a missing ID", func() {
			Expect(repo.Delete(999)).To(Equal(internal.ErrEmployeeNotFound))
		})
	})
})
