package customer_test

import (
	"log/slog"
	"os"
	"testing"

	internal "github.com/nattawut/office-management/internal"
	customerDatamodel "github.com/nattawut/office-management/internal/core/datamodel/customer"
	"github.com/nattawut/office-management/internal/customer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCustomerService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Customer Service Suite")
}

// MockRepository implements customer.Repository for testing
type MockRepository struct {
	customers map[int64]*customerDatamodel.Customer
	nextID    int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		customers: make(map[int64]*customerDatamodel.Customer),
		nextID:    1,
	}
}

func (m *MockRepository) GetAllWithCreator() ([]*customerDatamodel.CustomerWithCreator, error) {
	var result []*customerDatamodel.CustomerWithCreator
	for _, c := range m.customers {
		result = append(result, &customerDatamodel.CustomerWithCreator{Customer: *c})
	}
	return result, nil
}

func (m *MockRepository) GetByID(id int64) (*customerDatamodel.Customer, error) {
	c, exists := m.customers[id]
	if !exists {
		return nil, internal.ErrCustomerNotFound
	}
	return c, nil
}

func (m *MockRepository) Create(c *customerDatamodel.Customer) error {
	c.ID = m.nextID
	m.nextID++
	m.customers[c.ID] = c
	return nil
}

func (m *MockRepository) Update(c *customerDatamodel.Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if _, exists := m.customers[id]; !exists {
		return internal.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

var _ = Describe("Customer Service", func() {
	var (
		mockRepo *MockRepository
		service  *customer.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = customer.NewService(mockRepo, nil, slogger)
	})

	Describe("Create", func() {
		It("should stamp the creator from the authenticated actor", func() {
			created, err := service.Create(customer.CreateCustomerDTO{
				CustomerName: "Acme Corporation",
			}, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.CreatedBy).NotTo(BeNil())
			Expect(*created.CreatedBy).To(Equal(int64(42)))
		})

		It("should default the status to active", func() {
			created, err := service.Create(customer.CreateCustomerDTO{
				CustomerName: "Acme Corporation",
			}, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal("active"))
		})

		It("should keep an explicit status", func() {
			created, err := service.Create(customer.CreateCustomerDTO{
				CustomerName: "Dormant Inc",
				Status:       "inactive",
			}, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal("inactive"))
		})

		It("should reject an empty customer name", func() {
			_, err := service.Create(customer.CreateCustomerDTO{}, 42)
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("Update", func() {
		var existing *customer.Customer

		BeforeEach(func() {
			created, err := service.Create(customer.CreateCustomerDTO{
				CustomerName: "Acme Corporation",
			}, 42)
			Expect(err).NotTo(HaveOccurred())
			existing = created
		})

		It("should replace the editable fields", func() {
			company := "Acme Holdings"
			updated, err := service.Update(existing.ID, customer.UpdateCustomerDTO{
				CustomerName: "Acme Corp",
				CompanyName:  &company,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CustomerName).To(Equal("Acme Corp"))
			Expect(updated.CompanyName).To(Equal(&company))
		})

		It("should preserve provenance across updates", func() {
			updated, err := service.Update(existing.ID, customer.UpdateCustomerDTO{
				CustomerName: "Acme Corp",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CreatedBy).NotTo(BeNil())
			Expect(*updated.CreatedBy).To(Equal(int64(42)))
		})

		It("should return the typed not-found error for a missing customer", func() {
			_, err := service.Update(999, customer.UpdateCustomerDTO{CustomerName: "Ghost"})
			Expect(err).To(Equal(internal.ErrCustomerNotFound))
		})
	})

	Describe("Delete", func() {
		It("should delete an existing customer", func() {
			created, err := service.Create(customer.CreateCustomerDTO{
				CustomerName: "Acme Corporation",
			}, 42)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(created.ID, 42)).To(Succeed())
			Expect(mockRepo.customers).NotTo(HaveKey(created.ID))
		})

		It("should return the typed not-found error for a missing customer", func() {
			Expect(service.Delete(999, 42)).To(Equal(internal.ErrCustomerNotFound))
		})
	})
})
