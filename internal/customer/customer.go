package customer

import (
	"time"

	customerDatamodel "github.com/nattawut/office-management/internal/core/datamodel/customer"
)

// Customer is a business contact owned by the sales function. CreatedBy is a
// provenance reference only; it carries no ownership semantics.
type Customer struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CompanyName   *string   `json:"company_name,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Status        string    `json:"status"`
	CreatedBy     *int64    `json:"created_by,omitempty"`
	CreatedByName *string   `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToDataModel(c *Customer) *customerDatamodel.Customer {
	return &customerDatamodel.Customer{
		ID:            c.ID,
		CustomerName:  c.CustomerName,
		CompanyName:   c.CompanyName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		Status:        c.Status,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromDataModel(c *customerDatamodel.Customer) *Customer {
	return &Customer{
		ID:            c.ID,
		CustomerName:  c.CustomerName,
		CompanyName:   c.CompanyName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		Status:        c.Status,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromListModel(c *customerDatamodel.CustomerWithCreator) *Customer {
	domain := FromDataModel(&c.Customer)
	domain.CreatedByName = c.CreatedByName
	return domain
}
