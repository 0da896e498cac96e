package employee

import (
	"time"

	employeeDatamodel "github.com/nattawut/office-management/internal/core/datamodel/employee"
	"github.com/shopspring/decimal"
)

// Employee is an HR personnel record. EmployeeID is the human-assigned badge
// code, distinct from the numeric primary key.
type Employee struct {
	ID            int64               `json:"id"`
	EmployeeID    string              `json:"employee_id"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	Email         *string             `json:"email,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	Position      *string             `json:"position,omitempty"`
	Department    *string             `json:"department,omitempty"`
	Salary        decimal.NullDecimal `json:"salary"`
	HireDate      *time.Time          `json:"hire_date,omitempty"`
	Status        string              `json:"status"`
	CreatedBy     *int64              `json:"created_by,omitempty"`
	CreatedByName *string             `json:"created_by_name,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Status:     e.Status,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Status:     e.Status,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromListModel(e *employeeDatamodel.EmployeeWithCreator) *Employee {
	domain := FromDataModel(&e.Employee)
	domain.CreatedByName = e.CreatedByName
	return domain
}
