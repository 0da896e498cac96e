package employee

import (
	"time"

	internal "github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

const hireDateLayout = "2006-01-02"

type CreateEmployeeDTO struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Salary     *string `json:"salary,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	Status     string  `json:"status,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required().MaxLength(50)
	v.Field("first_name", dto.FirstName).Required().MaxLength(100)
	v.Field("last_name", dto.LastName).Required().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	if _, err := parseSalary(dto.Salary); err != nil {
		return err
	}
	if _, err := parseHireDate(dto.HireDate); err != nil {
		return err
	}
	return nil
}

type UpdateEmployeeDTO struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Salary     *string `json:"salary,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	Status     string  `json:"status,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required().MaxLength(50)
	v.Field("first_name", dto.FirstName).Required().MaxLength(100)
	v.Field("last_name", dto.LastName).Required().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	if _, err := parseSalary(dto.Salary); err != nil {
		return err
	}
	if _, err := parseHireDate(dto.HireDate); err != nil {
		return err
	}
	return nil
}

func parseSalary(raw *string) (decimal.NullDecimal, error) {
	if raw == nil || *raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, internal.NewValidationError("salary must be a decimal number", internal.ErrCodeValidationFailed)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func parseHireDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(hireDateLayout, *raw)
	if err != nil {
		return nil, internal.NewValidationError("hire_date must be formatted as YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	return &t, nil
}
