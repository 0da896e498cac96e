package customer

import (
	"github.com/nattawut/office-management/internal/core/common/validation"
)

type CreateCustomerDTO struct {
	CustomerName  string  `json:"customer_name"`
	CompanyName   *string `json:"company_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Status        string  `json:"status,omitempty"`
}

func (dto CreateCustomerDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("customer_name", dto.CustomerName).Required().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateCustomerDTO struct {
	CustomerName  string  `json:"customer_name"`
	CompanyName   *string `json:"company_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Status        string  `json:"status,omitempty"`
}

func (dto UpdateCustomerDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("customer_name", dto.CustomerName).Required().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
