package customer

import "time"

type Customer struct {
	ID            int64     `gorm:"primaryKey"`
	CustomerName  string    `gorm:"column:customer_name;not null"`
	CompanyName   *string   `gorm:"column:company_name"`
	Email         *string   `gorm:"column:email"`
	Phone         *string   `gorm:"column:phone"`
	Address       *string   `gorm:"column:address"`
	ContactPerson *string   `gorm:"column:contact_person"`
	Status        string    `gorm:"column:status;default:active"`
	CreatedBy     *int64    `gorm:"column:created_by"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerWithCreator is the list projection: a customer row joined with the
// creating user's display name.
type CustomerWithCreator struct {
	Customer
	CreatedByName *string `gorm:"column:created_by_name"`
}
