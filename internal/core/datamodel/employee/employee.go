package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         int64               `gorm:"primaryKey"`
	EmployeeID string              `gorm:"column:employee_id;uniqueIndex;not null"`
	FirstName  string              `gorm:"column:first_name;not null"`
	LastName   string              `gorm:"column:last_name;not null"`
	Email      *string             `gorm:"column:email;uniqueIndex"`
	Phone      *string             `gorm:"column:phone"`
	Position   *string             `gorm:"column:position"`
	Department *string             `gorm:"column:department"`
	Salary     decimal.NullDecimal `gorm:"column:salary;type:decimal(10,2)"`
	HireDate   *time.Time          `gorm:"column:hire_date;type:date"`
	Status     string              `gorm:"column:status;default:active"`
	CreatedBy  *int64              `gorm:"column:created_by"`
	CreatedAt  time.Time           `gorm:"column:created_at"`
	UpdatedAt  time.Time           `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeWithCreator is the list projection joined with the creating user's
// display name.
type EmployeeWithCreator struct {
	Employee
	CreatedByName *string `gorm:"column:created_by_name"`
}
