package postgres

import (
	"errors"

	internal "github.com/nattawut/office-management/internal"
	employeeDatamodel "github.com/nattawut/office-management/internal/core/datamodel/employee"
	"github.com/nattawut/office-management/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository with GORM. The badge code
// and email uniqueness live in the store's constraints; violations surface as
// the translated duplicated-key error.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAllWithCreator() ([]*employeeDatamodel.EmployeeWithCreator, error) {
	var rows []*employeeDatamodel.EmployeeWithCreator
	err := r.db.
		Table("employees AS e").
		Select("e.*, u.full_name AS created_by_name").
		Joins("LEFT JOIN users u ON e.created_by = u.id").
		Order("e.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(e *employeeDatamodel.Employee) error {
	err := r.db.Create(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrEmployeeExists
	}
	return err
}

func (r *EmployeeRepository) Update(e *employeeDatamodel.Employee) error {
	err := r.db.Save(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrEmployeeExists
	}
	return err
}

func (r *EmployeeRepository) Delete(id int64) error {
	tx := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}
