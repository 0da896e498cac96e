package postgres

import (
	"errors"

	internal "github.com/nattawut/office-management/internal"
	customerDatamodel "github.com/nattawut/office-management/internal/core/datamodel/customer"
	"github.com/nattawut/office-management/internal/customer"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{db: db}
}

// GetAllWithCreator resolves the creator's display name in the same query.
// The join is LEFT so records whose creator was removed still come back.
func (r *CustomerRepository) GetAllWithCreator() ([]*customerDatamodel.CustomerWithCreator, error) {
	var rows []*customerDatamodel.CustomerWithCreator
	err := r.db.
		Table("customers AS c").
		Select("c.*, u.full_name AS created_by_name").
		Joins("LEFT JOIN users u ON c.created_by = u.id").
		Order("c.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *CustomerRepository) GetByID(id int64) (*customerDatamodel.Customer, error) {
	var c customerDatamodel.Customer
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(c *customerDatamodel.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) Update(c *customerDatamodel.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id int64) error {
	tx := r.db.Where("id = ?", id).Delete(&customerDatamodel.Customer{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return internal.ErrCustomerNotFound
	}
	return nil
}
