package postgres

import (
	"errors"

	internal "github.com/nattawut/office-management/internal"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
	"github.com/nattawut/office-management/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements user.Repository with GORM. Uniqueness of username
// and email is enforced by the store's constraints; violations surface as the
// translated duplicated-key error, never by pre-checking existence.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *userDatamodel.User) error {
	err := r.db.Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrUserExists
	}
	return err
}

func (r *UserRepository) Update(u *userDatamodel.User) error {
	err := r.db.Save(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrUserExists
	}
	return err
}

func (r *UserRepository) Delete(id int64) error {
	tx := r.db.Where("id = ?", id).Delete(&userDatamodel.User{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}
