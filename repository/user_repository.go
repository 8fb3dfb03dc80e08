package repository

import (
	"errors"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"

	"gorm.io/gorm"
)

// UserRepository talks to the users table and nothing else.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("phone_number = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("phone_number = ?", phone).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// Create inserts the user. A unique-index race that slips past the service
// pre-checks surfaces as a Conflict, never as a raw driver error.
func (r *UserRepository) Create(user *entity.User) error {
	err := r.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflictf("phone_number", "already registered")
	}
	return err
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
