package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) CreateRestaurant(tx *gorm.DB, rs *entity.Restaurant) error {
	return tx.Create(rs).Error
}

func (r *UserRepository) CreateDriver(tx *gorm.DB, d *entity.Driver) error {
	return tx.Create(d).Error
}

// FindRestaurantByUserID resolves the restaurant profile owned by a
// user, nil if the user owns none.
func (r *UserRepository) FindRestaurantByUserID(userID uint) (*entity.Restaurant, error) {
	var rs entity.Restaurant
	err := r.DB.Where("user_id = ?", userID).First(&rs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *UserRepository) FindDriverByUserID(userID uint) (*entity.Driver, error) {
	var d entity.Driver
	err := r.DB.Where("user_id = ?", userID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
