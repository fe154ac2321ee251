package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// MenuRepository is the read-only catalog lookup. The core never writes
// menu or restaurant rows; menu CRUD lives outside this service.
type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetMenuBasics resolves a menu item to price, availability, and owning
// restaurant. เอาเฉพาะคอลัมน์ที่ต้องใช้
func (r *MenuRepository) GetMenuBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price, is_available, restaurant_id").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) RestaurantExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Browse (public, read-only) ----------------

func (r *MenuRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rs entity.Restaurant
	if err := r.DB.First(&rs, id).Error; err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *MenuRepository) ListMenuForRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}
