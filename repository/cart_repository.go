package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetLine returns the customer's line for one menu item, nil if absent.
func (r *CartRepository) GetLine(customerID, menuID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("customer_id = ? AND menu_id = ?", customerID, menuID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// SetLine stores quantity as an absolute value (not an increment).
func (r *CartRepository) SetLine(tx *gorm.DB, customerID, menuID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("customer_id = ? AND menu_id = ?", customerID, menuID).First(&exist).Error
	if err == nil {
		return tx.Model(&exist).Update("quantity", qty).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	line := entity.CartItem{CustomerID: customerID, MenuID: menuID, Quantity: qty}
	return tx.Create(&line).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, customerID, menuID uint) error {
	return tx.Where("customer_id = ? AND menu_id = ?", customerID, menuID).
		Delete(&entity.CartItem{}).Error
}

// CartLineView is a cart line joined with its menu and restaurant
// display data. A read-only view for the customer's cart page.
type CartLineView struct {
	MenuID         uint   `json:"menuId"`
	MenuName       string `json:"menuName"`
	Description    string `json:"description"`
	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	UnitPrice      int64  `json:"unitPrice"`
	Quantity       int    `json:"quantity"`
	LineTotal      int64  `json:"lineTotal"`
	URLImg         string `json:"urlImg"`
}

func (r *CartRepository) ListLines(customerID uint) ([]CartLineView, error) {
	var out []CartLineView
	err := r.DB.Table("cart_items AS ci").
		Select(`ci.menu_id, m.name AS menu_name, m.description,
			m.restaurant_id, rs.name AS restaurant_name,
			m.price AS unit_price, ci.quantity, m.price * ci.quantity AS line_total,
			m.url_img`).
		Joins("JOIN menu_items m ON m.id = ci.menu_id").
		Joins("JOIN restaurants rs ON rs.id = m.restaurant_id").
		Where("ci.customer_id = ? AND ci.deleted_at IS NULL", customerID).
		Order("ci.id").
		Scan(&out).Error
	return out, err
}

// LinesForRestaurant returns the customer's lines whose menu item
// belongs to the given restaurant. Used by order assembly.
func (r *CartRepository) LinesForRestaurant(customerID, restaurantID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := r.DB.
		Joins("JOIN menu_items m ON m.id = cart_items.menu_id").
		Where("cart_items.customer_id = ? AND m.restaurant_id = ?", customerID, restaurantID).
		Find(&lines).Error
	return lines, err
}

// ClearForRestaurant deletes every line whose item belongs to the given
// restaurant. Lines for other restaurants are untouched.
func (r *CartRepository) ClearForRestaurant(tx *gorm.DB, customerID, restaurantID uint) error {
	return tx.
		Where("customer_id = ? AND menu_id IN (SELECT id FROM menu_items WHERE restaurant_id = ?)",
			customerID, restaurantID).
		Delete(&entity.CartItem{}).Error
}
