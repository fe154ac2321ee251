package repository

import (
	"strings"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /order/:id (ลูกค้า) — scoped to the owning customer
func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (ลูกค้า)
type OrderSummary struct {
	ID           uint               `json:"id"`
	Reference    string             `json:"reference"`
	RestaurantID uint               `json:"restaurantId"`
	TotalPrice   int64              `json:"totalPrice"`
	Status       entity.OrderStatus `json:"status"`
	OrderTime    time.Time          `json:"orderTime"`
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, reference, restaurant_id, total_price, status, order_time").
		Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /restaurant/orders — listing for the owning restaurant,
// optionally filtered to a stage's status set.
type RestaurantOrderSummary struct {
	ID            uint               `json:"id"`
	Reference     string             `json:"reference"`
	CustomerID    uint               `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	TotalPrice    int64              `json:"totalPrice"`
	Status        entity.OrderStatus `json:"status"`
	CustomerNotes string             `json:"customerNotes"`
	OrderTime     time.Time          `json:"orderTime"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restaurantID uint, statuses []entity.OrderStatus, page, limit int) ([]RestaurantOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restaurantID)
	if len(statuses) > 0 {
		dbCount = dbCount.Where("status IN ?", statuses)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// join users → ดึงชื่อลูกค้า
	var rows []struct {
		ID            uint
		Reference     string
		CustomerID    uint
		TotalPrice    int64
		Status        entity.OrderStatus
		CustomerNotes string
		OrderTime     time.Time
		FirstName     string
		LastName      string
	}
	db := r.DB.Table("orders AS o").
		Select(`o.id, o.reference, o.customer_id, o.total_price, o.status,
			o.customer_notes, o.order_time, u.first_name, u.last_name`).
		Joins("JOIN users u ON u.id = o.customer_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restaurantID)
	if len(statuses) > 0 {
		db = db.Where("o.status IN ?", statuses)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]RestaurantOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, RestaurantOrderSummary{
			ID:            row.ID,
			Reference:     row.Reference,
			CustomerID:    row.CustomerID,
			CustomerName:  strings.TrimSpace(row.FirstName + " " + row.LastName),
			TotalPrice:    row.TotalPrice,
			Status:        row.Status,
			CustomerNotes: row.CustomerNotes,
			OrderTime:     row.OrderTime,
		})
	}
	return out, total, nil
}

// GET /admin/orders — read-only, no mutation path goes through here
func (r *OrderRepository) ListAllOrders(page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Order
	err := r.DB.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

// ---------------- Driver assignment queue (derived view) ----------------

// ClaimableOrderRow carries what a driver needs to decide on a job:
// the restaurant pickup address and the customer dropoff address.
type ClaimableOrderRow struct {
	OrderID            uint               `json:"orderId"`
	Reference          string             `json:"reference"`
	Status             entity.OrderStatus `json:"status"`
	RestaurantID       uint               `json:"restaurantId"`
	RestaurantName     string             `json:"restaurantName"`
	RestaurantAddress  string             `json:"restaurantAddress"`
	RestaurantSuburb   string             `json:"restaurantSuburb"`
	RestaurantState    string             `json:"restaurantState"`
	RestaurantPostcode string             `json:"restaurantPostcode"`
	Address            string             `json:"address"`
	Suburb             string             `json:"suburb"`
	State              string             `json:"state"`
	Postcode           string             `json:"postcode"`
	OrderPrice         int64              `json:"orderPrice"`
	DeliveryFee        int64              `json:"deliveryFee"`
	OrderTime          time.Time          `json:"orderTime"`
}

// ListClaimable: orders with no driver yet in a stage that permits
// pickup. A query over order state, not a separate store.
func (r *OrderRepository) ListClaimable(limit int) ([]ClaimableOrderRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []ClaimableOrderRow
	err := r.DB.Table("orders AS o").
		Select(`o.id AS order_id, o.reference, o.status,
			o.restaurant_id, rs.name AS restaurant_name,
			rs.address AS restaurant_address, rs.suburb AS restaurant_suburb,
			rs.state AS restaurant_state, rs.postcode AS restaurant_postcode,
			o.address, o.suburb, o.state, o.postcode,
			o.order_price, o.delivery_fee, o.order_time`).
		Joins("JOIN restaurants rs ON rs.id = o.restaurant_id").
		Where("o.driver_id IS NULL AND o.status IN ? AND o.deleted_at IS NULL", entity.ClaimableStatuses).
		Order("o.id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForDriver(driverID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("driver_id = ?", driverID).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// ---------------- Guarded transitions ----------------

// UpdateStatusGuard moves status from→to in one conditional UPDATE.
// Zero rows affected means the guard failed (wrong current status).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus, notes string) (int64, error) {
	updates := map[string]any{"status": to}
	if notes != "" {
		updates["restaurant_notes"] = notes
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// ClaimForDriver sets driver_id only if it is still NULL and the order
// is in a claimable stage — one conditional UPDATE, so concurrent
// drivers cannot both win.
func (r *OrderRepository) ClaimForDriver(tx *gorm.DB, orderID, driverID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND driver_id IS NULL AND status IN ?", orderID, entity.ClaimableStatuses).
		Update("driver_id", driverID)
	return res.RowsAffected, res.Error
}

// StampPickup: READY_FOR_PICKUP → PICKED_UP by the assigned driver,
// setting pickup_time exactly once.
func (r *OrderRepository) StampPickup(tx *gorm.DB, orderID, driverID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND driver_id = ? AND status = ?", orderID, driverID, entity.StatusReadyForPickup).
		Updates(map[string]any{"status": entity.StatusPickedUp, "pickup_time": at})
	return res.RowsAffected, res.Error
}

// StampDelivery: PICKED_UP → DELIVERED by the assigned driver,
// setting delivery_time exactly once.
func (r *OrderRepository) StampDelivery(tx *gorm.DB, orderID, driverID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND driver_id = ? AND status = ?", orderID, driverID, entity.StatusPickedUp).
		Updates(map[string]any{"status": entity.StatusDelivered, "delivery_time": at})
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity, unit_price, subtotal, menu_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
