package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository

	DeliveryFee int64 // flat policy fee in cents
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	deliveryFee int64,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, MenuRepo: menuRepo, DeliveryFee: deliveryFee}
}

// ----- DTOs from Controller -----

type PlaceOrderIn struct {
	RestaurantID  uint   `json:"restaurantId" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Suburb        string `json:"suburb" binding:"required"`
	State         string `json:"state" binding:"required"`
	Postcode      string `json:"postcode" binding:"required"`
	CustomerNotes string `json:"customerNotes"`
	CardNumber    string `json:"cardNumber" binding:"required"`
}

// PlaceOrder converts the customer's per-restaurant cart lines into an
// order with immutable price snapshots, then empties those lines.
// Creation and cart clearing commit in one transaction: a half-created
// order must never be observable.
func (s *OrderService) PlaceOrder(customerID uint, in *PlaceOrderIn) (*entity.Order, error) {
	lines, err := s.CartRepo.LinesForRestaurant(customerID, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validateDeliveryInfo(in); err != nil {
		return nil, err
	}

	// resolve current price and availability; any unavailable item
	// rejects the whole order
	type priced struct {
		menuID    uint
		qty       int
		unitPrice int64
	}
	rows := make([]priced, 0, len(lines))
	var orderPrice int64
	for _, line := range lines {
		m, err := s.MenuRepo.GetMenuBasics(line.MenuID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemUnavailable
			}
			return nil, err
		}
		if !m.IsAvailable {
			return nil, ErrItemUnavailable
		}
		orderPrice += m.Price * int64(line.Quantity)
		rows = append(rows, priced{menuID: m.ID, qty: line.Quantity, unitPrice: m.Price})
	}

	order := entity.Order{
		Reference:     uuid.NewString(),
		CustomerID:    customerID,
		RestaurantID:  in.RestaurantID,
		Status:        entity.StatusPending,
		Address:       in.Address,
		Suburb:        in.Suburb,
		State:         in.State,
		Postcode:      in.Postcode,
		OrderPrice:    orderPrice,
		DeliveryFee:   s.DeliveryFee,
		TotalPrice:    orderPrice + s.DeliveryFee,
		OrderTime:     time.Now(),
		CustomerNotes: in.CustomerNotes,
		CardNumber:    in.CardNumber,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    r.menuID,
				Quantity:  r.qty,
				UnitPrice: r.unitPrice,
				Subtotal:  r.unitPrice * int64(r.qty),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}
		// consume only this restaurant's lines
		return s.CartRepo.ClearForRestaurant(tx, customerID, in.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForCustomer(customerID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForCustomer(customerID, limit)
}

func (s *OrderService) DetailForCustomer(customerID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.OrderItems = items
	return o, nil
}

type RestaurantOrderListOut struct {
	Items []repository.RestaurantOrderSummary `json:"items"`
	Total int64                               `json:"total"`
	Page  int                                 `json:"page"`
	Limit int                                 `json:"limit"`
}

func (s *OrderService) ListForRestaurant(restaurantID uint, stage string, page, limit int) (*RestaurantOrderListOut, error) {
	statuses := entity.StatusesForStage(stage)
	items, total, err := s.Repo.ListOrdersForRestaurant(restaurantID, statuses, page, limit)
	if err != nil {
		return nil, err
	}
	return &RestaurantOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type AdminOrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListAll(page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListAllOrders(page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
