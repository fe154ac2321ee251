package services

import (
	"fmt"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database pinned to one connection so
// every query sees the same memory DB and concurrent writers serialize.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Driver{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB, deliveryFee int64) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		deliveryFee)
}

func newDriverService(db *gorm.DB) *DriverService {
	return NewDriverService(db, repository.NewOrderRepository(db))
}

// ---------------- fixtures ----------------

func seedCustomer(t *testing.T, db *gorm.DB, email string) entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", FirstName: "Test", LastName: "Customer", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) entity.Restaurant {
	t.Helper()
	owner := entity.User{Email: name + "@example.com", Password: "x", FirstName: name, Role: "restaurant"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	rs := entity.Restaurant{
		Name: name, UserID: owner.ID,
		Address: "1 Test St", Suburb: "Sydney", State: "NSW", Postcode: "2000",
	}
	if err := db.Create(&rs).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return rs
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int64, available bool) entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{Name: name, Price: price, IsAvailable: available, RestaurantID: restaurantID}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func seedDriver(t *testing.T, db *gorm.DB, n int) entity.Driver {
	t.Helper()
	u := entity.User{Email: fmt.Sprintf("driver%d@example.com", n), Password: "x", Role: "driver"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed driver user: %v", err)
	}
	d := entity.Driver{UserID: u.ID, LicenseNumber: fmt.Sprintf("%08d", n)}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return d
}

func addToCart(t *testing.T, svc *CartService, customerID, menuID uint, qty int) {
	t.Helper()
	q := qty
	if _, err := svc.UpsertLine(customerID, &UpsertLineIn{MenuID: menuID, Quantity: &q}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
}

func validOrderInput(restaurantID uint) *PlaceOrderIn {
	return &PlaceOrderIn{
		RestaurantID: restaurantID,
		Address:      "42 Delivery Rd",
		Suburb:       "Newtown",
		State:        "NSW",
		Postcode:     "2042",
		CardNumber:   "1234-5678-9123-4567",
	}
}

// placePendingOrder seeds a restaurant with one item, fills the cart,
// and places an order, returning it in PENDING.
func placePendingOrder(t *testing.T, db *gorm.DB) (*entity.Order, entity.Restaurant) {
	t.Helper()
	rs := seedRestaurant(t, db, "Transition Cafe")
	m := seedMenuItem(t, db, rs.ID, "Dish", 1000, true)
	cust := seedCustomer(t, db, "transition@example.com")
	addToCart(t, newCartService(db), cust.ID, m.ID, 1)

	order, err := newOrderService(db, 800).PlaceOrder(cust.ID, validOrderInput(rs.ID))
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order, rs
}

func getOrder(t *testing.T, db *gorm.DB, id uint) entity.Order {
	t.Helper()
	var o entity.Order
	if err := db.First(&o, id).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return o
}
