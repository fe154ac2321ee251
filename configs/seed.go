package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemoCatalog creates a couple of restaurants and menus on an empty
// database so the browse/cart endpoints have something to serve.
// Controlled by SEED_DEMO=1.
func SeedDemoCatalog() error {
	if getEnv("SEED_DEMO", "") != "1" {
		return nil
	}

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo-owner"), bcrypt.DefaultCost)

	demos := []struct {
		email string
		rest  entity.Restaurant
		menus []entity.MenuItem
	}{
		{
			email: "thai.kitchen@example.com",
			rest: entity.Restaurant{
				Name: "Thai Kitchen", Description: "Home style Thai food",
				Address: "12 George St", Suburb: "Sydney", State: "NSW", Postcode: "2000",
			},
			menus: []entity.MenuItem{
				{Name: "Pad Thai", Price: 1450, IsAvailable: true},
				{Name: "Green Curry", Price: 1600, IsAvailable: true},
				{Name: "Mango Sticky Rice", Price: 900, IsAvailable: true},
			},
		},
		{
			email: "burger.barn@example.com",
			rest: entity.Restaurant{
				Name: "Burger Barn", Description: "Burgers and chips",
				Address: "88 Queen St", Suburb: "Brisbane", State: "QLD", Postcode: "4000",
			},
			menus: []entity.MenuItem{
				{Name: "Cheeseburger", Price: 1200, IsAvailable: true},
				{Name: "Chips", Price: 500, IsAvailable: true},
			},
		},
	}

	for _, d := range demos {
		owner := entity.User{
			Email: d.email, Password: string(hash),
			FirstName: d.rest.Name, LastName: "Owner", Role: "restaurant",
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}
		d.rest.UserID = owner.ID
		if err := db.Create(&d.rest).Error; err != nil {
			return err
		}
		for i := range d.menus {
			d.menus[i].RestaurantID = d.rest.ID
		}
		if err := db.Create(&d.menus).Error; err != nil {
			return err
		}
	}
	log.Println("seeded demo catalog")
	return nil
}
