package configs

import (
	"log"

	"github.com/vermaanurag1532/Restro-sub000/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedRestaurant creates the first tenant when the table is empty.
func SeedRestaurant() error {
	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	rest := entity.Restaurant{
		RestaurantID: "restro-1",
		Name:         getEnv("RESTAURANT_NAME", "Demo Restaurant"),
		Location:     getEnv("RESTAURANT_LOCATION", ""),
	}
	log.Println("seeding restaurant:", rest.RestaurantID)
	return db.Create(&rest).Error
}

// SeedAdmin creates a Manager for restro-1 from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		AdminID:      "ADMIN-1",
		RestaurantID: "restro-1",
		Name:         "Seed Admin",
		Email:        email,
		Password:     string(hash),
		Role:         "Manager",
	}
	return db.Create(&admin).Error
}
