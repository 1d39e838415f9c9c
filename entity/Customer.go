package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Customer struct {
	CustomerID   string                      `gorm:"primaryKey;column:customer_id" json:"customerId"`
	RestaurantID string                      `gorm:"index" json:"restaurantId"`
	Name         string                      `json:"name"`
	Email        string                      `gorm:"index" json:"email"`
	Password     string                      `json:"-"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
