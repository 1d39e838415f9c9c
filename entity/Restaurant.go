package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Restaurant is the tenant root; every other entity hangs off RestaurantID.
type Restaurant struct {
	RestaurantID string         `gorm:"primaryKey;column:restaurant_id" json:"restaurantId"`
	Name         string         `json:"name"`
	Location     string         `json:"location"`
	Logo         datatypes.JSON `json:"logo"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
