package entity

import "time"

type Chef struct {
	ChefID       string    `gorm:"primaryKey;column:chef_id" json:"chefId"`
	RestaurantID string    `gorm:"index" json:"restaurantId"`
	Name         string    `json:"name"`
	Email        string    `gorm:"index" json:"email"`
	Password     string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
