package entity

import "time"

// Role is either "Manager" or "Chef".
type Admin struct {
	AdminID      string    `gorm:"primaryKey;column:admin_id" json:"adminId"`
	RestaurantID string    `gorm:"index" json:"restaurantId"`
	Name         string    `json:"name"`
	Email        string    `gorm:"index" json:"email"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
