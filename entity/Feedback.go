package entity

import "time"

type Feedback struct {
	FeedbackID   string    `gorm:"primaryKey;column:feedback_id" json:"feedbackId"`
	RestaurantID string    `gorm:"index" json:"restaurantId"`
	OrderID      string    `json:"orderId"`
	CustomerID   string    `json:"customerId"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
