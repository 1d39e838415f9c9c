package entity

import "time"

// RobotCall is a request to send a delivery robot to a table. It is relayed
// to the external robot-dispatch service; status changes are pushed to
// websocket subscribers.
type RobotCall struct {
	CallID       string    `gorm:"primaryKey;column:call_id" json:"callId"`
	RestaurantID string    `gorm:"index" json:"restaurantId"`
	TableNo      int       `json:"tableNo"`
	CustomerID   string    `json:"customerId"`
	Status       string    `json:"status"` // requested, dispatched, completed, failed
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
