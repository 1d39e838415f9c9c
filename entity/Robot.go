package entity

import "time"

type Robot struct {
	RobotID    string    `gorm:"primaryKey;column:robot_id" json:"robotId"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
