package entity

import "time"

// Table identity is (RestaurantID, TableNo). CustomerID and OrderID are
// cleared and set as seating changes.
type Table struct {
	RestaurantID string    `gorm:"primaryKey" json:"restaurantId"`
	TableNo      int       `gorm:"primaryKey" json:"tableNo"`
	CustomerID   *string   `json:"customerId"`
	OrderID      *string   `json:"orderId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
