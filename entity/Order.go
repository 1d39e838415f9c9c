package entity

import (
	"time"

	"gorm.io/datatypes"
)

// OrderDish is one line item inside an order's Dishes column.
type OrderDish struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	OrderID      string                         `gorm:"primaryKey;column:order_id" json:"orderId"`
	CustomerID   string                         `gorm:"index" json:"customerId"`
	RestaurantID string                         `gorm:"index" json:"restaurantId"`
	TableNo      int                            `json:"tableNo"`
	Amount       float64                        `json:"amount"`
	Dishes       datatypes.JSONSlice[OrderDish] `json:"dishes"`
	OrderedAt    time.Time                      `json:"orderedAt"`
	PaymentDone  bool                           `gorm:"column:payment_status" json:"paymentStatus"`
	Served       bool                           `gorm:"column:serving_status" json:"servingStatus"`
	CreatedAt    time.Time                      `json:"createdAt"`
	UpdatedAt    time.Time                      `json:"updatedAt"`
}
