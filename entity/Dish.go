package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Dish struct {
	DishID       string                      `gorm:"primaryKey;column:dish_id" json:"dishId"`
	RestaurantID string                      `gorm:"index" json:"restaurantId"`
	Name         string                      `json:"name"`
	Price        float64                     `json:"price"`
	Rating       float64                     `json:"rating"`
	CookingTime  int                         `json:"cookingTime"` // minutes
	TypeOfDish   datatypes.JSONSlice[string] `json:"typeOfDish"`
	GenreOfTaste datatypes.JSONSlice[string] `json:"genreOfTaste"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	Available    bool                        `json:"available"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
