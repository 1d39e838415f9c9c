package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "dishes", "dish_id", "DISH")
}

func (r *DishRepository) ListByRestaurant(restID string) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("restaurant_id = ?", restID).Find(&out).Error
	return out, err
}

func (r *DishRepository) FindByID(restID, id string) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.Where("restaurant_id = ? AND dish_id = ?", restID, id).First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// GetPrice looks the dish up by id alone; order placement supplies ids that
// are already restaurant-scoped.
func (r *DishRepository) GetPrice(tx *gorm.DB, id string) (float64, error) {
	var dish entity.Dish
	if err := tx.Select("dish_id, price").Where("dish_id = ?", id).First(&dish).Error; err != nil {
		return 0, err
	}
	return dish.Price, nil
}

func (r *DishRepository) Create(tx *gorm.DB, dish *entity.Dish) error {
	return tx.Create(dish).Error
}

func (r *DishRepository) Update(restID, id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Dish{}).
		Where("restaurant_id = ? AND dish_id = ?", restID, id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *DishRepository) Delete(restID, id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ? AND dish_id = ?", restID, id).Delete(&entity.Dish{})
	return res.RowsAffected, res.Error
}
