package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "restaurants", "restaurant_id", "restro")
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("restaurant_id = ?", id).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) Update(id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Restaurant{}).Where("restaurant_id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *RestaurantRepository) Delete(id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ?", id).Delete(&entity.Restaurant{})
	return res.RowsAffected, res.Error
}
