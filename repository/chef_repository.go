package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type ChefRepository struct {
	DB *gorm.DB
}

func NewChefRepository(db *gorm.DB) *ChefRepository {
	return &ChefRepository{DB: db}
}

func (r *ChefRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "chefs", "chef_id", "CHEF")
}

func (r *ChefRepository) ListByRestaurant(restID string) ([]entity.Chef, error) {
	var out []entity.Chef
	err := r.DB.Where("restaurant_id = ?", restID).Find(&out).Error
	return out, err
}

func (r *ChefRepository) FindByID(restID, id string) (*entity.Chef, error) {
	var chef entity.Chef
	err := r.DB.Where("restaurant_id = ? AND chef_id = ?", restID, id).First(&chef).Error
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *ChefRepository) FindByEmail(restID, email string) (*entity.Chef, error) {
	var chef entity.Chef
	err := r.DB.Where("restaurant_id = ? AND email = ?", restID, email).First(&chef).Error
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *ChefRepository) CountByEmail(restID, email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Chef{}).
		Where("restaurant_id = ? AND email = ?", restID, email).
		Count(&count).Error
	return count, err
}

func (r *ChefRepository) Create(tx *gorm.DB, chef *entity.Chef) error {
	return tx.Create(chef).Error
}

func (r *ChefRepository) Update(restID, id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Chef{}).
		Where("restaurant_id = ? AND chef_id = ?", restID, id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ChefRepository) Delete(restID, id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ? AND chef_id = ?", restID, id).Delete(&entity.Chef{})
	return res.RowsAffected, res.Error
}
