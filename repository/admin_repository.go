package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "admins", "admin_id", "ADMIN")
}

func (r *AdminRepository) ListByRestaurant(restID string) ([]entity.Admin, error) {
	var out []entity.Admin
	err := r.DB.Where("restaurant_id = ?", restID).Find(&out).Error
	return out, err
}

func (r *AdminRepository) FindByID(restID, id string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.DB.Where("restaurant_id = ? AND admin_id = ?", restID, id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByEmail(restID, email string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.DB.Where("restaurant_id = ? AND email = ?", restID, email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) CountByEmail(restID, email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Admin{}).
		Where("restaurant_id = ? AND email = ?", restID, email).
		Count(&count).Error
	return count, err
}

func (r *AdminRepository) Create(tx *gorm.DB, admin *entity.Admin) error {
	return tx.Create(admin).Error
}

func (r *AdminRepository) Update(restID, id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Admin{}).
		Where("restaurant_id = ? AND admin_id = ?", restID, id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *AdminRepository) Delete(restID, id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ? AND admin_id = ?", restID, id).Delete(&entity.Admin{})
	return res.RowsAffected, res.Error
}
