package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) ListByRestaurant(restID string) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("restaurant_id = ?", restID).Order("table_no").Find(&out).Error
	return out, err
}

func (r *TableRepository) Find(restID string, tableNo int) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("restaurant_id = ? AND table_no = ?", restID, tableNo).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FirstForCustomer returns the lowest-numbered table currently holding the
// customer. When a customer has several tables only this one is linked to a
// new order; no tie-break rule beyond table_no ordering.
func (r *TableRepository) FirstForCustomer(tx *gorm.DB, restID, customerID string) (*entity.Table, error) {
	var t entity.Table
	err := tx.Where("restaurant_id = ? AND customer_id = ?", restID, customerID).
		Order("table_no").First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(tx *gorm.DB, restID string, tableNo int, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("restaurant_id = ? AND table_no = ?", restID, tableNo).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) Delete(restID string, tableNo int) (int64, error) {
	res := r.DB.Where("restaurant_id = ? AND table_no = ?", restID, tableNo).Delete(&entity.Table{})
	return res.RowsAffected, res.Error
}
