package repository

import (
	"time"

	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "orders", "order_id", "ORDER")
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Order("order_id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByCustomer(customerID string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).Order("order_id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByRestaurantBetween(restID string, from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("restaurant_id = ? AND ordered_at >= ? AND ordered_at < ?", restID, from, to).
		Order("ordered_at").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) Update(tx *gorm.DB, id string, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("order_id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(id string) (int64, error) {
	res := r.DB.Where("order_id = ?", id).Delete(&entity.Order{})
	return res.RowsAffected, res.Error
}
