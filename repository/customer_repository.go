package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "customers", "customer_id", "CUSTOMER")
}

func (r *CustomerRepository) ListByRestaurant(restID string) ([]entity.Customer, error) {
	var out []entity.Customer
	err := r.DB.Where("restaurant_id = ?", restID).Find(&out).Error
	return out, err
}

func (r *CustomerRepository) FindByID(restID, id string) (*entity.Customer, error) {
	var cust entity.Customer
	err := r.DB.Where("restaurant_id = ? AND customer_id = ?", restID, id).First(&cust).Error
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) FindByEmail(restID, email string) (*entity.Customer, error) {
	var cust entity.Customer
	err := r.DB.Where("restaurant_id = ? AND email = ?", restID, email).First(&cust).Error
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

// Uniqueness is checked with a pre-insert count; there is no unique
// constraint backing it up.
func (r *CustomerRepository) CountByEmail(restID, email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Customer{}).
		Where("restaurant_id = ? AND email = ?", restID, email).
		Count(&count).Error
	return count, err
}

func (r *CustomerRepository) Create(tx *gorm.DB, cust *entity.Customer) error {
	return tx.Create(cust).Error
}

func (r *CustomerRepository) Update(restID, id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Customer{}).
		Where("restaurant_id = ? AND customer_id = ?", restID, id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *CustomerRepository) Delete(restID, id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ? AND customer_id = ?", restID, id).Delete(&entity.Customer{})
	return res.RowsAffected, res.Error
}
