package services

import (
	"errors"
	"fmt"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"gorm.io/gorm"
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

type CreateTableReq struct {
	TableNo int `json:"tableNo" binding:"required,gt=0"`
}

func (s *TableService) ListByRestaurant(restID string) ([]entity.Table, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *TableService) Get(restID string, tableNo int) (*entity.Table, error) {
	t, err := s.Repo.Find(restID, tableNo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: table %d", ErrNotFound, tableNo)
	}
	return t, err
}

func (s *TableService) Create(restID string, req *CreateTableReq) (*entity.Table, error) {
	if _, err := s.Repo.Find(restID, req.TableNo); err == nil {
		return nil, fmt.Errorf("%w: table %d already exists", ErrValidation, req.TableNo)
	}
	t := entity.Table{RestaurantID: restID, TableNo: req.TableNo}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Seat links a customer to the table; the order link is left untouched
// until an order is placed.
func (s *TableService) Seat(restID string, tableNo int, customerID string) (*entity.Table, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customerId is required", ErrValidation)
	}
	affected, err := s.Repo.Update(s.DB, restID, tableNo, map[string]any{"customer_id": customerID})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: table %d", ErrNotFound, tableNo)
	}
	return s.Repo.Find(restID, tableNo)
}

// Unseat clears both the customer and order links.
func (s *TableService) Unseat(restID string, tableNo int) (*entity.Table, error) {
	affected, err := s.Repo.Update(s.DB, restID, tableNo,
		map[string]any{"customer_id": nil, "order_id": nil})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: table %d", ErrNotFound, tableNo)
	}
	return s.Repo.Find(restID, tableNo)
}

func (s *TableService) Delete(restID string, tableNo int) error {
	affected, err := s.Repo.Delete(restID, tableNo)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: table %d", ErrNotFound, tableNo)
	}
	return nil
}
