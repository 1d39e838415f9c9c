package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	DishRepo  *repository.DishRepository
	TableRepo *repository.TableRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	tableRepo *repository.TableRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, TableRepo: tableRepo}
}

type CreateOrderReq struct {
	CustomerID   string             `json:"customerId" binding:"required"`
	RestaurantID string             `json:"restaurantId" binding:"required"`
	TableNo      int                `json:"tableNo"`
	Dishes       []entity.OrderDish `json:"dishes" binding:"required,min=1"`
	Amount       *float64           `json:"amount"`
}

type UpdateOrderReq struct {
	Dishes []entity.OrderDish `json:"dishes" binding:"required,min=1"`
}

// Create places an order. When Amount is not supplied it is derived by
// looking up each dish price and summing price × quantity. The order insert
// and the table link run inside one transaction, so an unknown dish leaves
// nothing behind.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if req.CustomerID == "" || req.RestaurantID == "" || len(req.Dishes) == 0 {
		return nil, fmt.Errorf("%w: customerId, restaurantId and dishes are required", ErrValidation)
	}
	for _, d := range req.Dishes {
		if d.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for dish %s", ErrValidation, d.DishID)
		}
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		amount := 0.0
		if req.Amount != nil {
			amount = *req.Amount
		} else {
			for _, d := range req.Dishes {
				price, err := s.DishRepo.GetPrice(tx, d.DishID)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: dish %s", ErrNotFound, d.DishID)
				}
				if err != nil {
					return err
				}
				amount += price * float64(d.Quantity)
			}
		}

		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		order = entity.Order{
			OrderID:      id,
			CustomerID:   req.CustomerID,
			RestaurantID: req.RestaurantID,
			TableNo:      req.TableNo,
			Amount:       amount,
			Dishes:       datatypes.NewJSONSlice(req.Dishes),
			OrderedAt:    time.Now(),
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		// Link the customer's table to the new order. First match only;
		// a customer holding several tables gets the lowest table_no.
		table, err := s.TableRepo.FirstForCustomer(tx, req.RestaurantID, req.CustomerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = s.TableRepo.Update(tx, table.RestaurantID, table.TableNo,
			map[string]any{"order_id": order.OrderID})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(id string) (*entity.Order, error) {
	o, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return o, err
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.List()
}

func (s *OrderService) ListByCustomer(customerID string) ([]entity.Order, error) {
	return s.Repo.ListByCustomer(customerID)
}

// AppendDishes merges new lines into the existing order and adds their cost
// to the amount. Lines are appended, never replaced; resubmitting the same
// update doubles them.
func (s *OrderService) AppendDishes(id string, req *UpdateOrderReq) (*entity.Order, error) {
	if len(req.Dishes) == 0 {
		return nil, fmt.Errorf("%w: dishes are required", ErrValidation)
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}

		added := 0.0
		for _, d := range req.Dishes {
			if d.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be positive for dish %s", ErrValidation, d.DishID)
			}
			price, err := s.DishRepo.GetPrice(tx, d.DishID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: dish %s", ErrNotFound, d.DishID)
			}
			if err != nil {
				return err
			}
			added += price * float64(d.Quantity)
		}

		merged := append([]entity.OrderDish(o.Dishes), req.Dishes...)
		_, err = s.Repo.Update(tx, id, map[string]any{
			"dishes": datatypes.NewJSONSlice(merged),
			"amount": o.Amount + added,
		})
		if err != nil {
			return err
		}
		o.Dishes = datatypes.NewJSONSlice(merged)
		o.Amount += added
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetPayment and SetServing mutate the status flags directly; there is no
// transition table guarding the order of changes.
func (s *OrderService) SetPayment(id string, done bool) (*entity.Order, error) {
	return s.setFlag(id, "payment_status", done)
}

func (s *OrderService) SetServing(id string, served bool) (*entity.Order, error) {
	return s.setFlag(id, "serving_status", served)
}

func (s *OrderService) setFlag(id, column string, value bool) (*entity.Order, error) {
	affected, err := s.Repo.Update(s.DB, id, map[string]any{column: value})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(id)
}

func (s *OrderService) Delete(id string) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return nil
}
