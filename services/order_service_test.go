package services

import (
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, &entity.Dish{}, &entity.Order{}, &entity.Table{})
	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewDishRepository(db),
		repository.NewTableRepository(db))
	return svc, db
}

func seedDish(t *testing.T, db *gorm.DB, id string, price float64) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Dish{
		DishID:       id,
		RestaurantID: "restro-1",
		Name:         id,
		Price:        price,
		Available:    true,
	}).Error)
}

func TestOrderCreateComputesAmount(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)
	seedDish(t, db, "DISH-2", 150)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		TableNo:      4,
		Dishes: []entity.OrderDish{
			{DishID: "DISH-1", Quantity: 1},
			{DishID: "DISH-2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "ORDER-1", order.OrderID)
	require.Equal(t, 300.0, order.Amount)
	require.False(t, order.PaymentDone)
	require.False(t, order.Served)
}

func TestOrderCreateHonoursExplicitAmount(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)

	amount := 42.0
	order, err := svc.Create(&CreateOrderReq{
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		Dishes:       []entity.OrderDish{{DishID: "DISH-1", Quantity: 2}},
		Amount:       &amount,
	})
	require.NoError(t, err)
	require.Equal(t, 42.0, order.Amount)
}

func TestOrderCreateUnknownDishLeavesNothing(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)

	_, err := svc.Create(&CreateOrderReq{
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		Dishes: []entity.OrderDish{
			{DishID: "DISH-1", Quantity: 1},
			{DishID: "DISH-404", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestOrderCreateLinksCustomersTable(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)

	customer := "CUSTOMER-1"
	require.NoError(t, db.Create(&entity.Table{
		RestaurantID: "restro-1",
		TableNo:      4,
		CustomerID:   &customer,
	}).Error)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID:   customer,
		RestaurantID: "restro-1",
		TableNo:      4,
		Dishes:       []entity.OrderDish{{DishID: "DISH-1", Quantity: 1}},
	})
	require.NoError(t, err)

	var table entity.Table
	require.NoError(t, db.Where("restaurant_id = ? AND table_no = ?", "restro-1", 4).First(&table).Error)
	require.NotNil(t, table.OrderID)
	require.Equal(t, order.OrderID, *table.OrderID)
}

func TestOrderAppendDishesAddsToAmount(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)
	seedDish(t, db, "DISH-3", 80)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		Dishes:       []entity.OrderDish{{DishID: "DISH-1", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 300.0, order.Amount)

	updated, err := svc.AppendDishes(order.OrderID, &UpdateOrderReq{
		Dishes: []entity.OrderDish{{DishID: "DISH-3", Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, 380.0, updated.Amount)
	require.Len(t, updated.Dishes, 2)

	// Lines are appended, not merged; the stored row agrees.
	stored, err := svc.Get(order.OrderID)
	require.NoError(t, err)
	require.Len(t, stored.Dishes, 2)
	require.Equal(t, "DISH-3", stored.Dishes[1].DishID)
}

func TestOrderStatusFlags(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		Dishes:       []entity.OrderDish{{DishID: "DISH-1", Quantity: 1}},
	})
	require.NoError(t, err)

	paid, err := svc.SetPayment(order.OrderID, true)
	require.NoError(t, err)
	require.True(t, paid.PaymentDone)
	require.False(t, paid.Served)

	served, err := svc.SetServing(order.OrderID, true)
	require.NoError(t, err)
	require.True(t, served.Served)

	_, err = svc.SetPayment("ORDER-404", true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderDelete(t *testing.T) {
	svc, db := newOrderService(t)
	seedDish(t, db, "DISH-1", 150)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		Dishes:       []entity.OrderDish{{DishID: "DISH-1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(order.OrderID))
	_, err = svc.Get(order.OrderID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(order.OrderID), ErrNotFound)
}
