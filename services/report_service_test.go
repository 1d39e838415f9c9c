package services

import (
	"testing"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newReportService(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, &entity.Dish{}, &entity.Order{})
	return NewReportService(repository.NewOrderRepository(db), repository.NewDishRepository(db)), db
}

func seedOrder(t *testing.T, db *gorm.DB, id string, day time.Time, amount float64, paid bool, lines []entity.OrderDish) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Order{
		OrderID:      id,
		CustomerID:   "CUSTOMER-1",
		RestaurantID: "restro-1",
		Amount:       amount,
		Dishes:       datatypes.NewJSONSlice(lines),
		OrderedAt:    day,
		PaymentDone:  paid,
	}).Error)
}

func TestReportStatsAggregates(t *testing.T) {
	svc, db := newReportService(t)

	require.NoError(t, db.Create(&entity.Dish{
		DishID: "DISH-1", RestaurantID: "restro-1", Name: "Ramen", Price: 150,
	}).Error)

	day1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 19, 30, 0, 0, time.UTC)
	seedOrder(t, db, "ORDER-1", day1, 300, true, []entity.OrderDish{{DishID: "DISH-1", Quantity: 2}})
	seedOrder(t, db, "ORDER-2", day2, 150, false, []entity.OrderDish{{DishID: "DISH-1", Quantity: 1}})
	seedOrder(t, db, "ORDER-3", day2, 80, true, []entity.OrderDish{{DishID: "DISH-9", Quantity: 5}})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	stats, err := svc.Stats("restro-1", from, to)
	require.NoError(t, err)

	require.Equal(t, 3, stats.OrderCount)
	require.Equal(t, 530.0, stats.Revenue)
	require.Equal(t, 2, stats.PaidCount)
	require.Equal(t, 0, stats.ServedCount)

	require.Len(t, stats.PerDay, 2)
	require.Equal(t, "2026-08-01", stats.PerDay[0].Day)
	require.Equal(t, 230.0, stats.PerDay[1].Revenue)

	// Most ordered first; unknown dish ids fall back to the id as name.
	require.Len(t, stats.TopDishes, 2)
	require.Equal(t, "DISH-9", stats.TopDishes[0].DishID)
	require.Equal(t, "DISH-9", stats.TopDishes[0].Name)
	require.Equal(t, 5, stats.TopDishes[0].Quantity)
	require.Equal(t, "Ramen", stats.TopDishes[1].Name)
	require.Equal(t, 3, stats.TopDishes[1].Quantity)
}

func TestReportStatsWindowIsHalfOpen(t *testing.T) {
	svc, db := newReportService(t)

	edge := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORDER-1", edge.Add(-time.Second), 100, false, nil)
	seedOrder(t, db, "ORDER-2", edge, 100, false, nil)

	stats, err := svc.Stats("restro-1", edge.AddDate(0, -1, 0), edge)
	require.NoError(t, err)
	require.Equal(t, 1, stats.OrderCount)
}

func TestReportStatsEmptyWindow(t *testing.T) {
	svc, _ := newReportService(t)

	stats, err := svc.Stats("restro-1", time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	require.Zero(t, stats.OrderCount)
	require.Zero(t, stats.Revenue)
	require.Empty(t, stats.PerDay)
	require.Empty(t, stats.TopDishes)
}
