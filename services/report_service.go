package services

import (
	"sort"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/repository"
)

// ReportService aggregates order rows into the statistics backing the
// JSON, PDF and Excel report endpoints.
type ReportService struct {
	OrderRepo *repository.OrderRepository
	DishRepo  *repository.DishRepository
}

func NewReportService(orderRepo *repository.OrderRepository, dishRepo *repository.DishRepository) *ReportService {
	return &ReportService{OrderRepo: orderRepo, DishRepo: dishRepo}
}

type DayTotal struct {
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type DishTotal struct {
	DishID   string `json:"dishId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderStats struct {
	RestaurantID string      `json:"restaurantId"`
	From         time.Time   `json:"from"`
	To           time.Time   `json:"to"`
	OrderCount   int         `json:"orderCount"`
	Revenue      float64     `json:"revenue"`
	PaidCount    int         `json:"paidCount"`
	ServedCount  int         `json:"servedCount"`
	PerDay       []DayTotal  `json:"perDay"`
	TopDishes    []DishTotal `json:"topDishes"`
}

// Stats loads the restaurant's orders in [from, to) and aggregates them in
// memory; order volumes here are small enough that pushing the JSON line
// items into SQL is not worth it.
func (s *ReportService) Stats(restID string, from, to time.Time) (*OrderStats, error) {
	orders, err := s.OrderRepo.ListByRestaurantBetween(restID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{RestaurantID: restID, From: from, To: to}
	days := map[string]*DayTotal{}
	dishQty := map[string]int{}

	for _, o := range orders {
		stats.OrderCount++
		stats.Revenue += o.Amount
		if o.PaymentDone {
			stats.PaidCount++
		}
		if o.Served {
			stats.ServedCount++
		}

		day := o.OrderedAt.Format("2006-01-02")
		if days[day] == nil {
			days[day] = &DayTotal{Day: day}
		}
		days[day].Orders++
		days[day].Revenue += o.Amount

		for _, line := range o.Dishes {
			dishQty[line.DishID] += line.Quantity
		}
	}

	for _, d := range days {
		stats.PerDay = append(stats.PerDay, *d)
	}
	sort.Slice(stats.PerDay, func(i, j int) bool { return stats.PerDay[i].Day < stats.PerDay[j].Day })

	for id, qty := range dishQty {
		name := id
		if dish, err := s.DishRepo.FindByID(restID, id); err == nil {
			name = dish.Name
		}
		stats.TopDishes = append(stats.TopDishes, DishTotal{DishID: id, Name: name, Quantity: qty})
	}
	sort.Slice(stats.TopDishes, func(i, j int) bool {
		if stats.TopDishes[i].Quantity != stats.TopDishes[j].Quantity {
			return stats.TopDishes[i].Quantity > stats.TopDishes[j].Quantity
		}
		return stats.TopDishes[i].DishID < stats.TopDishes[j].DishID
	})
	if len(stats.TopDishes) > 10 {
		stats.TopDishes = stats.TopDishes[:10]
	}

	return stats, nil
}
