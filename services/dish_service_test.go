package services

import (
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
)

func newDishService(t *testing.T) *DishService {
	t.Helper()
	db := newTestDB(t, &entity.Dish{})
	return NewDishService(db, repository.NewDishRepository(db))
}

func TestDishCreateDefaultsAvailable(t *testing.T) {
	svc := newDishService(t)

	dish, err := svc.Create("restro-1", &CreateDishReq{Name: "Ramen", Price: 240})
	require.NoError(t, err)
	require.Equal(t, "DISH-1", dish.DishID)
	require.True(t, dish.Available)
}

func TestDishPartialUpdate(t *testing.T) {
	svc := newDishService(t)

	dish, err := svc.Create("restro-1", &CreateDishReq{
		Name:       "Ramen",
		Price:      240,
		TypeOfDish: []string{"noodles"},
	})
	require.NoError(t, err)

	price := 260.0
	updated, err := svc.Update("restro-1", dish.DishID, &UpdateDishReq{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 260.0, updated.Price)
	require.Equal(t, "Ramen", updated.Name)
	require.Equal(t, []string{"noodles"}, []string(updated.TypeOfDish))

	bad := -1.0
	_, err = svc.Update("restro-1", dish.DishID, &UpdateDishReq{Price: &bad})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDishDeleteThenGetNotFound(t *testing.T) {
	svc := newDishService(t)

	dish, err := svc.Create("restro-1", &CreateDishReq{Name: "Ramen", Price: 240})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("restro-1", dish.DishID))
	_, err = svc.Get("restro-1", dish.DishID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete("restro-1", dish.DishID), ErrNotFound)
}

func TestDishScopedToRestaurant(t *testing.T) {
	svc := newDishService(t)

	dish, err := svc.Create("restro-1", &CreateDishReq{Name: "Ramen", Price: 240})
	require.NoError(t, err)

	_, err = svc.Get("restro-2", dish.DishID)
	require.ErrorIs(t, err, ErrNotFound)
}
