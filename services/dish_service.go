package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DishService struct {
	DB   *gorm.DB
	Repo *repository.DishRepository
}

func NewDishService(db *gorm.DB, repo *repository.DishRepository) *DishService {
	return &DishService{DB: db, Repo: repo}
}

type CreateDishReq struct {
	Name         string   `json:"name" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Rating       float64  `json:"rating"`
	CookingTime  int      `json:"cookingTime"`
	TypeOfDish   []string `json:"typeOfDish"`
	GenreOfTaste []string `json:"genreOfTaste"`
	Images       []string `json:"images"`
	Available    *bool    `json:"available"`
}

type UpdateDishReq struct {
	Name         *string   `json:"name"`
	Price        *float64  `json:"price"`
	Rating       *float64  `json:"rating"`
	CookingTime  *int      `json:"cookingTime"`
	TypeOfDish   *[]string `json:"typeOfDish"`
	GenreOfTaste *[]string `json:"genreOfTaste"`
	Images       *[]string `json:"images"`
	Available    *bool     `json:"available"`
}

func (s *DishService) ListByRestaurant(restID string) ([]entity.Dish, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *DishService) Get(restID, id string) (*entity.Dish, error) {
	dish, err := s.Repo.FindByID(restID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: dish %s", ErrNotFound, id)
	}
	return dish, err
}

func (s *DishService) Create(restID string, req *CreateDishReq) (*entity.Dish, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	var dish entity.Dish
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		dish = entity.Dish{
			DishID:       id,
			RestaurantID: restID,
			Name:         strings.TrimSpace(req.Name),
			Price:        req.Price,
			Rating:       req.Rating,
			CookingTime:  req.CookingTime,
			TypeOfDish:   datatypes.NewJSONSlice(req.TypeOfDish),
			GenreOfTaste: datatypes.NewJSONSlice(req.GenreOfTaste),
			Images:       datatypes.NewJSONSlice(req.Images),
			Available:    available,
		}
		return s.Repo.Create(tx, &dish)
	})
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *DishService) Update(restID, id string, req *UpdateDishReq) (*entity.Dish, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		updates["price"] = *req.Price
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	if req.TypeOfDish != nil {
		updates["type_of_dish"] = datatypes.NewJSONSlice(*req.TypeOfDish)
	}
	if req.GenreOfTaste != nil {
		updates["genre_of_taste"] = datatypes.NewJSONSlice(*req.GenreOfTaste)
	}
	if req.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(*req.Images)
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if len(updates) == 0 {
		return s.Get(restID, id)
	}

	affected, err := s.Repo.Update(restID, id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: dish %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(restID, id)
}

func (s *DishService) Delete(restID, id string) error {
	affected, err := s.Repo.Delete(restID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: dish %s", ErrNotFound, id)
	}
	return nil
}
