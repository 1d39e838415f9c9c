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

type RestaurantService struct {
	DB   *gorm.DB
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo}
}

type CreateRestaurantReq struct {
	Name     string         `json:"name" binding:"required"`
	Location string         `json:"location"`
	Logo     datatypes.JSON `json:"logo"`
}

type UpdateRestaurantReq struct {
	Name     *string         `json:"name"`
	Location *string         `json:"location"`
	Logo     *datatypes.JSON `json:"logo"`
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.List()
}

func (s *RestaurantService) Get(id string) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, id)
	}
	return rest, err
}

func (s *RestaurantService) Create(req *CreateRestaurantReq) (*entity.Restaurant, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	var rest entity.Restaurant
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		rest = entity.Restaurant{
			RestaurantID: id,
			Name:         strings.TrimSpace(req.Name),
			Location:     strings.TrimSpace(req.Location),
			Logo:         req.Logo,
		}
		return s.Repo.Create(tx, &rest)
	})
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (s *RestaurantService) Update(id string, req *UpdateRestaurantReq) (*entity.Restaurant, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	affected, err := s.Repo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(id)
}

func (s *RestaurantService) Delete(id string) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: restaurant %s", ErrNotFound, id)
	}
	return nil
}
