package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ChefService struct {
	DB   *gorm.DB
	Repo *repository.ChefRepository
}

func NewChefService(db *gorm.DB, repo *repository.ChefRepository) *ChefService {
	return &ChefService{DB: db, Repo: repo}
}

type CreateChefReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateChefReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (s *ChefService) ListByRestaurant(restID string) ([]entity.Chef, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *ChefService) Get(restID, id string) (*entity.Chef, error) {
	chef, err := s.Repo.FindByID(restID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: chef %s", ErrNotFound, id)
	}
	return chef, err
}

func (s *ChefService) Create(restID string, req *CreateChefReq) (*entity.Chef, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.Repo.CountByEmail(restID, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var chef entity.Chef
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		chef = entity.Chef{
			ChefID:       id,
			RestaurantID: restID,
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Password:     string(hashed),
		}
		return s.Repo.Create(tx, &chef)
	})
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (s *ChefService) Update(restID, id string, req *UpdateChefReq) (*entity.Chef, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return s.Get(restID, id)
	}

	affected, err := s.Repo.Update(restID, id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: chef %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(restID, id)
}

func (s *ChefService) Delete(restID, id string) error {
	affected, err := s.Repo.Delete(restID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: chef %s", ErrNotFound, id)
	}
	return nil
}

func (s *ChefService) Login(restID, email, password string) (*entity.Chef, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	chef, err := s.Repo.FindByEmail(restID, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(chef.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	chef.Password = ""
	return chef, nil
}
