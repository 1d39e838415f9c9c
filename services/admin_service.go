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

// Admin passwords are bcrypt-hashed like every other account type.
type AdminService struct {
	DB   *gorm.DB
	Repo *repository.AdminRepository
}

func NewAdminService(db *gorm.DB, repo *repository.AdminRepository) *AdminService {
	return &AdminService{DB: db, Repo: repo}
}

type CreateAdminReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Manager Chef"`
}

type UpdateAdminReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (s *AdminService) ListByRestaurant(restID string) ([]entity.Admin, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *AdminService) Get(restID, id string) (*entity.Admin, error) {
	admin, err := s.Repo.FindByID(restID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: admin %s", ErrNotFound, id)
	}
	return admin, err
}

func (s *AdminService) Create(restID string, req *CreateAdminReq) (*entity.Admin, error) {
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

	var admin entity.Admin
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		admin = entity.Admin{
			AdminID:      id,
			RestaurantID: restID,
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Password:     string(hashed),
			Role:         req.Role,
		}
		return s.Repo.Create(tx, &admin)
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) Update(restID, id string, req *UpdateAdminReq) (*entity.Admin, error) {
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
	if req.Role != nil {
		if *req.Role != "Manager" && *req.Role != "Chef" {
			return nil, fmt.Errorf("%w: role must be Manager or Chef", ErrValidation)
		}
		updates["role"] = *req.Role
	}
	if len(updates) == 0 {
		return s.Get(restID, id)
	}

	affected, err := s.Repo.Update(restID, id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: admin %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(restID, id)
}

func (s *AdminService) Delete(restID, id string) error {
	affected, err := s.Repo.Delete(restID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: admin %s", ErrNotFound, id)
	}
	return nil
}

func (s *AdminService) Login(restID, email, password string) (*entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.Repo.FindByEmail(restID, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	admin.Password = ""
	return admin, nil
}
