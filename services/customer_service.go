package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CustomerService struct {
	DB   *gorm.DB
	Repo *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{DB: db, Repo: repo}
}

type CreateCustomerReq struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Images   []string `json:"images"`
}

type UpdateCustomerReq struct {
	Name     *string   `json:"name"`
	Email    *string   `json:"email"`
	Password *string   `json:"password"`
	Images   *[]string `json:"images"`
}

func (s *CustomerService) ListByRestaurant(restID string) ([]entity.Customer, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *CustomerService) Get(restID, id string) (*entity.Customer, error) {
	cust, err := s.Repo.FindByID(restID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return cust, err
}

func (s *CustomerService) Create(restID string, req *CreateCustomerReq) (*entity.Customer, error) {
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

	var cust entity.Customer
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		cust = entity.Customer{
			CustomerID:   id,
			RestaurantID: restID,
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Password:     string(hashed),
			Images:       datatypes.NewJSONSlice(req.Images),
		}
		return s.Repo.Create(tx, &cust)
	})
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (s *CustomerService) Update(restID, id string, req *UpdateCustomerReq) (*entity.Customer, error) {
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
	if req.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(*req.Images)
	}
	if len(updates) == 0 {
		return s.Get(restID, id)
	}

	affected, err := s.Repo.Update(restID, id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(restID, id)
}

func (s *CustomerService) Delete(restID, id string) error {
	affected, err := s.Repo.Delete(restID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return nil
}

// Login returns the matched record with the password hash stripped. No
// token is issued; session state is the caller's problem.
func (s *CustomerService) Login(restID, email, password string) (*entity.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	cust, err := s.Repo.FindByEmail(restID, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cust.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	cust.Password = ""
	return cust, nil
}
