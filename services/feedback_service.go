package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"gorm.io/gorm"
)

type FeedbackService struct {
	DB        *gorm.DB
	Repo      *repository.FeedbackRepository
	OrderRepo *repository.OrderRepository
}

func NewFeedbackService(db *gorm.DB, repo *repository.FeedbackRepository, orderRepo *repository.OrderRepository) *FeedbackService {
	return &FeedbackService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type CreateFeedbackReq struct {
	OrderID    string `json:"orderId" binding:"required"`
	CustomerID string `json:"customerId" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}

type UpdateFeedbackReq struct {
	Comment *string `json:"comment"`
}

func (s *FeedbackService) ListByRestaurant(restID string) ([]entity.Feedback, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *FeedbackService) Get(restID, id string) (*entity.Feedback, error) {
	fb, err := s.Repo.FindByID(restID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: feedback %s", ErrNotFound, id)
	}
	return fb, err
}

func (s *FeedbackService) Create(restID string, req *CreateFeedbackReq) (*entity.Feedback, error) {
	if _, err := s.OrderRepo.FindByID(req.OrderID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, req.OrderID)
	} else if err != nil {
		return nil, err
	}

	var fb entity.Feedback
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		fb = entity.Feedback{
			FeedbackID:   id,
			RestaurantID: restID,
			OrderID:      req.OrderID,
			CustomerID:   req.CustomerID,
			Comment:      strings.TrimSpace(req.Comment),
		}
		return s.Repo.Create(tx, &fb)
	})
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (s *FeedbackService) Update(restID, id string, req *UpdateFeedbackReq) (*entity.Feedback, error) {
	updates := map[string]any{}
	if req.Comment != nil {
		updates["comment"] = strings.TrimSpace(*req.Comment)
	}
	if len(updates) == 0 {
		return s.Get(restID, id)
	}

	affected, err := s.Repo.Update(restID, id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: feedback %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(restID, id)
}

func (s *FeedbackService) Delete(restID, id string) error {
	affected, err := s.Repo.Delete(restID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: feedback %s", ErrNotFound, id)
	}
	return nil
}
