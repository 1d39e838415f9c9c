package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/vermaanurag1532/Restro-sub000/clients"
	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"gorm.io/gorm"
)

// Dispatcher relays a robot call to the external robot-control service.
type Dispatcher interface {
	Dispatch(ctx context.Context, req clients.DispatchRequest) error
}

// CallNotifier pushes robot-call status changes to connected clients.
type CallNotifier interface {
	BroadcastCall(call *entity.RobotCall)
}

type RobotService struct {
	DB         *gorm.DB
	Repo       *repository.RobotRepository
	Dispatcher Dispatcher
	Notifier   CallNotifier
}

func NewRobotService(db *gorm.DB, repo *repository.RobotRepository, dispatcher Dispatcher, notifier CallNotifier) *RobotService {
	return &RobotService{DB: db, Repo: repo, Dispatcher: dispatcher, Notifier: notifier}
}

type CreateRobotReq struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Status     string `json:"status"`
}

type UpdateRobotReq struct {
	OrderID    *string `json:"orderId"`
	CustomerID *string `json:"customerId"`
	Status     *string `json:"status"`
}

func (s *RobotService) List() ([]entity.Robot, error) {
	return s.Repo.List()
}

func (s *RobotService) Get(id string) (*entity.Robot, error) {
	robot, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: robot %s", ErrNotFound, id)
	}
	return robot, err
}

func (s *RobotService) Create(req *CreateRobotReq) (*entity.Robot, error) {
	status := req.Status
	if status == "" {
		status = "idle"
	}

	var robot entity.Robot
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}
		robot = entity.Robot{
			RobotID:    id,
			OrderID:    req.OrderID,
			CustomerID: req.CustomerID,
			Status:     status,
		}
		return s.Repo.Create(tx, &robot)
	})
	if err != nil {
		return nil, err
	}
	return &robot, nil
}

func (s *RobotService) Update(id string, req *UpdateRobotReq) (*entity.Robot, error) {
	updates := map[string]any{}
	if req.OrderID != nil {
		updates["order_id"] = *req.OrderID
	}
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	affected, err := s.Repo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: robot %s", ErrNotFound, id)
	}
	return s.Repo.FindByID(id)
}

func (s *RobotService) Delete(id string) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: robot %s", ErrNotFound, id)
	}
	return nil
}

type RobotCallReq struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	TableNo      int    `json:"tableNo" binding:"required,gt=0"`
	CustomerID   string `json:"customerId" binding:"required"`
}

// Call records the request, relays it to the robot service and broadcasts
// the resulting status. The call row survives a failed dispatch with status
// "failed" so the client can retry.
func (s *RobotService) Call(ctx context.Context, req *RobotCallReq) (*entity.RobotCall, error) {
	var call entity.RobotCall
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextCallID(tx)
		if err != nil {
			return err
		}
		call = entity.RobotCall{
			CallID:       id,
			RestaurantID: req.RestaurantID,
			TableNo:      req.TableNo,
			CustomerID:   req.CustomerID,
			Status:       "requested",
		}
		return s.Repo.CreateCall(tx, &call)
	})
	if err != nil {
		return nil, err
	}

	status := "dispatched"
	if err := s.Dispatcher.Dispatch(ctx, clients.DispatchRequest{
		CallID:       call.CallID,
		RestaurantID: call.RestaurantID,
		TableNo:      call.TableNo,
		CustomerID:   call.CustomerID,
	}); err != nil {
		log.Printf("robot dispatch failed for %s: %v", call.CallID, err)
		status = "failed"
	}

	if _, err := s.Repo.UpdateCallStatus(call.CallID, status); err != nil {
		return nil, err
	}
	call.Status = status

	if s.Notifier != nil {
		s.Notifier.BroadcastCall(&call)
	}
	return &call, nil
}

func (s *RobotService) GetCall(id string) (*entity.RobotCall, error) {
	call, err := s.Repo.FindCall(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: call %s", ErrNotFound, id)
	}
	return call, err
}

// UpdateCallStatus is used by the robot service callback when a robot
// reaches the table.
func (s *RobotService) UpdateCallStatus(id, status string) (*entity.RobotCall, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}
	affected, err := s.Repo.UpdateCallStatus(id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: call %s", ErrNotFound, id)
	}
	call, err := s.Repo.FindCall(id)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.BroadcastCall(call)
	}
	return call, nil
}
