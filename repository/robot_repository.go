package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type RobotRepository struct {
	DB *gorm.DB
}

func NewRobotRepository(db *gorm.DB) *RobotRepository {
	return &RobotRepository{DB: db}
}

func (r *RobotRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "robots", "robot_id", "ROBOT")
}

func (r *RobotRepository) List() ([]entity.Robot, error) {
	var out []entity.Robot
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *RobotRepository) FindByID(id string) (*entity.Robot, error) {
	var robot entity.Robot
	if err := r.DB.Where("robot_id = ?", id).First(&robot).Error; err != nil {
		return nil, err
	}
	return &robot, nil
}

func (r *RobotRepository) Create(tx *gorm.DB, robot *entity.Robot) error {
	return tx.Create(robot).Error
}

func (r *RobotRepository) Update(id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Robot{}).Where("robot_id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *RobotRepository) Delete(id string) (int64, error) {
	res := r.DB.Where("robot_id = ?", id).Delete(&entity.Robot{})
	return res.RowsAffected, res.Error
}

// ---------------- Robot calls ----------------

func (r *RobotRepository) NextCallID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "robot_calls", "call_id", "CALL")
}

func (r *RobotRepository) CreateCall(tx *gorm.DB, call *entity.RobotCall) error {
	return tx.Create(call).Error
}

func (r *RobotRepository) FindCall(id string) (*entity.RobotCall, error) {
	var call entity.RobotCall
	if err := r.DB.Where("call_id = ?", id).First(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *RobotRepository) UpdateCallStatus(id, status string) (int64, error) {
	res := r.DB.Model(&entity.RobotCall{}).Where("call_id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}
