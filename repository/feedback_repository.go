package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "feedbacks", "feedback_id", "Fb")
}

func (r *FeedbackRepository) ListByRestaurant(restID string) ([]entity.Feedback, error) {
	var out []entity.Feedback
	err := r.DB.Where("restaurant_id = ?", restID).Find(&out).Error
	return out, err
}

func (r *FeedbackRepository) FindByID(restID, id string) (*entity.Feedback, error) {
	var fb entity.Feedback
	err := r.DB.Where("restaurant_id = ? AND feedback_id = ?", restID, id).First(&fb).Error
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *FeedbackRepository) Create(tx *gorm.DB, fb *entity.Feedback) error {
	return tx.Create(fb).Error
}

func (r *FeedbackRepository) Update(restID, id string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Feedback{}).
		Where("restaurant_id = ? AND feedback_id = ?", restID, id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *FeedbackRepository) Delete(restID, id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ? AND feedback_id = ?", restID, id).Delete(&entity.Feedback{})
	return res.RowsAffected, res.Error
}
