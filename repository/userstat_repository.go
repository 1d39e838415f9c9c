package repository

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

type UserStatRepository struct {
	DB *gorm.DB
}

func NewUserStatRepository(db *gorm.DB) *UserStatRepository {
	return &UserStatRepository{DB: db}
}

func (r *UserStatRepository) NextID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "user_stats", "stat_id", "STAT")
}

func (r *UserStatRepository) FindByUser(userID string) (*entity.UserStat, error) {
	var stat entity.UserStat
	if err := r.DB.Where("user_id = ?", userID).First(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *UserStatRepository) Create(tx *gorm.DB, stat *entity.UserStat) error {
	return tx.Create(stat).Error
}

func (r *UserStatRepository) Update(userID string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.UserStat{}).Where("user_id = ?", userID).Updates(updates)
	return res.RowsAffected, res.Error
}
