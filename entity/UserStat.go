package entity

import (
	"time"

	"gorm.io/datatypes"
)

// UserStat tracks quiz activity and stored preferences for one user.
type UserStat struct {
	StatID         string         `gorm:"primaryKey;column:stat_id" json:"statId"`
	UserID         string         `gorm:"uniqueIndex" json:"userId"`
	QuizzesTaken   int            `json:"quizzesTaken"`
	CorrectAnswers int            `json:"correctAnswers"`
	Preferences    datatypes.JSON `json:"preferences"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
