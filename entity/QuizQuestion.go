package entity

import (
	"time"

	"gorm.io/datatypes"
)

type QuizQuestion struct {
	QuestionID string                      `gorm:"primaryKey;column:question_id" json:"questionId"`
	ArticleID  string                      `gorm:"index" json:"articleId"`
	Question   string                      `json:"question"`
	Options    datatypes.JSONSlice[string] `json:"options"`
	Answer     string                      `json:"answer"`
	CreatedAt  time.Time                   `json:"createdAt"`
}
