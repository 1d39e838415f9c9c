package entity

import "time"

// Article is one fetched current-affairs story.
type Article struct {
	ArticleID string    `gorm:"primaryKey;column:article_id" json:"articleId"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	SourceURL string    `json:"sourceUrl"`
	FetchedAt time.Time `json:"fetchedAt"`
	CreatedAt time.Time `json:"createdAt"`
}
