package repository

import (
	"time"

	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/gorm"
)

// AffairsRepository stores fetched current-affairs articles and the quiz
// questions generated from them.
type AffairsRepository struct {
	DB *gorm.DB
}

func NewAffairsRepository(db *gorm.DB) *AffairsRepository {
	return &AffairsRepository{DB: db}
}

func (r *AffairsRepository) NextArticleID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "articles", "article_id", "ART")
}

func (r *AffairsRepository) NextQuestionID(tx *gorm.DB) (string, error) {
	return NextSuffixID(tx, "quiz_questions", "question_id", "QZ")
}

func (r *AffairsRepository) CreateArticle(tx *gorm.DB, a *entity.Article) error {
	return tx.Create(a).Error
}

func (r *AffairsRepository) CreateQuestion(tx *gorm.DB, q *entity.QuizQuestion) error {
	return tx.Create(q).Error
}

func (r *AffairsRepository) ArticlesFetchedSince(since time.Time) ([]entity.Article, error) {
	var out []entity.Article
	err := r.DB.Where("fetched_at >= ?", since).Order("fetched_at DESC").Find(&out).Error
	return out, err
}

func (r *AffairsRepository) QuestionsForArticles(articleIDs []string) ([]entity.QuizQuestion, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}
	var out []entity.QuizQuestion
	err := r.DB.Where("article_id IN ?", articleIDs).Find(&out).Error
	return out, err
}

func (r *AffairsRepository) FindQuestion(id string) (*entity.QuizQuestion, error) {
	var q entity.QuizQuestion
	if err := r.DB.Where("question_id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *AffairsRepository) CountArticlesByURL(url string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Article{}).Where("source_url = ?", url).Count(&count).Error
	return count, err
}
