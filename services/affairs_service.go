package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/clients"
	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/tmc/langchaingo/llms"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Headliner fetches the day's stories.
type Headliner interface {
	TopHeadlines(ctx context.Context) ([]clients.NewsArticle, error)
}

// AffairsService keeps the current-affairs content fresh: fetched articles,
// LLM-generated quiz questions, and per-user quiz stats.
type AffairsService struct {
	DB       *gorm.DB
	Repo     *repository.AffairsRepository
	StatRepo *repository.UserStatRepository
	News     Headliner
	LLM      llms.Model
}

func NewAffairsService(
	db *gorm.DB,
	repo *repository.AffairsRepository,
	statRepo *repository.UserStatRepository,
	news Headliner,
	model llms.Model,
) *AffairsService {
	return &AffairsService{DB: db, Repo: repo, StatRepo: statRepo, News: news, LLM: model}
}

type RefreshResult struct {
	Articles  int `json:"articles"`
	Questions int `json:"questions"`
}

// Refresh fetches today's headlines, stores the ones not seen before and
// generates one quiz question per stored article. A failed question
// generation is logged and skipped; the article stays.
func (s *AffairsService) Refresh(ctx context.Context) (*RefreshResult, error) {
	articles, err := s.News.TopHeadlines(ctx)
	if err != nil {
		return nil, fmt.Errorf("headline fetch failed: %w", err)
	}

	result := &RefreshResult{}
	for _, a := range articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		count, err := s.Repo.CountArticlesByURL(a.URL)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}

		var stored entity.Article
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			id, err := s.Repo.NextArticleID(tx)
			if err != nil {
				return err
			}
			stored = entity.Article{
				ArticleID: id,
				Title:     a.Title,
				Summary:   a.Description,
				SourceURL: a.URL,
				FetchedAt: time.Now(),
			}
			return s.Repo.CreateArticle(tx, &stored)
		})
		if err != nil {
			return nil, err
		}
		result.Articles++

		question, err := s.generateQuestion(ctx, &stored)
		if err != nil {
			log.Printf("quiz generation failed for %s: %v", stored.ArticleID, err)
			continue
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			id, err := s.Repo.NextQuestionID(tx)
			if err != nil {
				return err
			}
			question.QuestionID = id
			return s.Repo.CreateQuestion(tx, question)
		})
		if err != nil {
			return nil, err
		}
		result.Questions++
	}
	return result, nil
}

func (s *AffairsService) generateQuestion(ctx context.Context, article *entity.Article) (*entity.QuizQuestion, error) {
	if s.LLM == nil {
		return nil, errors.New("language model not configured")
	}
	prompt := fmt.Sprintf(
		"Write one multiple-choice question about this news story. Respond with JSON only, shaped as "+
			`{"question": "...", "options": ["...", "...", "...", "..."], "answer": "..."} `+
			"where answer is one of the options.\nTitle: %s\nSummary: %s",
		article.Title, article.Summary)

	raw, err := llms.GenerateFromSinglePrompt(ctx, s.LLM, prompt)
	if err != nil {
		return nil, err
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var parsed struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Answer   string   `json:"answer"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable quiz response: %w", err)
	}
	if parsed.Question == "" || len(parsed.Options) < 2 || parsed.Answer == "" {
		return nil, errors.New("incomplete quiz response")
	}

	return &entity.QuizQuestion{
		ArticleID: article.ArticleID,
		Question:  parsed.Question,
		Options:   datatypes.NewJSONSlice(parsed.Options),
		Answer:    parsed.Answer,
	}, nil
}

func (s *AffairsService) Today() ([]entity.Article, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.Repo.ArticlesFetchedSince(midnight)
}

func (s *AffairsService) Quiz() ([]entity.QuizQuestion, error) {
	articles, err := s.Today()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ArticleID)
	}
	return s.Repo.QuestionsForArticles(ids)
}

type AnswerResult struct {
	Correct bool             `json:"correct"`
	Stat    *entity.UserStat `json:"stat"`
}

// Answer grades one quiz submission and rolls the outcome into the user's
// stats row, creating it on first use.
func (s *AffairsService) Answer(userID, questionID, answer string) (*AnswerResult, error) {
	if userID == "" || questionID == "" {
		return nil, fmt.Errorf("%w: userId and questionId are required", ErrValidation)
	}

	q, err := s.Repo.FindQuestion(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: question %s", ErrNotFound, questionID)
	}
	if err != nil {
		return nil, err
	}
	correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Answer))

	stat, err := s.StatRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			id, err := s.StatRepo.NextID(tx)
			if err != nil {
				return err
			}
			stat = &entity.UserStat{StatID: id, UserID: userID}
			return s.StatRepo.Create(tx, stat)
		})
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"quizzes_taken": stat.QuizzesTaken + 1}
	if correct {
		updates["correct_answers"] = stat.CorrectAnswers + 1
	}
	if _, err := s.StatRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	stat, err = s.StatRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	return &AnswerResult{Correct: correct, Stat: stat}, nil
}

func (s *AffairsService) GetStats(userID string) (*entity.UserStat, error) {
	stat, err := s.StatRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: stats for %s", ErrNotFound, userID)
	}
	return stat, err
}

func (s *AffairsService) UpdatePreferences(userID string, prefs datatypes.JSON) (*entity.UserStat, error) {
	stat, err := s.StatRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			id, err := s.StatRepo.NextID(tx)
			if err != nil {
				return err
			}
			stat = &entity.UserStat{StatID: id, UserID: userID, Preferences: prefs}
			return s.StatRepo.Create(tx, stat)
		})
		if err != nil {
			return nil, err
		}
		return stat, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.StatRepo.Update(userID, map[string]any{"preferences": prefs}); err != nil {
		return nil, err
	}
	return s.StatRepo.FindByUser(userID)
}
