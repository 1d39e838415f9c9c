package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/clients"
	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeHeadliner struct {
	articles []clients.NewsArticle
	err      error
}

func (f *fakeHeadliner) TopHeadlines(ctx context.Context) ([]clients.NewsArticle, error) {
	return f.articles, f.err
}

type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.response, f.err
}

const quizJSON = "```json\n" +
	`{"question": "Who won?", "options": ["A", "B", "C", "D"], "answer": "B"}` +
	"\n```"

func newAffairsService(t *testing.T, news Headliner, model llms.Model) *AffairsService {
	t.Helper()
	db := newTestDB(t, &entity.Article{}, &entity.QuizQuestion{}, &entity.UserStat{})
	return NewAffairsService(db,
		repository.NewAffairsRepository(db),
		repository.NewUserStatRepository(db),
		news, model)
}

func TestAffairsRefreshStoresArticlesAndQuestions(t *testing.T) {
	news := &fakeHeadliner{articles: []clients.NewsArticle{
		{Title: "Election result", Description: "B won.", URL: "https://news.example/1"},
		{Title: "", URL: "https://news.example/skip"},
	}}
	svc := newAffairsService(t, news, &fakeModel{response: quizJSON})

	result, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, result.Articles)
	require.Equal(t, 1, result.Questions)

	articles, err := svc.Today()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "ART-1", articles[0].ArticleID)

	questions, err := svc.Quiz()
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Equal(t, "QZ-1", questions[0].QuestionID)
	require.Equal(t, "B", questions[0].Answer)
	require.Len(t, []string(questions[0].Options), 4)
}

func TestAffairsRefreshDeduplicatesByURL(t *testing.T) {
	news := &fakeHeadliner{articles: []clients.NewsArticle{
		{Title: "Election result", Description: "B won.", URL: "https://news.example/1"},
	}}
	svc := newAffairsService(t, news, &fakeModel{response: quizJSON})

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Zero(t, second.Articles)
	require.Zero(t, second.Questions)
}

func TestAffairsRefreshKeepsArticleWhenGenerationFails(t *testing.T) {
	news := &fakeHeadliner{articles: []clients.NewsArticle{
		{Title: "Election result", Description: "B won.", URL: "https://news.example/1"},
	}}
	svc := newAffairsService(t, news, &fakeModel{err: errors.New("model down")})

	result, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, result.Articles)
	require.Zero(t, result.Questions)
}

func TestAffairsAnswerGradesAndTracksStats(t *testing.T) {
	news := &fakeHeadliner{articles: []clients.NewsArticle{
		{Title: "Election result", Description: "B won.", URL: "https://news.example/1"},
	}}
	svc := newAffairsService(t, news, &fakeModel{response: quizJSON})

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	right, err := svc.Answer("CUSTOMER-1", "QZ-1", "b")
	require.NoError(t, err)
	require.True(t, right.Correct)
	require.Equal(t, 1, right.Stat.QuizzesTaken)
	require.Equal(t, 1, right.Stat.CorrectAnswers)

	wrong, err := svc.Answer("CUSTOMER-1", "QZ-1", "A")
	require.NoError(t, err)
	require.False(t, wrong.Correct)
	require.Equal(t, 2, wrong.Stat.QuizzesTaken)
	require.Equal(t, 1, wrong.Stat.CorrectAnswers)

	_, err = svc.Answer("CUSTOMER-1", "QZ-404", "A")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAffairsUpdatePreferencesCreatesStatRow(t *testing.T) {
	svc := newAffairsService(t, &fakeHeadliner{}, &fakeModel{})

	stat, err := svc.UpdatePreferences("CUSTOMER-9", []byte(`{"topics":["sport"]}`))
	require.NoError(t, err)
	require.Equal(t, "CUSTOMER-9", stat.UserID)
	require.JSONEq(t, `{"topics":["sport"]}`, string(stat.Preferences))

	stat, err = svc.UpdatePreferences("CUSTOMER-9", []byte(`{"topics":["tech"]}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"topics":["tech"]}`, string(stat.Preferences))
}
