package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// InsightsService asks the configured language model for a plain-language
// reading of a restaurant's recent order statistics.
type InsightsService struct {
	Reports *ReportService
	LLM     llms.Model
}

func NewInsightsService(reports *ReportService, model llms.Model) *InsightsService {
	return &InsightsService{Reports: reports, LLM: model}
}

type Insights struct {
	RestaurantID string      `json:"restaurantId"`
	Stats        *OrderStats `json:"stats"`
	Summary      string      `json:"summary"`
}

func (s *InsightsService) Generate(ctx context.Context, restID string) (*Insights, error) {
	if s.LLM == nil {
		return nil, errors.New("language model not configured")
	}
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	stats, err := s.Reports.Stats(restID, from, to)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a restaurant business analyst. In under 150 words, summarise what the last 30 days of data say and suggest one improvement.\n")
	fmt.Fprintf(&b, "Orders: %d, revenue: %.2f, paid: %d, served: %d.\n",
		stats.OrderCount, stats.Revenue, stats.PaidCount, stats.ServedCount)
	if len(stats.TopDishes) > 0 {
		b.WriteString("Top dishes:")
		for _, d := range stats.TopDishes {
			fmt.Fprintf(&b, " %s (%d)", d.Name, d.Quantity)
		}
		b.WriteString(".\n")
	}

	summary, err := llms.GenerateFromSinglePrompt(ctx, s.LLM, b.String())
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	return &Insights{
		RestaurantID: restID,
		Stats:        stats,
		Summary:      strings.TrimSpace(summary),
	}, nil
}
