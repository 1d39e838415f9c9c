package jobs

import (
	"context"
	"log"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/robfig/cron/v3"
)

// StartDailyRefresh schedules the current-affairs refresh every morning at
// 06:00 server time. The returned cron is already running.
func StartDailyRefresh(affairs *services.AffairsService) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := affairs.Refresh(ctx)
		if err != nil {
			log.Printf("daily affairs refresh failed: %v", err)
			return
		}
		log.Printf("daily affairs refresh: %d articles, %d questions", result.Articles, result.Questions)
	})
	if err != nil {
		log.Fatalf("schedule daily refresh: %v", err)
	}
	c.Start()
	return c
}
