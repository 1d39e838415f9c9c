package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// NewsClient fetches current-affairs headlines from the configured search API.
type NewsClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Retries int
}

func NewNewsClient(baseURL, apiKey string, timeout time.Duration, retries int) *NewsClient {
	return &NewsClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
		Retries: retries,
	}
}

type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (c *NewsClient) TopHeadlines(ctx context.Context) ([]NewsArticle, error) {
	q := url.Values{}
	q.Set("apiKey", c.APIKey)
	q.Set("category", "general")
	endpoint := c.BaseURL + "?" + q.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		res, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if res.StatusCode >= 500 {
			res.Body.Close()
			lastErr = fmt.Errorf("news api error: %s", res.Status)
			continue
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("news api rejected request: %s", res.Status)
		}

		var payload struct {
			Articles []NewsArticle `json:"articles"`
		}
		err = json.NewDecoder(res.Body).Decode(&payload)
		res.Body.Close()
		if err != nil {
			return nil, err
		}
		return payload.Articles, nil
	}
	return nil, lastErr
}
