package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RobotClient talks to the external robot-dispatch service.
type RobotClient struct {
	BaseURL string
	HTTP    *http.Client
	Retries int
}

func NewRobotClient(baseURL string, timeout time.Duration, retries int) *RobotClient {
	return &RobotClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
		Retries: retries,
	}
}

type DispatchRequest struct {
	CallID       string `json:"callId"`
	RestaurantID string `json:"restaurantId"`
	TableNo      int    `json:"tableNo"`
	CustomerID   string `json:"customerId"`
}

// Dispatch posts the call to the robot service. Transport errors and 5xx
// responses are retried up to Retries times.
func (c *RobotClient) Dispatch(ctx context.Context, req DispatchRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/dispatch", bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		res, err := c.HTTP.Do(httpReq)
		if err != nil {
			lastErr = err
			continue
		}
		res.Body.Close()

		if res.StatusCode < 500 {
			if res.StatusCode >= 400 {
				return fmt.Errorf("robot service rejected dispatch: %s", res.Status)
			}
			return nil
		}
		lastErr = fmt.Errorf("robot service error: %s", res.Status)
	}
	return lastErr
}
