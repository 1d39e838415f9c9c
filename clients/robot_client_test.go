package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRobotClientRetriesServerErrors(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/dispatch", r.URL.Path)
		if hits < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewRobotClient(srv.URL, time.Second, 2)
	err := c.Dispatch(context.Background(), DispatchRequest{CallID: "CALL-1"})
	require.NoError(t, err)
	require.Equal(t, 3, hits)
}

func TestRobotClientGivesUpAfterRetries(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRobotClient(srv.URL, time.Second, 2)
	err := c.Dispatch(context.Background(), DispatchRequest{CallID: "CALL-1"})
	require.Error(t, err)
	require.Equal(t, 3, hits)
}

func TestRobotClientDoesNotRetryClientErrors(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewRobotClient(srv.URL, time.Second, 2)
	err := c.Dispatch(context.Background(), DispatchRequest{CallID: "CALL-1"})
	require.Error(t, err)
	require.Equal(t, 1, hits)
}

func TestNewsClientParsesHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"articles":[{"title":"T","description":"D","url":"https://n/1"}]}`))
	}))
	defer srv.Close()

	c := NewNewsClient(srv.URL, "test-key", time.Second, 0)
	articles, err := c.TopHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "T", articles[0].Title)
	require.Equal(t, "https://n/1", articles[0].URL)
}
