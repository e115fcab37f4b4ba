package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSummaryFallbackWithoutBaseURL(t *testing.T) {
	c := NewClient("")
	sum := c.FetchSummary(context.Background())
	assert.Equal(t, "operational", sum.State)
	assert.Equal(t, "All systems operational", sum.StateLabel)
	require.NotEmpty(t, sum.Components)
}

func TestFetchSummaryRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"state": "degraded",
			"updated_at": "2026-08-20T10:00:00Z",
			"components": [{"name": "API", "status": "operational"}, {"name": "Webhook Delivery", "status": "degraded"}],
			"incidents": [{
				"id": "inc_1",
				"title": "Webhook delivery delays",
				"status": "monitoring",
				"impact": "minor",
				"started_at": "2026-08-20T09:12:00Z",
				"updates": [{"timestamp": "2026-08-20T09:40:00Z", "status": "monitoring", "body": "Backlog draining."}]
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	sum := c.FetchSummary(context.Background())
	assert.Equal(t, "degraded", sum.State)
	assert.Equal(t, "Degraded performance", sum.StateLabel)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), sum.UpdatedAt)
	require.Len(t, sum.Components, 2)
	require.Len(t, sum.Incidents, 1)
	assert.Equal(t, "Webhook delivery delays", sum.Incidents[0].Title)
	require.Len(t, sum.Incidents[0].Updates, 1)
}

func TestFetchSummaryFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	sum := c.FetchSummary(context.Background())
	assert.Equal(t, "operational", sum.State)
}

func TestFetchSummaryCaches(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"state": "operational"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetCacheTTL(time.Minute)
	_ = c.FetchSummary(context.Background())
	_ = c.FetchSummary(context.Background())
	assert.Equal(t, 1, calls)
}
