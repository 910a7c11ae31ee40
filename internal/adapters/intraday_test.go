package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntradayFeedFetch(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{"s": q.Get("s"), "f": q.Get("f")}
		w.Write([]byte("2024-01-08,5,6,4,5.5,500\r\n"))
	}))
	defer srv.Close()

	feed := NewIntradayFeed(IntradayConfig{BaseURL: srv.URL, RateLimitPerMinute: 600})
	feed.now = func() time.Time { return time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC) }

	lines := feed.Fetch(context.Background(), "aapl.us")

	require.Equal(t, map[string]string{"s": "aapl.us", "f": "d1ohlcv"}, gotQuery)
	assert.Equal(t, []string{"2024-01-08,5,6,4,5.5,500", ""}, lines)
}

func TestIntradayFeedWeekendSkip(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	feed := NewIntradayFeed(IntradayConfig{BaseURL: srv.URL, RateLimitPerMinute: 600})

	for _, day := range []int{6, 7} { // Saturday, Sunday
		feed.now = func() time.Time { return time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC) }
		assert.Empty(t, feed.Fetch(context.Background(), "aapl.us"))
	}
	assert.Zero(t, hits, "weekend skip happens before any network call")
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, splitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{""}, splitLines(""))
}
