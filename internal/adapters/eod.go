package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/quotefeed/stooqsync/internal/observ"
)

const defaultEODBaseURL = "https://stooq.pl/q/d/l/"

// EODConfig holds configuration for the historical feed adapter.
type EODConfig struct {
	BaseURL            string
	TimeoutSeconds     int
	RateLimitPerMinute int
}

// EODFeed fetches end-of-day history for the window between the cached
// last-entry date and the previous working day.
type EODFeed struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter

	now func() time.Time // test seam
}

func NewEODFeed(cfg EODConfig) *EODFeed {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultEODBaseURL
	}
	return &EODFeed{
		baseURL: cfg.BaseURL,
		client:  newClient(cfg.TimeoutSeconds),
		limiter: newLimiter(cfg.RateLimitPerMinute),
		now:     time.Now,
	}
}

// Fetch requests daily rows for [lastEntry, previous working day]. When the
// previous working day already equals lastEntry nothing new can exist, so no
// request is made.
func (f *EODFeed) Fetch(ctx context.Context, symbol, lastEntry string) []string {
	end := previousWorkingDay(f.now())
	if end == lastEntry {
		observ.IncCounter("eod_fetch_skipped_total", map[string]string{"reason": "up_to_date"})
		return nil
	}

	u := fmt.Sprintf("%s?s=%s&d1=%s&d2=%s&i=d", f.baseURL, url.QueryEscape(symbol), lastEntry, end)
	observ.Log("eod_fetch", map[string]any{"symbol": symbol, "d1": lastEntry, "d2": end})
	return fetchLines(ctx, f.client, f.limiter, "eod", u)
}

// previousWorkingDay walks back from yesterday to the most recent weekday.
func previousWorkingDay(now time.Time) string {
	d := now.AddDate(0, 0, -1)
	for isWeekend(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d.Format("20060102")
}
