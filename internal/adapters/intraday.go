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

const defaultIntradayBaseURL = "https://stooq.pl/q/l/"

// IntradayConfig holds configuration for the intraday snapshot adapter.
type IntradayConfig struct {
	BaseURL            string
	TimeoutSeconds     int
	RateLimitPerMinute int
}

// IntradayFeed fetches the single most recent quote line for a symbol.
type IntradayFeed struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter

	now func() time.Time // test seam
}

func NewIntradayFeed(cfg IntradayConfig) *IntradayFeed {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultIntradayBaseURL
	}
	return &IntradayFeed{
		baseURL: cfg.BaseURL,
		client:  newClient(cfg.TimeoutSeconds),
		limiter: newLimiter(cfg.RateLimitPerMinute),
		now:     time.Now,
	}
}

// Fetch returns the latest snapshot line. Markets are closed on weekends, so
// Saturday and Sunday skip the network call outright.
func (f *IntradayFeed) Fetch(ctx context.Context, symbol string) []string {
	if isWeekend(f.now()) {
		observ.IncCounter("intraday_fetch_skipped_total", map[string]string{"reason": "weekend"})
		return nil
	}

	u := fmt.Sprintf("%s?s=%s&f=d1ohlcv", f.baseURL, url.QueryEscape(symbol))
	return fetchLines(ctx, f.client, f.limiter, "intraday", u)
}
