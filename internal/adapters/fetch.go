package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/quotefeed/stooqsync/internal/observ"
)

// Transport failures at this layer are a silent-empty-result condition, not a
// propagated fault: the synchronizer keeps serving whatever cache it has, and
// the host UI has no way to surface a per-symbol network error mid-refresh.

const (
	defaultTimeoutSeconds     = 10
	defaultRateLimitPerMinute = 5
)

func newClient(timeoutSeconds int) *http.Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}
	return &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}
}

func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		perMinute = defaultRateLimitPerMinute
	}
	return rate.NewLimiter(rate.Limit(float64(perMinute)/60), 1)
}

// fetchLines GETs url and returns the response body split on line boundaries.
// Any failure, a non-200 status included, yields no lines.
func fetchLines(ctx context.Context, client *http.Client, limiter *rate.Limiter, feed, url string) []string {
	if err := limiter.Wait(ctx); err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		observ.Log("feed_fetch_failed", map[string]any{"feed": feed, "error": err.Error()})
		observ.IncCounter("feed_fetch_error_total", map[string]string{"feed": feed})
		return nil
	}
	defer resp.Body.Close()

	observ.RecordDuration("feed_fetch_latency", time.Since(start), map[string]string{"feed": feed})

	if resp.StatusCode != http.StatusOK {
		observ.Log("feed_fetch_failed", map[string]any{"feed": feed, "status": resp.StatusCode})
		observ.IncCounter("feed_fetch_error_total", map[string]string{"feed": feed})
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observ.IncCounter("feed_fetch_error_total", map[string]string{"feed": feed})
		return nil
	}

	observ.IncCounter("feed_fetch_success_total", map[string]string{"feed": feed})
	return splitLines(string(body))
}

// splitLines splits a raw response body on \r\n or \n boundaries.
func splitLines(body string) []string {
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
