package quotedb

import (
	"context"
	"time"

	"github.com/quotefeed/stooqsync/internal/observ"
)

// IntradaySeparator marks where appended intraday rows start for any textual
// consumer of the full line sequence.
const IntradaySeparator = "--- INTRADAY ---"

// IntradayPolicy selects how the intraday snapshot joins the historical
// lines: appended raw after a separator, or date-merged against the tail.
type IntradayPolicy string

const (
	IntradayAppend IntradayPolicy = "append"
	IntradayMerge  IntradayPolicy = "merge"
)

// HistoricalFeed produces raw end-of-day lines for a symbol from the cached
// last-entry date onward. Implementations absorb transport failures and
// return no lines.
type HistoricalFeed interface {
	Fetch(ctx context.Context, symbol, lastEntry string) []string
}

// SnapshotFeed produces the latest intraday line for a symbol, or nothing
// outside trading days and on any failure.
type SnapshotFeed interface {
	Fetch(ctx context.Context, symbol string) []string
}

// DataSource reconciles the local cache of one database directory against the
// remote feeds. One instance is constructed per database load and passed to
// every entry point; there is no process-wide singleton. It keeps no
// per-session state, so the host may call it again at any time.
type DataSource struct {
	store       *Store
	historical  HistoricalFeed
	intraday    SnapshotFeed
	policy      IntradayPolicy
	secondCheck string

	now func() time.Time // test seam
}

func NewDataSource(store *Store, historical HistoricalFeed, intraday SnapshotFeed, policy IntradayPolicy) *DataSource {
	if policy != IntradayMerge {
		policy = IntradayAppend
	}
	return &DataSource{
		store:      store,
		historical: historical,
		intraday:   intraday,
		policy:     policy,
		now:        time.Now,
	}
}

// SetSecondCheck overrides the default second-check time of day ("HH:MM")
// used for symbols whose metadata does not carry one.
func (ds *DataSource) SetSecondCheck(clock string) {
	ds.secondCheck = clock
}

// GetQuotes returns the reconciled quote rows for symbol, most recent last,
// truncated to at most limit rows. A negative limit returns everything.
func (ds *DataSource) GetQuotes(ctx context.Context, symbol string, limit int) ([]Quote, error) {
	lines, err := ds.sync(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return Tail(ParseQuotes(lines), limit), nil
}

// Lines returns the full reconciled line sequence for symbol, separator
// included, without row parsing or truncation.
func (ds *DataSource) Lines(ctx context.Context, symbol string) ([]string, error) {
	return ds.sync(ctx, symbol)
}

// sync runs one reconciliation pass: load cache and metadata, refresh the
// historical window if due, persist only when the merge grew the file, then
// join the intraday snapshot.
func (ds *DataSource) sync(ctx context.Context, symbol string) ([]string, error) {
	now := ds.now()

	lines, err := ds.store.Load(symbol)
	if err != nil {
		return nil, err
	}
	meta, err := ds.store.LoadMeta(symbol)
	if err != nil {
		return nil, err
	}

	refresh := NeedsRefresh(meta, now, ds.secondCheck)
	observ.Log("sync_refresh_checked", map[string]any{
		"symbol":  symbol,
		"refresh": refresh,
		"cached":  len(lines),
	})

	if refresh {
		incoming := ds.historical.Fetch(ctx, symbol, meta.LastEntryInFile())
		merged := Merge(lines, incoming)
		// only a grown file is worth rewriting; the merged result is served
		// to the caller either way
		if len(merged) > len(lines) {
			if err := ds.store.Save(symbol, merged, meta, now); err != nil {
				return nil, err
			}
			observ.IncCounter("sync_cache_grown_total", map[string]string{"symbol": symbol})
			observ.SetGauge("sync_cache_lines", float64(len(merged)), map[string]string{"symbol": symbol})
		}
		lines = merged
	}

	snapshot := ds.intraday.Fetch(ctx, symbol)

	switch ds.policy {
	case IntradayMerge:
		if valid := validOnly(snapshot); len(valid) > 0 {
			lines = splice(lines, valid)
		}
	default:
		lines = append(lines, IntradaySeparator)
		lines = append(lines, snapshot...)
	}

	return lines, nil
}
