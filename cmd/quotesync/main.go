package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/quotefeed/stooqsync/internal/adapters"
	"github.com/quotefeed/stooqsync/internal/config"
	"github.com/quotefeed/stooqsync/internal/observ"
	"github.com/quotefeed/stooqsync/internal/quotedb"
)

func main() {
	var (
		configPath = flag.String("config", os.Getenv("QUOTESYNC_CONFIG"), "path to YAML config (optional)")
		symbolsArg = flag.String("symbols", "", "comma-separated symbols to sync")
		limit      = flag.Int("limit", 0, "max rows per symbol (overrides config)")
		offline    = flag.Bool("offline", false, "skip remote feeds, serve the local cache only")
		raw        = flag.Bool("raw", false, "print the raw reconciled line sequence instead of parsed rows")
		metrics    = flag.Bool("metrics", false, "log counter values after the run")
	)
	flag.Parse()

	if *symbolsArg == "" {
		fmt.Fprintln(os.Stderr, "usage: quotesync -symbols SYM[,SYM...] [-config file] [-limit n] [-offline] [-raw]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *limit > 0 {
		cfg.Limit = *limit
	}

	ds := newDataSource(cfg, *offline)

	ctx := context.Background()
	for _, symbol := range strings.Split(*symbolsArg, ",") {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}
		if err := dump(ctx, ds, symbol, cfg.Limit, *raw); err != nil {
			observ.Log("sync_failed", map[string]any{"symbol": symbol, "error": err.Error()})
			os.Exit(1)
		}
	}

	if *metrics {
		snap := observ.Snap()
		for name, byLabel := range snap.Counters {
			for labels, v := range byLabel {
				observ.Log("counter", map[string]any{"name": name, "labels": labels, "value": v})
			}
		}
	}
}

func newDataSource(cfg config.Root, offline bool) *quotedb.DataSource {
	store := quotedb.NewStore(cfg.DatabasePath)

	var historical quotedb.HistoricalFeed = adapters.EmptyHistory{}
	var intraday quotedb.SnapshotFeed = adapters.EmptySnapshot{}
	if !offline {
		historical = adapters.NewEODFeed(adapters.EODConfig{
			BaseURL:            cfg.EOD.BaseURL,
			TimeoutSeconds:     cfg.EOD.TimeoutSeconds,
			RateLimitPerMinute: cfg.EOD.RateLimitPerMinute,
		})
		intraday = adapters.NewIntradayFeed(adapters.IntradayConfig{
			BaseURL:            cfg.Intraday.BaseURL,
			TimeoutSeconds:     cfg.Intraday.TimeoutSeconds,
			RateLimitPerMinute: cfg.Intraday.RateLimitPerMinute,
		})
	}

	ds := quotedb.NewDataSource(store, historical, intraday, quotedb.IntradayPolicy(cfg.IntradayPolicy))
	ds.SetSecondCheck(cfg.SecondCheck)
	return ds
}

func dump(ctx context.Context, ds *quotedb.DataSource, symbol string, limit int, raw bool) error {
	if raw {
		lines, err := ds.Lines(ctx, symbol)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	}

	quotes, err := ds.GetQuotes(ctx, symbol, limit)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		fmt.Printf("%s,%s,%g,%g,%g,%g,%g\n",
			symbol, q.Date.Format("2006-01-02"), q.Open, q.High, q.Low, q.Close, q.Volume)
	}
	observ.Log("sync_done", map[string]any{"symbol": symbol, "rows": len(quotes)})
	return nil
}
