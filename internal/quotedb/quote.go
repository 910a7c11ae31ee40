package quotedb

import (
	"strconv"
	"strings"
	"time"
)

// Quote is one reconciled row: a trading date (or intraday tick) with its
// OHLCV fields. Prices are float32 to match the host's record layout.
type Quote struct {
	Date   time.Time
	Open   float32
	High   float32
	Low    float32
	Close  float32
	Volume float32
}

// ParseQuotes converts every validator-accepted line into a Quote, silently
// dropping rows that cannot be parsed. A corrupted cache degrades to "those
// rows are absent", never to a failed request.
func ParseQuotes(lines []string) []Quote {
	var out []Quote
	for _, line := range lines {
		if !ValidLine(line) {
			continue
		}
		q, ok := parseQuote(line)
		if !ok {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Tail keeps the most recent n quotes, oldest rows dropped. Downstream
// consumers want a fixed look-back window, not full history.
func Tail(quotes []Quote, n int) []Quote {
	if n >= 0 && len(quotes) > n {
		return quotes[len(quotes)-n:]
	}
	return quotes
}

func parseQuote(line string) (Quote, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return Quote{}, false
	}

	date, err := time.Parse("20060102", strings.ReplaceAll(fields[0], "-", ""))
	if err != nil {
		return Quote{}, false
	}

	var prices [4]float32
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return Quote{}, false
		}
		prices[i] = float32(v)
	}

	// volume is not always present
	var volume float32
	if len(fields) >= 6 {
		v, err := strconv.ParseFloat(fields[5], 32)
		if err != nil {
			return Quote{}, false
		}
		volume = float32(v)
	}

	return Quote{
		Date:   date,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}, true
}
