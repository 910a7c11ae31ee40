package amidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotefeed/stooqsync/internal/quotedb"
)

func TestFromQuote(t *testing.T) {
	q := quotedb.Quote{
		Date:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Open:   1.5,
		High:   2.5,
		Low:    0.5,
		Close:  2.0,
		Volume: 1000,
	}

	rec := FromQuote(q)

	assert.Equal(t, 20240108, rec.DateTime.AsInt())
	assert.Equal(t, 31, rec.DateTime.Hour(), "daily rows carry EOD markers")
	assert.Equal(t, float32(2.0), rec.Price)
	assert.Equal(t, float32(1.5), rec.Open)
	assert.Equal(t, float32(1000), rec.Volume)
}

func TestFromQuotesKeepsOrder(t *testing.T) {
	quotes := []quotedb.Quote{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Close: 1},
		{Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), Close: 2},
	}

	recs := FromQuotes(quotes)
	require.Len(t, recs, 2)
	assert.Equal(t, 20240105, recs[0].DateTime.AsInt())
	assert.Equal(t, 20240108, recs[1].DateTime.AsInt())
	assert.Equal(t, -1, recs[0].DateTime.Compare(recs[1].DateTime))
}
