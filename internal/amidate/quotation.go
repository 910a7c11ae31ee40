package amidate

import "github.com/quotefeed/stooqsync/internal/quotedb"

// Quotation is the host's fixed record for one row. Field widths match the
// host's binary layout; Price carries the close.
type Quotation struct {
	DateTime Date
	Price    float32
	Open     float32
	High     float32
	Low      float32
	Volume   float32
}

// FromQuote serializes a reconciled row into the host record. Daily rows are
// end-of-day, so the time components carry the EOD markers.
func FromQuote(q quotedb.Quote) Quotation {
	return Quotation{
		DateTime: New(q.Date, true),
		Price:    q.Close,
		Open:     q.Open,
		High:     q.High,
		Low:      q.Low,
		Volume:   q.Volume,
	}
}

// FromQuotes serializes a whole window in order.
func FromQuotes(quotes []quotedb.Quote) []Quotation {
	out := make([]Quotation, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}
