package quotedb

import "time"

// NeedsRefresh decides from persisted metadata alone whether the historical
// feed is due for a re-fetch at now.
//
// A refresh is due when a new calendar day has started since the last
// successful run, or when the configured second-check time of day has been
// crossed since that run.
func NeedsRefresh(meta Metadata, now time.Time, secondCheckDefault string) bool {
	last := meta.LastDownloadRun()

	if dateOrdinal(now) > dateOrdinal(last) {
		return true
	}

	check := meta.SecondCheckMinutes(secondCheckDefault)
	return minutesOfDay(last) <= check && check <= minutesOfDay(now)
}

func dateOrdinal(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
