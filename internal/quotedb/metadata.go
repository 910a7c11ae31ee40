package quotedb

import (
	"strings"
	"time"
)

// Metadata keys persisted in the per-symbol config file.
const (
	MetaLastDownloadRun = "LAST_DOWNLOAD_RUN"      // "2006-01-02 15:04"
	MetaLastEntryInFile = "LAST_ENTRY_IN_FILE"     // yyyymmdd, hyphens stripped on read
	MetaSecondCheck     = "SECOND_CHECK_ON_OR_AFTER" // "15:04"
)

// Identity keys live only in memory; persisting them would make the config
// file reference itself.
const (
	metaTicker     = "TICKER"
	metaTickerFile = "TICKER_FILE"
	metaConfigFile = "TICKER_CONFIG_FILE"
)

const (
	defaultLastDownloadRun = "1970-01-01 00:00"
	defaultLastEntry       = "19700101"
	defaultSecondCheck     = "18:00"

	runStampLayout = "2006-01-02 15:04"
)

// Metadata is the per-symbol key/value record. Unknown keys round-trip
// through load and save unchanged.
type Metadata map[string]string

// Get returns the value for key, or def when the key is absent.
func (m Metadata) Get(key, def string) string {
	v, ok := m[key]
	if !ok {
		return def
	}
	return v
}

// Set adds or replaces key.
func (m Metadata) Set(key, value string) {
	m[key] = value
}

// LastDownloadRun returns the timestamp of the last successful historical
// fetch. Never-set metadata yields a far-past sentinel so the first call
// always refreshes.
func (m Metadata) LastDownloadRun() time.Time {
	t, err := time.Parse(runStampLayout, m.Get(MetaLastDownloadRun, defaultLastDownloadRun))
	if err != nil {
		t, _ = time.Parse(runStampLayout, defaultLastDownloadRun)
	}
	return t
}

// LastEntryInFile returns the newest date key present in the cache as a
// compact yyyymmdd string.
func (m Metadata) LastEntryInFile() string {
	return strings.ReplaceAll(m.Get(MetaLastEntryInFile, defaultLastEntry), "-", "")
}

// SecondCheckMinutes returns the configured intraday second-look time as
// minutes of day. def is used when the key is absent; an empty def falls back
// to 18:00.
func (m Metadata) SecondCheckMinutes(def string) int {
	if def == "" {
		def = defaultSecondCheck
	}
	v := m.Get(MetaSecondCheck, def)
	min, ok := parseClock(v)
	if !ok {
		min, _ = parseClock(defaultSecondCheck)
	}
	return min
}

// parseClock converts "HH:MM" to minutes of day.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
