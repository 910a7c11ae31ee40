package quotedb

import (
	"regexp"
	"strconv"
	"strings"
)

// Sentinel date keys. KeyFuture sorts after every real date, KeyInvalid before.
// They give Merge a total order over arbitrary line contents.
const (
	KeyFuture  = 99999999
	KeyInvalid = -1
)

// linePattern matches the whole line, not just the date field. Anything with a
// letter in it (headers, HTML error pages from a failed fetch) is rejected.
var linePattern = regexp.MustCompile(`^[0-9,.\-]+$`)

// ValidLine reports whether line is a well-formed data row.
func ValidLine(line string) bool {
	return line != "" && linePattern.MatchString(line)
}

// DateKey converts the leading date field of a row into a comparable integer,
// e.g. "2024-01-05,..." -> 20240105. Blank lines map to KeyFuture, any other
// invalid line to KeyInvalid.
func DateKey(line string) int {
	if !ValidLine(line) {
		if strings.TrimSpace(line) == "" {
			return KeyFuture
		}
		return KeyInvalid
	}
	field := line
	if i := strings.IndexByte(line, ','); i >= 0 {
		field = line[:i]
	}
	n, err := strconv.Atoi(strings.ReplaceAll(field, "-", ""))
	if err != nil {
		return KeyInvalid
	}
	return n
}
