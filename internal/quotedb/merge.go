package quotedb

import "strings"

// Merge splices freshly fetched lines onto an existing cache at the date
// boundary of the first valid incoming line. Rows in existing at or after that
// boundary are considered stale and replaced by the incoming rows.
//
// Fewer than two lines on either side means there is no real data there beyond
// a possible header, so the other side is returned unchanged.
func Merge(existing, incoming []string) []string {
	if len(incoming) < 2 {
		return existing
	}
	if len(existing) < 2 {
		return incoming
	}

	valid := validOnly(incoming)
	if len(valid) == 0 {
		return existing
	}

	return splice(existing, valid)
}

// splice keeps the longest prefix of existing whose date keys are strictly
// below the first valid line's key, then appends valid. A prefix scan, not a
// binary search: degenerate caches can be out of order near the boundary.
func splice(existing, valid []string) []string {
	boundary := DateKey(valid[0])

	result := make([]string, 0, len(existing)+len(valid))
	for _, line := range existing {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if DateKey(line) >= boundary {
			break
		}
		result = append(result, line)
	}
	return append(result, valid...)
}

func validOnly(lines []string) []string {
	var out []string
	for _, line := range lines {
		if ValidLine(line) {
			out = append(out, line)
		}
	}
	return out
}
