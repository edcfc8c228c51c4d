package version

import (
	"strconv"
	"strings"
)

// Version is the running build's version. Overridden at build time via
// -ldflags "-X github.com/termdock/termdock/internal/version.Version=...".
var Version = "0.3.0"

// IsNewer reports whether candidate is a strictly newer version than
// current. Used to decide whether a fetched release should be offered as
// an update.
//
// Both inputs are treated as dotted numeric versions with an optional
// leading "v"/"V". Segments are compared left to right as non-negative
// integers, the shorter version zero-padded to equal length. Malformed
// segments compare as 0. Equal versions are never newer. Never errors:
// any input coerces to its best-effort numeric interpretation.
func IsNewer(current, candidate string) bool {
	cur := segments(current)
	cand := segments(candidate)

	for len(cur) < len(cand) {
		cur = append(cur, 0)
	}
	for len(cand) < len(cur) {
		cand = append(cand, 0)
	}

	for i := range cur {
		if cand[i] > cur[i] {
			return true
		}
		if cand[i] < cur[i] {
			return false
		}
	}
	return false
}

func segments(v string) []int {
	v = strings.TrimSpace(v)
	if len(v) > 0 && (v[0] == 'v' || v[0] == 'V') {
		v = v[1:]
	}

	parts := strings.Split(v, ".")
	segs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			n = 0
		}
		segs[i] = n
	}
	return segs
}
