// Package version compares dotted version strings such as "1.2.3" or "v18.17.0".
//
// Comparison is segment-wise and numeric: "1.10" is newer than "1.9", and
// missing trailing segments count as zero so "1.2" equals "1.2.0".
// A pre-release ("1.2.3-beta.1") sorts before its release, and build
// metadata ("+build.5") is ignored.
package version

import (
	"strings"
)

// Compare returns -1 if a < b, 0 if a == b and +1 if a > b.
//
// A leading "v" is ignored. Each dot-separated segment is compared by its
// leading digits; a segment without leading digits counts as 0. When the
// release parts are equal, a version with a pre-release suffix is older
// than one without, and two pre-releases are compared segment-wise.
func Compare(a, b string) int {
	aCore, aPre := split(a)
	bCore, bPre := split(b)

	if c := compareSegments(segments(aCore), segments(bCore)); c != 0 {
		return c
	}

	switch {
	case aPre == "" && bPre == "":
		return 0
	case aPre == "":
		return 1
	case bPre == "":
		return -1
	}
	return compareSegments(segments(aPre), segments(bPre))
}

func compareSegments(as, bs []uint64) int {
	for i := 0; i < max(len(as), len(bs)); i++ {
		x, y := at(as, i), at(bs, i)
		switch {
		case x > y:
			return 1
		case x < y:
			return -1
		}
	}
	return 0
}

// AtLeast reports whether v is equal to or newer than minimum.
func AtLeast(v, minimum string) bool {
	return Compare(v, minimum) >= 0
}

// Valid reports whether s consists only of dot-separated numeric segments,
// optionally prefixed with "v".
func Valid(s string) bool {
	s = trim(s)
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func trim(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")
}

// split separates s into its release part and pre-release suffix,
// dropping any build metadata.
func split(s string) (core, pre string) {
	s = trim(s)
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	core, pre, _ = strings.Cut(s, "-")
	return core, pre
}

func segments(s string) []uint64 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		out[i] = leadingNumber(p)
	}
	return out
}

// leadingNumber parses the leading decimal digits of s, saturating on overflow.
func leadingNumber(s string) uint64 {
	var n uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := uint64(r - '0')
		if n > (^uint64(0)-d)/10 {
			return ^uint64(0)
		}
		n = n*10 + d
	}
	return n
}

func at(s []uint64, i int) uint64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}
