// Package style reads the positional hints carried in a raw style string.
//
// Only the "x:" and "y:" keys are interpreted. The lookup is a plain
// substring search for the first occurrence of each key, so a key that is
// the tail of a longer word still matches: "max-x: 9" sets x, and
// "display: block" sets y from whatever follows "display:". This is a known
// limitation of the mini-language, not something the reader tries to repair.
package style

import (
	"strconv"
	"strings"
)

// Position is a node's explicit (x, y) coordinate in pixels.
type Position struct {
	X int
	Y int
}

// ParsePosition extracts the x and y coordinates from a style string such as
// "color: red; x: 50; y: 50;". A missing key leaves its coordinate at 0.
// Parsing is best-effort and never fails.
func ParsePosition(s string) Position {
	var pos Position
	if v, ok := lookup(s, "x:"); ok {
		pos.X = v
	}
	if v, ok := lookup(s, "y:"); ok {
		pos.Y = v
	}
	return pos
}

// lookup finds the first occurrence of key and reads the integer after it.
// ok is false when the key is absent or the number does not fit an int.
func lookup(s, key string) (int, bool) {
	i := strings.Index(s, key)
	if i < 0 {
		return 0, false
	}
	return leadingInt(s[i+len(key):])
}

// leadingInt reads an optionally signed decimal integer at the start of s
// after skipping whitespace, stopping at the first non-digit. No digits
// yields 0.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, true
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
