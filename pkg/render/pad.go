package render

import "strings"

// Padding helpers. Widths are in characters; a string already wider than
// the requested width is returned unchanged, and non-positive pad counts
// are no-ops.

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func padRight(s string, width int) string {
	return padRightWith(s, width, ' ')
}

func padLeft(s string, width int) string {
	return padLeftWith(s, width, ' ')
}

func center(s string, width int) string {
	return centerWith(s, width, ' ')
}

func padRightWith(s string, width int, pad rune) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(string(pad), n)
	}
	return s
}

func padLeftWith(s string, width int, pad rune) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(string(pad), n) + s
	}
	return s
}

// centerWith splits padding across both sides. The odd-width bias matches
// the layout the renderer has always produced: the extra pad character
// lands on the left only when both the margin and the target width are
// odd.
func centerWith(s string, width int, pad rune) string {
	margin := width - len(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), margin-left)
}

// percentOf is floor(pct percent of total)
func percentOf(pct, total int) int {
	return pct * total / 100
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
