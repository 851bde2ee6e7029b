package ui

import "strings"

// padRight pads s with spaces to width, truncating with an ellipsis
// when it does not fit.
func padRight(s string, width int) string {
	if len(s) >= width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// padCell aligns one cell according to the column justification.
func padCell(s string, width int, j Justify) string {
	if j == JustifyRight {
		return padLeft(s, width)
	}
	return padRight(s, width)
}
