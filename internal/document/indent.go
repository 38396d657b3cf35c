package document

import "strings"

const indentWidth = 4

// NextLineIndent returns the spaces a new line after line should start
// with: the line's own indent, one level deeper after an opening bracket.
func NextLineIndent(line string) string {
	n := 0
	for _, r := range line {
		if r == ' ' {
			n++
		} else if r == '\t' {
			n += indentWidth
		} else {
			break
		}
	}
	trimmed := strings.TrimRight(line, " \t\r\n")
	if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "[") || strings.HasSuffix(trimmed, "(") {
		n += indentWidth
	}
	return strings.Repeat(" ", n)
}
