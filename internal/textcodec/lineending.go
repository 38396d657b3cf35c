package textcodec

import "strings"

// LineEnding is the newline convention detected in a document.
type LineEnding int

const (
	Unknown LineEnding = iota
	CRLF
	LF
)

func (l LineEnding) String() string {
	switch l {
	case CRLF:
		return "CRLF"
	case LF:
		return "LF"
	default:
		return "UNKNOWN"
	}
}

// DetectLineEnding looks at the first SampleSize characters of text.
func DetectLineEnding(text string) LineEnding {
	n := 0
	for i := range text {
		if n == SampleSize {
			text = text[:i]
			break
		}
		n++
	}
	switch {
	case strings.Contains(text, "\r\n"):
		return CRLF
	case strings.Contains(text, "\n"):
		return LF
	default:
		return Unknown
	}
}
