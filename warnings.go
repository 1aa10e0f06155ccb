package editorblocks

import (
	"fmt"
	"strings"
)

// WarningCode identifies the kind of a warning.
type WarningCode int

const (
	// WarnTruncated means the HTML scan stopped at its iteration limit and
	// later content was dropped.
	WarnTruncated WarningCode = iota + 1
	// WarnRawFallback means nothing was recognized and the whole input was
	// returned as a raw block.
	WarnRawFallback
	// WarnFormatGuessed means the input format was sniffed from the content.
	WarnFormatGuessed
)

// Warning is a non-fatal issue found during conversion.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

func newWarning(code WarningCode, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}
