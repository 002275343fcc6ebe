package prompt

import (
	"regexp"
	"strings"
)

var (
	openingFence = regexp.MustCompile("```[A-Za-z0-9_+#.-]*[ \t]*\r?\n")
	closingFence = regexp.MustCompile("(?m)^[ \t]*```[ \t]*\r?$")
	trailerFence = regexp.MustCompile("```\\s*$")
)

// StripFences removes markdown code fence markers from generated code:
// every opening ``` with an optional language tag, closing ``` lines and a
// trailing ``` at the very end.
func StripFences(text string) string {
	text = openingFence.ReplaceAllString(text, "")
	text = closingFence.ReplaceAllString(text, "")
	text = trailerFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
