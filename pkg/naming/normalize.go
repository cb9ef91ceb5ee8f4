package naming

import (
	"strings"

	"golang.org/x/text/width"
)

// Canonical converts user input into the form Evaluate expects.
//
// Transformation rules:
//   - surrounding whitespace is trimmed
//   - full-width ASCII is folded to narrow ("ｌｉｂ" -> "lib")
//   - a trailing slash is appended when missing ("lib" -> "lib/")
//   - blank input stays empty
func Canonical(input string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return ""
	}
	name = width.Fold.String(name)
	if !strings.HasSuffix(name, "/") {
		name += "/"
	}
	return name
}

// CanonicalExact is Canonical without width folding.
func CanonicalExact(input string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(name, "/") {
		name += "/"
	}
	return name
}

// Display strips one trailing slash for presentation.
func Display(name string) string {
	return strings.TrimSuffix(name, "/")
}
