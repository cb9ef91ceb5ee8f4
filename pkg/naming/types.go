package naming

import (
	"slices"
	"strings"
)

// =============================================================================
// Text
// =============================================================================

// Language selects which half of a Text is shown.
type Language string

// Supported languages.
const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// ParseLanguage converts a string to a Language.
// Returns LanguageEnglish and false if the value is not recognized.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish, true
	case LanguageJapanese:
		return LanguageJapanese, true
	default:
		return LanguageEnglish, false
	}
}

// Text is a static bilingual string.
type Text struct {
	EN string `json:"en" yaml:"en"`
	JA string `json:"ja" yaml:"ja"`
}

// In returns the text in the given language, falling back to English.
func (t Text) In(lang Language) string {
	if lang == LanguageJapanese && t.JA != "" {
		return t.JA
	}
	return t.EN
}

// String returns the English text.
func (t Text) String() string {
	return t.EN
}

// =============================================================================
// Rules
// =============================================================================

// Rule describes one naming convention.
// Priority always equals Number and defines evaluation order.
type Rule struct {
	Number         int      `json:"number" yaml:"number"`
	Label          string   `json:"label" yaml:"label"`       // Short label, e.g. "接頭辞規則"
	LabelEN        string   `json:"label_en" yaml:"label_en"` // English label, e.g. "Prefix Rules"
	Priority       int      `json:"priority" yaml:"priority"`
	Description    Text     `json:"description" yaml:"description"`
	Examples       []string `json:"examples" yaml:"examples"`
	PrefixPatterns []string `json:"prefix_patterns,omitempty" yaml:"prefix_patterns,omitempty"`
}

// clone returns a deep copy so callers cannot alter the rule table.
func (r Rule) clone() Rule {
	r.Examples = slices.Clone(r.Examples)
	r.PrefixPatterns = slices.Clone(r.PrefixPatterns)
	return r
}

// ValidationResult is the outcome of evaluating one name.
type ValidationResult struct {
	Valid   bool  `json:"valid" yaml:"valid"`
	Message Text  `json:"message" yaml:"message"`
	Rule    *Rule `json:"rule,omitempty" yaml:"rule,omitempty"` // nil when no rule matched
}

// =============================================================================
// Suggestions
// =============================================================================

// Suggestion is a recommended bare directory name (no trailing slash).
type Suggestion struct {
	Name        string `json:"name" yaml:"name"`
	Description Text   `json:"description" yaml:"description"`
}

// Showcase is a named group of example directory names.
type Showcase struct {
	Name        Text     `json:"name" yaml:"name"`
	Description Text     `json:"description" yaml:"description"`
	Examples    []string `json:"examples" yaml:"examples"`
}
