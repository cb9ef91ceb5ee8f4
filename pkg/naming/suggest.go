package naming

// Purpose keys accepted by Suggest.
const (
	PurposeSystem    = "system"
	PurposeStatus    = "status"
	PurposeFrequency = "frequency"
	PurposeCategory  = "category"
	PurposeLanguage  = "language"
	PurposeTimeline  = "timeline"
)

var (
	descSystem    = Text{EN: "System structure", JA: "システム構造"}
	descStatus    = Text{EN: "Status management", JA: "状態管理"}
	descFrequency = Text{EN: "Frequency management", JA: "頻度管理"}
	descCategory  = Text{EN: "Functional category", JA: "機能カテゴリ"}
	descLanguage  = Text{EN: "By language", JA: "言語別"}
	descTimeline  = Text{EN: "Chronological", JA: "時系列"}
)

var purposeOrder = []string{
	PurposeSystem,
	PurposeStatus,
	PurposeFrequency,
	PurposeCategory,
	PurposeLanguage,
	PurposeTimeline,
}

var suggestionTable = map[string][]Suggestion{
	PurposeSystem:    group(descSystem, "_meta", "_templates", "_raw-exports"),
	PurposeStatus:    group(descStatus, "implemented", "archived", "deprecated", "active"),
	PurposeFrequency: group(descFrequency, "daily", "weekly", "monthly", "ondemand"),
	PurposeCategory:  group(descCategory, "generate", "validate", "process", "governance"),
	PurposeLanguage:  group(descLanguage, "en", "ja", "zh"),
	PurposeTimeline:  group(descTimeline, "2025", "11", "14"),
}

func group(desc Text, names ...string) []Suggestion {
	out := make([]Suggestion, len(names))
	for i, name := range names {
		out[i] = Suggestion{Name: name, Description: desc}
	}
	return out
}

// Suggest returns the suggested names for a purpose key.
// Unknown keys return an empty, non-nil list.
func Suggest(purposeKey string) []Suggestion {
	src := suggestionTable[purposeKey]
	out := make([]Suggestion, len(src))
	copy(out, src)
	return out
}

// Purposes returns the known purpose keys in display order.
func Purposes() []string {
	out := make([]string, len(purposeOrder))
	copy(out, purposeOrder)
	return out
}

// PurposeDescription returns the grouping description for a purpose key.
func PurposeDescription(purposeKey string) (Text, bool) {
	s, ok := suggestionTable[purposeKey]
	if !ok || len(s) == 0 {
		return Text{}, false
	}
	return s[0].Description, true
}

var showcaseTable = []Showcase{
	{
		Name:        Text{EN: "System structure", JA: "システム構造"},
		Description: Text{EN: "Manage metadata and templates", JA: "メタデータやテンプレートを管理"},
		Examples:    []string{"_meta/", "_templates/", "_raw-exports/"},
	},
	{
		Name:        Text{EN: "Status management", JA: "状態管理"},
		Description: Text{EN: "Express the lifecycle state of a project", JA: "プロジェクトのライフサイクル状態を表現"},
		Examples:    []string{"implemented/", "archived/", "deprecated/", "active/"},
	},
	{
		Name:        Text{EN: "By language", JA: "言語別"},
		Description: Text{EN: "Language codes for internationalization", JA: "国際化対応のための言語コード"},
		Examples:    []string{"en/", "ja/", "zh/"},
	},
	{
		Name:        Text{EN: "Frequency management", JA: "頻度管理"},
		Description: Text{EN: "Express execution frequency and timing", JA: "実行頻度やタイミングを表現"},
		Examples:    []string{"daily/", "weekly/", "monthly/", "ondemand/"},
	},
}

// Showcases returns the example groups in display order.
func Showcases() []Showcase {
	out := make([]Showcase, len(showcaseTable))
	for i, sc := range showcaseTable {
		sc.Examples = append([]string(nil), sc.Examples...)
		out[i] = sc
	}
	return out
}
