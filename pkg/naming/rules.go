package naming

import (
	"regexp"
	"slices"
	"strings"
)

// CheckFunc reports whether name satisfies a rule and, if so, the message
// explaining why. Messages are fixed per check and never derived from name.
type CheckFunc func(name string) (Text, bool)

// RuleDef pairs a rule with its check. A nil Check never matches.
type RuleDef struct {
	Rule
	Check CheckFunc
}

var (
	yearPattern     = regexp.MustCompile(`^\d{4}/$`)
	twoDigitPattern = regexp.MustCompile(`^\d{2}/$`)
)

// Allow-lists used by the membership checks.
var (
	standardNames      = []string{"en/", "ja/", "zh/", "prd/", "i18n/", "spec/"}
	conventionNames    = []string{"lib/", "hooks/", "tests/", "docs/", "fixtures/", "utils/"}
	pastParticiples    = []string{"archived/", "implemented/", "deprecated/", "completed/"}
	stateAdjectives    = []string{"active/", "inactive/"}
	presentParticiples = []string{"running/", "pending/"}
	frequencyNames     = []string{"daily/", "weekly/", "monthly/", "yearly/", "ondemand/"}
	visibilityNames    = []string{"public/", "private/", "internal/", "permanent/", "temporary/"}
	functionNames      = []string{"generate/", "validate/", "process/", "governance/", "content/", "operations/"}
	generalNames       = []string{"adr/", "issues/", "materials/", "drafts/"}
)

// Messages returned by the checks.
var (
	msgUnderscorePrefix = Text{
		EN: "Suitable as a system structure directory (underscore prefix).",
		JA: "システム構造ディレクトリとして適切です（アンダースコア接頭辞）。",
	}
	msgDotPrefix = Text{
		EN: "Suitable as a tool configuration directory (dot prefix).",
		JA: "ツール設定ディレクトリとして適切です（ドット接頭辞）。",
	}
	msgDunder = Text{
		EN: "Suitable as a system reserved directory (double underscore).",
		JA: "システム予約ディレクトリとして適切です（ダブルアンダースコア）。",
	}
	msgChronological = Text{
		EN: "Suitable as a chronological directory (ISO 8601).",
		JA: "時系列ディレクトリとして適切です（ISO 8601準拠）。",
	}
	msgStandard = Text{
		EN: "Suitable as an international standard or industry-standard abbreviation.",
		JA: "国際標準または業界標準略語として適切です。",
	}
	msgConvention = Text{
		EN: "Suitable as an industry-standard directory name.",
		JA: "業界標準のディレクトリ名として適切です。",
	}
	msgLifecycle = Text{
		EN: "Expresses a lifecycle state appropriately.",
		JA: "ライフサイクル状態を適切に表現しています。",
	}
	msgFrequency = Text{
		EN: "Expresses a frequency attribute appropriately.",
		JA: "頻度属性を適切に表現しています。",
	}
	msgVisibility = Text{
		EN: "Expresses visibility or an attribute appropriately.",
		JA: "公開性・属性を適切に表現しています。",
	}
	msgFunction = Text{
		EN: "Expresses a functional category appropriately.",
		JA: "機能カテゴリを適切に表現しています。",
	}
	msgGeneral = Text{
		EN: "A suitable name following the general rules.",
		JA: "一般規則に従った適切な名前です。",
	}

	// MessageNotRecognized is the message of every unmatched result.
	MessageNotRecognized = Text{
		EN: "This name does not follow the recommended naming conventions. Consider a name that fits its purpose.",
		JA: "この名前は推奨される命名規則に従っていません。用途に応じた適切な名前を検討してください。",
	}
)

// memberOf builds a check that matches exact members of the given lists.
func memberOf(msg Text, lists ...[]string) CheckFunc {
	return func(name string) (Text, bool) {
		for _, list := range lists {
			if slices.Contains(list, name) {
				return msg, true
			}
		}
		return Text{}, false
	}
}

// checkPrefix tests the three prefix alternatives in order.
// The double-underscore branch is shadowed by the underscore branch; it is
// kept so the rule documents all three markers.
func checkPrefix(name string) (Text, bool) {
	if strings.HasPrefix(name, "_") {
		return msgUnderscorePrefix, true
	}
	if strings.HasPrefix(name, ".") {
		return msgDotPrefix, true
	}
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return msgDunder, true
	}
	return Text{}, false
}

func checkChronological(name string) (Text, bool) {
	if yearPattern.MatchString(name) || twoDigitPattern.MatchString(name) {
		return msgChronological, true
	}
	return Text{}, false
}

// ruleTable is the ordered rule set. Index i holds rule i+1.
var ruleTable = []RuleDef{
	{
		Rule: Rule{
			Number:   1,
			Priority: 1,
			Label:    "接頭辞規則",
			LabelEN:  "Prefix Rules",
			Description: Text{
				EN: "Underscore prefix (_) marks system structure directories, dot prefix (.) marks tool configuration directories, double underscore (__) marks system reserved directories.",
				JA: "アンダースコア始まり（_）→ システム構造ディレクトリ、ドット始まり（.）→ ツール設定ディレクトリ、ダブルアンダースコア（__）→ システム予約ディレクトリ",
			},
			Examples:       []string{"_meta/", "_templates/", "_raw-exports/", ".vscode/", ".cursor/", ".claude/", "__pycache__/"},
			PrefixPatterns: []string{"_", ".", "__"},
		},
		Check: checkPrefix,
	},
	{
		Rule: Rule{
			Number:   2,
			Priority: 2,
			Label:    "時系列ディレクトリ",
			LabelEN:  "Chronological Directories",
			Description: Text{
				EN: "YYYY/, MM/, DD/ form an ISO 8601 chronological structure. Year, month and day placeholders are written in uppercase.",
				JA: "YYYY/, MM/, DD/ → ISO 8601準拠の時系列構造。年月日のディレクトリは大文字で統一。",
			},
			Examples: []string{"2025/", "11/", "14/", "YYYY/", "MM/", "DD/"},
		},
		Check: checkChronological,
	},
	{
		Rule: Rule{
			Number:   3,
			Priority: 3,
			Label:    "国際標準・略語",
			LabelEN:  "International Standards & Abbreviations",
			Description: Text{
				EN: "ISO 639-1 language codes (en/, ja/, zh/) and industry-standard abbreviations (prd/, i18n/, spec/, adr/). Only established abbreviations are used.",
				JA: "ISO 639-1言語コード（en/, ja/, zh/）、業界標準略語（prd/, i18n/, spec/, adr/）。確立された略語のみ使用。",
			},
			Examples: []string{"en/", "ja/", "zh/", "prd/", "i18n/", "spec/", "adr/"},
		},
		Check: memberOf(msgStandard, standardNames),
	},
	{
		Rule: Rule{
			Number:   4,
			Priority: 4,
			Label:    "業界慣習",
			LabelEN:  "Industry Conventions",
			Description: Text{
				EN: "Industry-standard directory names with decades of history, widely adopted across ecosystems.",
				JA: "50年以上の歴史を持つ業界標準のディレクトリ名。エコシステム全体で広く採用されている慣習。",
			},
			Examples: []string{"src/", "lib/", "hooks/", "tests/", "docs/", "fixtures/", "utils/", "components/"},
		},
		Check: memberOf(msgConvention, conventionNames),
	},
	{
		Rule: Rule{
			Number:   5,
			Priority: 5,
			Label:    "システム予約",
			LabelEN:  "System Reserved",
			Description: Text{
				EN: "Directories generated and managed by tools or the system. Not to be changed.",
				JA: "ツールやシステムが自動生成・管理するディレクトリ。変更不可。",
			},
			Examples: []string{".git/", "node_modules/", "__pycache__/", "tmp/", "cache/", "build/", ".next/"},
		},
		// Reserved names are produced by tooling, not proposed by users.
		Check: nil,
	},
	{
		Rule: Rule{
			Number:   6,
			Priority: 6,
			Label:    "ライフサイクル状態",
			LabelEN:  "Lifecycle States",
			Description: Text{
				EN: "Past participles (archived/, implemented/, deprecated/) and adjectives (active/, permanent/) express lifecycle state.",
				JA: "過去分詞形（archived/, implemented/, deprecated/）、形容詞（active/, permanent/）でライフサイクル状態を表現。",
			},
			Examples: []string{"archived/", "implemented/", "deprecated/", "completed/", "active/", "permanent/", "abandoned/"},
		},
		Check: memberOf(msgLifecycle, pastParticiples, stateAdjectives, presentParticiples),
	},
	{
		Rule: Rule{
			Number:   7,
			Priority: 7,
			Label:    "機能カテゴリ",
			LabelEN:  "Functional Categories",
			Description: Text{
				EN: "Base-form verbs (create/, validate/, export/) express function. Use the singular.",
				JA: "動詞原形（create/, validate/, export/）で機能を表現。単数形を使用。",
			},
			Examples: []string{"create/", "validate/", "export/", "import/", "update/", "generate/", "process/"},
		},
		Check: memberOf(msgFrequency, frequencyNames),
	},
	{
		Rule: Rule{
			Number:   8,
			Priority: 8,
			Label:    "コンテンツタイプ",
			LabelEN:  "Content Types",
			Description: Text{
				EN: "Plural nouns (materials/, issues/) or singular nouns (governance/, content/). Countable nouns are plural, uncountable nouns singular.",
				JA: "名詞複数形（materials/, issues/）または名詞単数形（governance/, content/）。可算名詞は複数形、不可算名詞は単数形。",
			},
			Examples: []string{"materials/", "issues/", "scripts/", "governance/", "content/", "log/"},
		},
		Check: memberOf(msgVisibility, visibilityNames),
	},
	{
		Rule: Rule{
			Number:   9,
			Priority: 9,
			Label:    "頻度・属性",
			LabelEN:  "Frequency & Attributes",
			Description: Text{
				EN: "Frequency adjectives (daily/, monthly/, ondemand/) and visibility attributes (public/, private/, internal/).",
				JA: "頻度形容詞（daily/, monthly/, ondemand/）、公開性・属性（public/, private/, internal/）。",
			},
			Examples: []string{"daily/", "weekly/", "monthly/", "yearly/", "ondemand/", "public/", "private/", "internal/"},
		},
		Check: memberOf(msgFunction, functionNames),
	},
	{
		Rule: Rule{
			Number:   10,
			Priority: 10,
			Label:    "表記スタイル",
			LabelEN:  "Notation Style",
			Description: Text{
				EN: "Lowercase (src/, lib/), kebab-case (raw-exports/, ai-talks/), UPPERCASE for chronological names only. Apart from ecosystem exceptions, use lowercase and kebab-case.",
				JA: "小文字（src/, lib/）、kebab-case（raw-exports/, ai-talks/）、UPPERCASE（時系列のみ）。エコシステム例外を除き小文字とkebab-caseを使用。",
			},
			Examples: []string{"src/", "lib/", "raw-exports/", "ai-talks/", "content-log/"},
		},
		Check: memberOf(msgGeneral, generalNames),
	},
}

// RuleCount is the number of rules in the table.
const RuleCount = 10

// Rules returns copies of all rules in priority order.
func Rules() []Rule {
	rules := make([]Rule, 0, len(ruleTable))
	for _, def := range ruleTable {
		rules = append(rules, def.Rule.clone())
	}
	return rules
}

// RuleByNumber returns a copy of the rule with the given number.
func RuleByNumber(n int) (Rule, bool) {
	if n < 1 || n > len(ruleTable) {
		return Rule{}, false
	}
	return ruleTable[n-1].Rule.clone(), true
}
