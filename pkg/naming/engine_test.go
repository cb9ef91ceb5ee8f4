package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRule int // 0 means no match
		wantMsg  Text
	}{
		{name: "underscore prefix", input: "_meta/", wantRule: 1, wantMsg: msgUnderscorePrefix},
		{name: "dot prefix", input: ".vscode/", wantRule: 1, wantMsg: msgDotPrefix},
		{name: "dunder is caught by underscore branch", input: "__pycache__/", wantRule: 1, wantMsg: msgUnderscorePrefix},
		{name: "bare underscore", input: "_", wantRule: 1, wantMsg: msgUnderscorePrefix},
		{name: "year", input: "2025/", wantRule: 2, wantMsg: msgChronological},
		{name: "month", input: "11/", wantRule: 2, wantMsg: msgChronological},
		{name: "three digits", input: "123/", wantRule: 0},
		{name: "year without slash", input: "2025", wantRule: 0},
		{name: "placeholder YYYY is documented only", input: "YYYY/", wantRule: 0},
		{name: "language code", input: "ja/", wantRule: 3, wantMsg: msgStandard},
		{name: "standard abbreviation", input: "i18n/", wantRule: 3, wantMsg: msgStandard},
		{name: "adr is a general name", input: "adr/", wantRule: 10, wantMsg: msgGeneral},
		{name: "industry convention", input: "fixtures/", wantRule: 4, wantMsg: msgConvention},
		{name: "src is documented only", input: "src/", wantRule: 0},
		{name: "reserved example falls through", input: "node_modules/", wantRule: 0},
		{name: "reserved dot example hits prefix rule", input: ".git/", wantRule: 1, wantMsg: msgDotPrefix},
		{name: "past participle", input: "archived/", wantRule: 6, wantMsg: msgLifecycle},
		{name: "adjective", input: "inactive/", wantRule: 6, wantMsg: msgLifecycle},
		{name: "present participle", input: "pending/", wantRule: 6, wantMsg: msgLifecycle},
		{name: "frequency", input: "ondemand/", wantRule: 7, wantMsg: msgFrequency},
		{name: "visibility", input: "internal/", wantRule: 8, wantMsg: msgVisibility},
		{name: "permanent is an attribute", input: "permanent/", wantRule: 8, wantMsg: msgVisibility},
		{name: "function category", input: "governance/", wantRule: 9, wantMsg: msgFunction},
		{name: "general", input: "drafts/", wantRule: 10, wantMsg: msgGeneral},
		{name: "case sensitive", input: "Docs/", wantRule: 0},
		{name: "missing slash", input: "docs", wantRule: 0},
		{name: "empty", input: "", wantRule: 0},
		{name: "unlisted", input: "random-unlisted-name/", wantRule: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.input)

			if tt.wantRule == 0 {
				assert.False(t, res.Valid)
				assert.Nil(t, res.Rule)
				assert.Equal(t, MessageNotRecognized, res.Message)
				return
			}

			assert.True(t, res.Valid)
			require.NotNil(t, res.Rule)
			assert.Equal(t, tt.wantRule, res.Rule.Number)
			assert.Equal(t, tt.wantRule, res.Rule.Priority)
			assert.Equal(t, tt.wantMsg, res.Message)
		})
	}
}

func TestEvaluate_ResultDoesNotAliasTable(t *testing.T) {
	res := Evaluate("lib/")
	require.NotNil(t, res.Rule)

	res.Rule.Examples[0] = "mutated/"
	res.Rule.LabelEN = "mutated"

	rule, ok := RuleByNumber(4)
	require.True(t, ok)
	assert.Equal(t, "src/", rule.Examples[0])
	assert.Equal(t, "Industry Conventions", rule.LabelEN)
}

func TestEngine_WithDisabledRules(t *testing.T) {
	t.Run("disabled rule falls through to not recognized", func(t *testing.T) {
		eng := New(WithDisabledRules(4))
		res := eng.Evaluate("lib/")
		assert.False(t, res.Valid)
		assert.Nil(t, res.Rule)
	})

	t.Run("other rules still match", func(t *testing.T) {
		eng := New(WithDisabledRules(4))
		res := eng.Evaluate("archived/")
		require.NotNil(t, res.Rule)
		assert.Equal(t, 6, res.Rule.Number)
	})

	t.Run("disabling prefix rule lets numeric names through", func(t *testing.T) {
		eng := New(WithDisabledRules(1))
		assert.False(t, eng.Evaluate("_meta/").Valid)
		assert.True(t, eng.Evaluate("2025/").Valid)
	})

	t.Run("unknown numbers are ignored", func(t *testing.T) {
		eng := New(WithDisabledRules(0, 42))
		for n := 1; n <= RuleCount; n++ {
			assert.True(t, eng.Enabled(n), "rule %d should be enabled", n)
		}
	})

	t.Run("enabled reflects options", func(t *testing.T) {
		eng := New(WithDisabledRules(7, 9))
		assert.False(t, eng.Enabled(7))
		assert.False(t, eng.Enabled(9))
		assert.True(t, eng.Enabled(8))
	})
}

func TestRules(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, RuleCount)

	for i, r := range rules {
		assert.Equal(t, i+1, r.Number, "rules must be in priority order")
		assert.Equal(t, r.Number, r.Priority)
		assert.NotEmpty(t, r.Label)
		assert.NotEmpty(t, r.LabelEN)
		assert.NotEmpty(t, r.Description.EN)
		assert.NotEmpty(t, r.Description.JA)
		assert.NotEmpty(t, r.Examples, "rule %d must have examples", r.Number)
	}

	assert.Equal(t, []string{"_", ".", "__"}, rules[0].PrefixPatterns)
	for _, r := range rules[1:] {
		assert.Empty(t, r.PrefixPatterns)
	}
}

func TestRuleByNumber(t *testing.T) {
	r, ok := RuleByNumber(5)
	require.True(t, ok)
	assert.Equal(t, "System Reserved", r.LabelEN)

	_, ok = RuleByNumber(0)
	assert.False(t, ok)
	_, ok = RuleByNumber(11)
	assert.False(t, ok)
}

// =============================================================================
// Properties
// =============================================================================

func TestProperty_PrefixNamesMatchRuleOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.SampledFrom([]string{"_", ".", "__"}).Draw(t, "prefix")
		rest := rapid.String().Draw(t, "rest")
		name := prefix + rest

		res := Evaluate(name)
		if !res.Valid || res.Rule == nil || res.Rule.Number != 1 {
			t.Fatalf("Evaluate(%q) = %+v, want rule 1", name, res)
		}
	})
}

func TestProperty_DigitDirectoriesMatchRuleTwo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var name string
		if rapid.Bool().Draw(t, "year") {
			name = fmt.Sprintf("%04d/", rapid.IntRange(0, 9999).Draw(t, "n"))
		} else {
			name = fmt.Sprintf("%02d/", rapid.IntRange(0, 99).Draw(t, "n"))
		}

		res := Evaluate(name)
		if !res.Valid || res.Rule == nil || res.Rule.Number != 2 {
			t.Fatalf("Evaluate(%q) = %+v, want rule 2", name, res)
		}
	})
}

func TestProperty_ConventionNamesMatchRuleFour(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(conventionNames).Draw(t, "name")

		res := Evaluate(name)
		if !res.Valid || res.Rule == nil || res.Rule.Number != 4 {
			t.Fatalf("Evaluate(%q) = %+v, want rule 4", name, res)
		}
	})
}

func TestProperty_ReservedRuleNeverMatches(t *testing.T) {
	reserved, ok := RuleByNumber(5)
	require.True(t, ok)

	rapid.Check(t, func(t *rapid.T) {
		var name string
		if rapid.Bool().Draw(t, "fromExamples") {
			name = rapid.SampledFrom(reserved.Examples).Draw(t, "example")
		} else {
			name = rapid.String().Draw(t, "name")
		}

		res := Evaluate(name)
		if res.Rule != nil && res.Rule.Number == 5 {
			t.Fatalf("Evaluate(%q) matched the reserved rule", name)
		}
	})
}

func TestProperty_EvaluateIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")

		first := Evaluate(name)
		second := Evaluate(name)
		if !assert.ObjectsAreEqual(first, second) {
			t.Fatalf("Evaluate(%q) not idempotent: %+v vs %+v", name, first, second)
		}
	})
}

func TestProperty_ValidIffRulePresent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")

		res := Evaluate(name)
		if res.Valid != (res.Rule != nil) {
			t.Fatalf("Evaluate(%q): valid=%v but rule=%v", name, res.Valid, res.Rule)
		}
	})
}
