package labeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rulesFor(keywords ...string) []CleanupRule {
	rules := make([]CleanupRule, 0, len(keywords))
	for _, k := range keywords {
		rules = append(rules, *NewCleanupRule(k, ""))
	}
	return rules
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rules    []CleanupRule
		expected string
	}{
		{
			name:     "removes keywords in order and collapses whitespace",
			input:    "[샘플] 무료배송 티셔츠",
			rules:    rulesFor("[샘플]", "무료배송"),
			expected: "티셔츠",
		},
		{
			name:     "no rules leaves single spaces untouched",
			input:    "면 반팔 티셔츠",
			rules:    nil,
			expected: "면 반팔 티셔츠",
		},
		{
			name:     "interior removal collapses the double space left behind",
			input:    "프리미엄 [한정판] 머그컵",
			rules:    rulesFor("[한정판]"),
			expected: "프리미엄 머그컵",
		},
		{
			name:     "removes every occurrence of a keyword",
			input:    "sale sale sale hoodie",
			rules:    rulesFor("sale"),
			expected: "hoodie",
		},
		{
			name:     "earlier rule can starve a later overlapping rule",
			input:    "premium kit bundle",
			rules:    rulesFor("premium", "premium kit"),
			expected: "kit bundle",
		},
		{
			name:     "empty input",
			input:    "",
			rules:    rulesFor("[샘플]"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input, tt.rules))
		})
	}
}

func TestSanitizeSkipsDisabledAndEmptyRules(t *testing.T) {
	disabled := *NewCleanupRule("무료배송", "")
	disabled.Enabled = false
	empty := *NewCleanupRule("", "")

	got := Sanitize("무료배송 티셔츠", []CleanupRule{disabled, empty})
	assert.Equal(t, "무료배송 티셔츠", got)
}

func TestSanitizeIsIdempotentForDefaultStyleRules(t *testing.T) {
	rules := rulesFor("[샘플]", "무료배송", "(1+1)")
	input := "[샘플] (1+1) 무료배송  양말"

	once := Sanitize(input, rules)
	twice := Sanitize(once, rules)
	assert.Equal(t, once, twice)
}

func TestCleanupRuleApply(t *testing.T) {
	rule := NewCleanupRule("[샘플]", "샘플 표기 제거")

	keyword := "무료배송"
	disabled := false
	err := rule.Apply(CleanupRulePatch{Keyword: &keyword, Enabled: &disabled})
	assert.NoError(t, err)
	assert.Equal(t, "무료배송", rule.Keyword)
	assert.False(t, rule.Enabled)

	blank := "   "
	err = rule.Apply(CleanupRulePatch{Keyword: &blank})
	assert.EqualError(t, err, "Keyword cannot be empty")
	assert.Equal(t, "무료배송", rule.Keyword)
}
