package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRule_Matches(t *testing.T) {
	tests := []struct {
		name            string
		winning, played LotteryNumber
		want            []MatchRule
	}{
		{"exact", 12345, 12345, []MatchRule{RuleExactMatch}},
		{"next number", 12345, 12346, []MatchRule{RuleAdjacent, RuleSameHundred}},
		{"previous number", 12345, 12344, []MatchRule{RuleAdjacent, RuleSameHundred}},
		{"adjacent across hundred", 12399, 12400, []MatchRule{RuleAdjacent}},
		{"same hundred and last digit", 12345, 12355, []MatchRule{RuleSameHundred, RuleLastDigit}},
		{"last two digits", 12345, 99945, []MatchRule{RuleLastTwoDigits, RuleLastDigit}},
		{"last digit only", 12345, 67895, []MatchRule{RuleLastDigit}},
		{"zero against one", 0, 1, []MatchRule{RuleAdjacent, RuleSameHundred}},
		{"nothing", 12345, 67890, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []MatchRule
			for _, rule := range AllRules {
				if rule.Matches(tt.winning, tt.played) {
					got = append(got, rule)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchRule_NonExactRulesExcludeEquality(t *testing.T) {
	for _, n := range []LotteryNumber{0, 1, 99, 100, 12345, MaxLotteryNumber} {
		for _, rule := range AllRules[1:] {
			assert.False(t, rule.Matches(n, n), "%s must not match %s against itself", rule, n)
		}
	}
}

func TestMatchRule_Symmetric(t *testing.T) {
	pairs := [][2]LotteryNumber{{0, 1}, {12345, 12355}, {12345, 99945}, {500, 499}, {7, 70007}}
	for _, p := range pairs {
		for _, rule := range AllRules {
			assert.Equal(t, rule.Matches(p[0], p[1]), rule.Matches(p[1], p[0]), "%s %v", rule, p)
		}
	}
}

func TestMatchRule_String(t *testing.T) {
	assert.Equal(t, "exact_match", RuleExactMatch.String())
	assert.Equal(t, "adjacent", RuleAdjacent.String())
	assert.Equal(t, "same_hundred", RuleSameHundred.String())
	assert.Equal(t, "last_two_digits", RuleLastTwoDigits.String())
	assert.Equal(t, "last_digit", RuleLastDigit.String())
	assert.Equal(t, "MatchRule(9)", MatchRule(9).String())
}

func TestMatchRule_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { MatchRule(42).Matches(1, 1) })
}
