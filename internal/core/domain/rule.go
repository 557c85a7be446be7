package domain

import "fmt"

// MatchRule is a condition between a winning number and a played number that can
// earn a prize.
type MatchRule int

const (
	RuleExactMatch MatchRule = iota
	RuleAdjacent
	RuleSameHundred
	RuleLastTwoDigits
	RuleLastDigit

	ruleCount
)

// AllRules lists every rule in evaluation order.
var AllRules = [ruleCount]MatchRule{
	RuleExactMatch,
	RuleAdjacent,
	RuleSameHundred,
	RuleLastTwoDigits,
	RuleLastDigit,
}

var ruleNames = [ruleCount]string{
	RuleExactMatch:    "exact_match",
	RuleAdjacent:      "adjacent",
	RuleSameHundred:   "same_hundred",
	RuleLastTwoDigits: "last_two_digits",
	RuleLastDigit:     "last_digit",
}

// Valid reports whether r is one of the defined rules.
func (r MatchRule) Valid() bool {
	return r >= 0 && r < ruleCount
}

func (r MatchRule) String() string {
	if !r.Valid() {
		return fmt.Sprintf("MatchRule(%d)", int(r))
	}
	return ruleNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r MatchRule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMatchRule, int(r))
	}
	return []byte(ruleNames[r]), nil
}

// Matches reports whether played satisfies the rule against winning.
// Every rule other than RuleExactMatch excludes equal numbers.
func (r MatchRule) Matches(winning, played LotteryNumber) bool {
	switch r {
	case RuleExactMatch:
		return winning == played
	case RuleAdjacent:
		d := int64(winning) - int64(played)
		return d == 1 || d == -1
	case RuleSameHundred:
		return winning != played && winning/100 == played/100
	case RuleLastTwoDigits:
		return winning != played && winning%100 == played%100
	case RuleLastDigit:
		return winning != played && winning%10 == played%10
	default:
		panic(fmt.Errorf("%w: %d", ErrInvalidMatchRule, int(r)))
	}
}
