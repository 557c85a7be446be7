package domain

// NominalStake returns the full-share stake every tabulated prize is defined against.
func NominalStake() Amount { return Euros(200) }

// TierSpec is the prize table row of one tier.
type TierSpec struct {
	tier      PrizeTier
	winnerCap int
	// whole euros per nominal share, zero where the rule does not pay
	awards [ruleCount]int64
}

// Tier returns the tier this row describes.
func (s TierSpec) Tier() PrizeTier { return s.tier }

// WinnerCap returns how many numbers of this tier are drawn per event.
func (s TierSpec) WinnerCap() int { return s.winnerCap }

// BaseAward returns the award per nominal share for rule, or zero if the rule
// does not pay for this tier.
func (s TierSpec) BaseAward(rule MatchRule) Amount {
	if !rule.Valid() {
		return Amount{}
	}
	return Euros(s.awards[rule])
}

var prizeTable = [...]TierSpec{
	TierFirst: {
		tier:      TierFirst,
		winnerCap: 1,
		awards: [ruleCount]int64{
			RuleExactMatch:    4_000_000,
			RuleAdjacent:      20_000,
			RuleSameHundred:   1_000,
			RuleLastTwoDigits: 1_000,
			RuleLastDigit:     200,
		},
	},
	TierSecond: {
		tier:      TierSecond,
		winnerCap: 1,
		awards: [ruleCount]int64{
			RuleExactMatch:    1_250_000,
			RuleAdjacent:      12_500,
			RuleSameHundred:   1_000,
			RuleLastTwoDigits: 1_000,
		},
	},
	TierThird: {
		tier:      TierThird,
		winnerCap: 1,
		awards: [ruleCount]int64{
			RuleExactMatch:    500_000,
			RuleAdjacent:      9_600,
			RuleSameHundred:   1_000,
			RuleLastTwoDigits: 1_000,
		},
	},
	TierFourth: {
		tier:      TierFourth,
		winnerCap: 2,
		awards: [ruleCount]int64{
			RuleExactMatch:  200_000,
			RuleSameHundred: 1_000,
		},
	},
	TierFifth: {
		tier:      TierFifth,
		winnerCap: 8,
		awards: [ruleCount]int64{
			RuleExactMatch: 60_000,
		},
	},
	TierLittle: {
		tier:      TierLittle,
		winnerCap: 1000,
		awards: [ruleCount]int64{
			RuleExactMatch: 1_000,
		},
	},
}

// Spec returns the prize table row for t. Invalid tiers get an empty row that pays nothing.
func (t PrizeTier) Spec() TierSpec {
	if !t.Valid() {
		return TierSpec{tier: t}
	}
	return prizeTable[t]
}

// PrizeTable returns every row of the prize table ordered by tier.
func PrizeTable() []TierSpec {
	specs := make([]TierSpec, 0, len(prizeTable)-1)
	for _, t := range AllTiers() {
		specs = append(specs, prizeTable[t])
	}
	return specs
}
