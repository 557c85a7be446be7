package domain

import "fmt"

// Award is one entitlement a ticket earns against one winning number under one rule.
type Award struct {
	Rule   MatchRule
	Amount Amount
}

// DerivedResult groups the awards a ticket earns against a single winning number.
type DerivedResult struct {
	WinningNumber WinningNumber
	Ticket        PlayedTicket
	Awards        []Award
}

// Total returns the sum of all awards in the result.
func (d DerivedResult) Total() Amount {
	var total Amount
	for _, a := range d.Awards {
		total = total.Add(a.Amount)
	}
	return total
}

// ScaleAward converts a per-nominal-share award into the award for stake.
func ScaleAward(base, stake Amount) (Amount, error) {
	scaled, err := base.MulDiv(stake, NominalStake())
	if err != nil {
		return Amount{}, fmt.Errorf("scaling %s by stake %s: %w", base, stake, err)
	}
	return scaled, nil
}

// Derive evaluates every rule of w's tier against ticket.
func (w WinningNumber) Derive(ticket PlayedTicket) (DerivedResult, error) {
	spec := w.tier.Spec()
	result := DerivedResult{WinningNumber: w, Ticket: ticket}

	for _, rule := range AllRules {
		if !rule.Matches(w.number, ticket.number) {
			continue
		}
		base := spec.BaseAward(rule)
		if base.IsZero() {
			continue
		}
		scaled, err := ScaleAward(base, ticket.stake)
		if err != nil {
			return DerivedResult{}, err
		}
		result.Awards = append(result.Awards, Award{Rule: rule, Amount: scaled})
	}
	return result, nil
}

// DeriveAwards computes the awards ticket earns against every winning number of a
// draw. Winning numbers that earn nothing are left out; the order of draw is kept.
func DeriveAwards(draw []WinningNumber, ticket PlayedTicket) ([]DerivedResult, error) {
	var results []DerivedResult
	for _, w := range draw {
		derived, err := w.Derive(ticket)
		if err != nil {
			return nil, fmt.Errorf("winning number %s (%s): %w", w.number, w.tier, err)
		}
		if len(derived.Awards) == 0 {
			continue
		}
		results = append(results, derived)
	}
	return results, nil
}

// GrandTotal sums the totals of every result.
func GrandTotal(results []DerivedResult) Amount {
	var total Amount
	for _, r := range results {
		total = total.Add(r.Total())
	}
	return total
}
