package domain

import "fmt"

// PayoutSummary aggregates the payouts of every ticket in a range of numbers.
// Largest is the highest positive payout; it stays zero when no ticket pays a
// positive amount, as with a negative stake.
type PayoutSummary struct {
	NumbersChecked int64
	WinningTickets int64
	Total          Amount
	Largest        Amount
	LargestNumber  LotteryNumber
}

// Merge combines two summaries over disjoint ranges. Ties on the largest payout
// keep the lower number.
func (s PayoutSummary) Merge(o PayoutSummary) PayoutSummary {
	merged := PayoutSummary{
		NumbersChecked: s.NumbersChecked + o.NumbersChecked,
		WinningTickets: s.WinningTickets + o.WinningTickets,
		Total:          s.Total.Add(o.Total),
		Largest:        s.Largest,
		LargestNumber:  s.LargestNumber,
	}
	if o.Largest.Minor() > s.Largest.Minor() ||
		(o.Largest == s.Largest && !o.Largest.IsZero() && o.LargestNumber < s.LargestNumber) {
		merged.Largest = o.Largest
		merged.LargestNumber = o.LargestNumber
	}
	return merged
}

// SweepPayouts plays every number in [from, to] with stake against draw and
// aggregates the results. visit, when non-nil, receives each number's total and
// may stop the sweep by returning an error.
func SweepPayouts(
	draw []WinningNumber,
	from, to LotteryNumber,
	stake Amount,
	visit func(LotteryNumber, Amount) error,
) (PayoutSummary, error) {
	if from > to || !to.Valid() {
		return PayoutSummary{}, fmt.Errorf("%w: %d..%d", ErrInvalidSweepRange, from, to)
	}

	var summary PayoutSummary
	for n := from; ; n++ {
		results, err := DeriveAwards(draw, PlayedTicket{number: n, stake: stake})
		if err != nil {
			return PayoutSummary{}, err
		}
		total := GrandTotal(results)

		summary.NumbersChecked++
		if !total.IsZero() {
			summary.WinningTickets++
			summary.Total = summary.Total.Add(total)
			if total.Minor() > summary.Largest.Minor() {
				summary.Largest = total
				summary.LargestNumber = n
			}
		}
		if visit != nil {
			if err := visit(n, total); err != nil {
				return PayoutSummary{}, err
			}
		}
		if n == to {
			break
		}
	}
	return summary, nil
}
