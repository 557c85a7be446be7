package drawfile

import (
	"lottery-awards/internal/core/domain"
)

// Mismatch is a number whose derived payout differs from the expected one.
type Mismatch struct {
	Number   domain.LotteryNumber
	Expected domain.Amount
	Got      domain.Amount
}

// Verify plays every lottery number with stake against draw and compares the
// total each one earns with expected. It returns every mismatch in number
// order together with the payout summary of the full range.
func Verify(
	draw []domain.WinningNumber,
	expected map[domain.LotteryNumber]domain.Amount,
	stake domain.Amount,
) ([]Mismatch, domain.PayoutSummary, error) {
	var mismatches []Mismatch
	summary, err := domain.SweepPayouts(draw, 0, domain.MaxLotteryNumber, stake,
		func(n domain.LotteryNumber, got domain.Amount) error {
			if want := expected[n]; want != got {
				mismatches = append(mismatches, Mismatch{Number: n, Expected: want, Got: got})
			}
			return nil
		})
	if err != nil {
		return nil, domain.PayoutSummary{}, err
	}
	return mismatches, summary, nil
}
