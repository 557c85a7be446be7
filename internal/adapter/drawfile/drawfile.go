// Package drawfile reads draw results and expected payouts from CSV files.
//
// Winning numbers are stored one per line as "number,tier", e.g. "12345,first".
// Expected payouts are stored as "number,euros", e.g. "12346,21000" or
// "00070,1000.50". Blank lines are skipped and a leading header row whose
// first field is "number" is ignored.
package drawfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"lottery-awards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LineError reports a malformed CSV line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return cr
}

// each calls fn for every data row of r with the row's line number.
func each(r io.Reader, fn func(line int, a, b string) error) error {
	cr := newReader(r)
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line, _ := cr.FieldPos(0)

		a, b := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if first && strings.EqualFold(a, "number") {
			first = false
			continue
		}
		first = false

		if err := fn(line, a, b); err != nil {
			return &LineError{Line: line, Err: err}
		}
	}
}

// ReadWinningNumbers parses "number,tier" rows in file order.
func ReadWinningNumbers(r io.Reader) ([]domain.WinningNumber, error) {
	var numbers []domain.WinningNumber
	err := each(r, func(_ int, num, tierName string) error {
		n, err := domain.ParseLotteryNumber(num)
		if err != nil {
			return err
		}
		tier, err := domain.ParseTier(tierName)
		if err != nil {
			return err
		}
		w, err := domain.NewWinningNumber(tier, n)
		if err != nil {
			return err
		}
		numbers = append(numbers, w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading winning numbers: %w", err)
	}
	return numbers, nil
}

// ReadExpectedPayouts parses "number,euros" rows. Numbers absent from the file
// are expected to win nothing.
func ReadExpectedPayouts(r io.Reader) (map[domain.LotteryNumber]domain.Amount, error) {
	payouts := make(map[domain.LotteryNumber]domain.Amount)
	err := each(r, func(_ int, num, euros string) error {
		n, err := domain.ParseLotteryNumber(num)
		if err != nil {
			return err
		}
		if _, dup := payouts[n]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, n)
		}
		amount, err := ParseEuros(euros)
		if err != nil {
			return err
		}
		payouts[n] = amount
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading expected payouts: %w", err)
	}
	return payouts, nil
}

// ParseEuros parses a non-negative decimal euro amount with at most two
// fraction digits, such as "200", "1000.5" or "0.07". A trailing "€" is allowed.
func ParseEuros(s string) (domain.Amount, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(s), "€")
	if raw == "" || strings.ContainsAny(raw, "+-eE") || strings.HasSuffix(raw, ".") {
		return domain.Amount{}, fmt.Errorf("invalid euro amount %q", s)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || d.Exponent() < -2 {
		return domain.Amount{}, fmt.Errorf("invalid euro amount %q", s)
	}

	cents := d.Shift(2)
	if !cents.BigInt().IsInt64() {
		return domain.Amount{}, fmt.Errorf("euro amount %q out of range", s)
	}
	return domain.Cents(cents.IntPart()), nil
}
