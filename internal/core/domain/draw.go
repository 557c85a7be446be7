package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LotteryNumber is a played or drawn number. Numbers compare numerically;
// leading zeros carry no meaning.
type LotteryNumber uint32

// MaxLotteryNumber is the highest number printed on a ticket (five digits).
const MaxLotteryNumber LotteryNumber = 99_999

// Valid reports whether n lies within the lottery's number range.
func (n LotteryNumber) Valid() bool { return n <= MaxLotteryNumber }

// String renders n with the five digits printed on tickets.
func (n LotteryNumber) String() string { return fmt.Sprintf("%05d", uint32(n)) }

// ParseLotteryNumber parses a decimal number, accepting leading zeros.
func ParseLotteryNumber(s string) (LotteryNumber, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumberOutOfRange, s)
	}
	n := LotteryNumber(v)
	if !n.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrNumberOutOfRange, v)
	}
	return n, nil
}

// WinningNumber is a number announced for a prize tier in a draw.
type WinningNumber struct {
	tier   PrizeTier
	number LotteryNumber
}

// NewWinningNumber validates and builds a winning number.
func NewWinningNumber(tier PrizeTier, number LotteryNumber) (WinningNumber, error) {
	if !tier.Valid() {
		return WinningNumber{}, fmt.Errorf("%w: %d", ErrInvalidTier, int(tier))
	}
	if !number.Valid() {
		return WinningNumber{}, fmt.Errorf("%w: %d", ErrNumberOutOfRange, number)
	}
	return WinningNumber{tier: tier, number: number}, nil
}

// MustWinningNumber is like NewWinningNumber but panics on invalid input.
func MustWinningNumber(tier PrizeTier, number LotteryNumber) WinningNumber {
	w, err := NewWinningNumber(tier, number)
	if err != nil {
		panic(err)
	}
	return w
}

// Tier returns the prize tier the number was announced for.
func (w WinningNumber) Tier() PrizeTier { return w.tier }

// Number returns the announced number.
func (w WinningNumber) Number() LotteryNumber { return w.number }

// PlayedTicket is a number played with a stake. The stake is relative to
// NominalStake and is not checked for sign.
type PlayedTicket struct {
	number LotteryNumber
	stake  Amount
}

// NewPlayedTicket validates and builds a played ticket.
func NewPlayedTicket(number LotteryNumber, stake Amount) (PlayedTicket, error) {
	if !number.Valid() {
		return PlayedTicket{}, fmt.Errorf("%w: %d", ErrNumberOutOfRange, number)
	}
	return PlayedTicket{number: number, stake: stake}, nil
}

// MustPlayedTicket is like NewPlayedTicket but panics on invalid input.
func MustPlayedTicket(number LotteryNumber, stake Amount) PlayedTicket {
	t, err := NewPlayedTicket(number, stake)
	if err != nil {
		panic(err)
	}
	return t
}

// Number returns the played number.
func (t PlayedTicket) Number() LotteryNumber { return t.number }

// Stake returns the amount played on the number.
func (t PlayedTicket) Stake() Amount { return t.stake }

// Draw is one lottery event and the numbers announced in it.
type Draw struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	HeldOn    time.Time       `json:"held_on"`
	Numbers   []WinningNumber `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate checks the announced numbers against the prize table: every tier
// stays within its winner cap and no number is announced twice.
func (d *Draw) Validate() error {
	if len(d.Numbers) == 0 {
		return ErrNoWinningNumbers
	}

	counts := make(map[PrizeTier]int, len(AllTiers()))
	seen := make(map[LotteryNumber]PrizeTier, len(d.Numbers))
	for _, w := range d.Numbers {
		if !w.tier.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidTier, int(w.tier))
		}
		if prev, dup := seen[w.number]; dup {
			return fmt.Errorf("%w: %s (%s and %s)", ErrDuplicateNumber, w.number, prev, w.tier)
		}
		seen[w.number] = w.tier

		counts[w.tier]++
		if limit := w.tier.Spec().WinnerCap(); counts[w.tier] > limit {
			return fmt.Errorf("%w: %s allows %d", ErrTierCapExceeded, w.tier, limit)
		}
	}
	return nil
}

// CountByTier returns how many numbers were announced per tier.
func (d *Draw) CountByTier() map[PrizeTier]int {
	counts := make(map[PrizeTier]int, len(AllTiers()))
	for _, w := range d.Numbers {
		counts[w.tier]++
	}
	return counts
}

// Derive computes what ticket earns in this draw.
func (d *Draw) Derive(ticket PlayedTicket) ([]DerivedResult, error) {
	return DeriveAwards(d.Numbers, ticket)
}
