package domain

import (
	"fmt"
	"strings"
)

// PrizeTier ranks the prize a winning number was drawn for. First is the highest.
type PrizeTier int

const (
	TierFirst PrizeTier = iota + 1
	TierSecond
	TierThird
	TierFourth
	TierFifth
	TierLittle
)

var tierNames = [...]string{
	TierFirst:  "first",
	TierSecond: "second",
	TierThird:  "third",
	TierFourth: "fourth",
	TierFifth:  "fifth",
	TierLittle: "little",
}

// AllTiers returns every tier ordered by significance.
func AllTiers() []PrizeTier {
	return []PrizeTier{TierFirst, TierSecond, TierThird, TierFourth, TierFifth, TierLittle}
}

// Valid reports whether t is one of the defined tiers.
func (t PrizeTier) Valid() bool {
	return t >= TierFirst && t <= TierLittle
}

func (t PrizeTier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PrizeTier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier parses a tier name such as "first" or "little". Case-insensitive.
func ParseTier(s string) (PrizeTier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllTiers() {
		if tierNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTier, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t PrizeTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTier, int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PrizeTier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
