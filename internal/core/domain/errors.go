package domain

import "errors"

var (
	ErrInvalidTier       = errors.New("invalid prize tier")
	ErrNumberOutOfRange  = errors.New("lottery number out of range")
	ErrNoWinningNumbers  = errors.New("draw has no winning numbers")
	ErrTierCapExceeded   = errors.New("too many winning numbers for tier")
	ErrDuplicateNumber   = errors.New("number announced more than once")
	ErrAmountOverflow    = errors.New("monetary amount overflow")
	ErrDivisionByZero    = errors.New("monetary amount division by zero")
	ErrInvalidMatchRule  = errors.New("invalid match rule")
	ErrInvalidSweepRange = errors.New("invalid sweep range")

	// ErrIdempotencyKeyExists is returned when a concurrent publish already
	// claimed the same idempotency key.
	ErrIdempotencyKeyExists = errors.New("idempotency key already used")
)
