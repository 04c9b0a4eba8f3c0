package engine

import "fmt"

// ValidationError rejects malformed create input before any state mutates.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientFundsError is returned when a redemption costs more than the
// wallet holds. The wallet is left untouched.
type InsufficientFundsError struct {
	Cost    int
	Balance int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("need %d coins, have %d", e.Cost, e.Balance)
}
