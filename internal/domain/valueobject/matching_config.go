// Package valueobject contains domain value objects for the Condo Ledger system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchingConfig contains the configuration for bank-to-system matching.
type MatchingConfig struct {
	// Amount tolerance for the fuzzy phase. Differences strictly below this
	// value count as an amount match.
	AmountTolerance decimal.Decimal // 0.01

	// Date tolerance for the fuzzy phase.
	DateToleranceDays int // 5 days

	// Number of trailing reference characters compared in the exact phase.
	// References shorter than this never participate.
	ReferenceSuffixLength int // 6
}

// DefaultMatchingConfig returns the default matching configuration.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		AmountTolerance:       decimal.NewFromFloat(0.01),
		DateToleranceDays:     5,
		ReferenceSuffixLength: 6,
	}
}

// ReferenceKey reduces a reference to its comparable trailing suffix. The
// second return is false when the reference is too short to match safely.
func (c MatchingConfig) ReferenceKey(reference string) (string, bool) {
	if len(reference) < c.ReferenceSuffixLength {
		return "", false
	}
	return reference[len(reference)-c.ReferenceSuffixLength:], true
}

// IsAmountMatch checks whether two amounts match within the configured
// tolerance. Magnitudes are compared, so the direction of a movement never
// disqualifies a candidate on its own.
func (c MatchingConfig) IsAmountMatch(systemAmount, bankAmount decimal.Decimal) bool {
	diff := systemAmount.Abs().Sub(bankAmount.Abs()).Abs()
	return diff.LessThan(c.AmountTolerance)
}

// IsDateMatch checks whether two dates fall within the configured tolerance,
// in either direction.
func (c MatchingConfig) IsDateMatch(systemDate, bankDate time.Time) bool {
	diff := systemDate.Sub(bankDate)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(c.DateToleranceDays)*24*time.Hour
}
