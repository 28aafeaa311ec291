// Package ledger contains the account statement building use case.
package ledger

import (
	"log/slog"
	"strconv"
	"strings"
)

const (
	// historicalChargeKey sorts the pre-system arrears charge before every
	// billing period.
	historicalChargeKey = 0

	// specialChargeKeyBase places capital-project installments after every
	// possible periodic charge key (year*100+month tops out at 999912).
	specialChargeKeyBase = 1000000
)

// chronologicalKey derives the total-order key for a billing period label in
// "YYYY-MM" form as year*100+month. Malformed labels sort at key zero; that
// is a data-quality concern, not a build failure.
func chronologicalKey(label string) int {
	year, month, ok := splitPeriodLabel(label)
	if !ok {
		slog.Warn("Malformed billing period label, sorting at key zero", "label", label)
		return 0
	}
	return year*100 + month
}

func splitPeriodLabel(label string) (year, month int, ok bool) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1900 {
		return 0, 0, false
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, month, true
}
