package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReferenceKey(t *testing.T) {
	config := DefaultMatchingConfig()

	tests := []struct {
		name      string
		reference string
		wantKey   string
		wantOK    bool
	}{
		{name: "long reference", reference: "TRF-00123456", wantKey: "123456", wantOK: true},
		{name: "exact length", reference: "123456", wantKey: "123456", wantOK: true},
		{name: "too short", reference: "12345", wantKey: "", wantOK: false},
		{name: "empty", reference: "", wantKey: "", wantOK: false},
		{name: "alphanumeric suffix", reference: "PAY#AB12CD", wantKey: "AB12CD", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := config.ReferenceKey(tt.reference)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("ReferenceKey(%q) = (%q, %v), want (%q, %v)",
					tt.reference, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestIsAmountMatch(t *testing.T) {
	config := DefaultMatchingConfig()

	tests := []struct {
		name   string
		system string
		bank   string
		want   bool
	}{
		{name: "exact", system: "150.00", bank: "150.00", want: true},
		{name: "within tolerance", system: "150.005", bank: "150.00", want: true},
		{name: "at tolerance boundary", system: "150.01", bank: "150.00", want: false},
		{name: "above tolerance", system: "150.02", bank: "150.00", want: false},
		{name: "matching debits", system: "-320.50", bank: "-320.50", want: true},
		{name: "opposite signs match on magnitude", system: "320.50", bank: "-320.50", want: true},
		{name: "opposite signs outside tolerance", system: "320.50", bank: "-320.52", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system := decimal.RequireFromString(tt.system)
			bank := decimal.RequireFromString(tt.bank)
			if got := config.IsAmountMatch(system, bank); got != tt.want {
				t.Errorf("IsAmountMatch(%s, %s) = %v, want %v", tt.system, tt.bank, got, tt.want)
			}
		})
	}
}

func TestIsDateMatch(t *testing.T) {
	config := DefaultMatchingConfig()
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want bool
	}{
		{name: "same day", days: 0, want: true},
		{name: "five days after", days: 5, want: true},
		{name: "five days before", days: -5, want: true},
		{name: "six days after", days: 6, want: false},
		{name: "six days before", days: -6, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.AddDate(0, 0, tt.days)
			if got := config.IsDateMatch(base, other); got != tt.want {
				t.Errorf("IsDateMatch(%s, %s) = %v, want %v", base, other, got, tt.want)
			}
		})
	}
}
