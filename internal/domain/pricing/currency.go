// internal/domain/pricing/currency.go
package pricing

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Currency identifies one of the supported display currencies
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
)

// BaseCurrency is the currency every stored amount is denominated in.
// All arithmetic happens in base currency minor units (kurus); other
// currencies exist for display conversion only.
const BaseCurrency = CurrencyTRY

// CurrencyInfo holds display metadata for a currency
type CurrencyInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var currencyInfo = map[Currency]CurrencyInfo{
	CurrencyTRY: {Symbol: "₺", Name: "Turkish Lira"},
	CurrencyUSD: {Symbol: "$", Name: "US Dollar"},
}

// ErrInvalidRate is returned when a non-positive exchange rate is submitted
var ErrInvalidRate = errors.New("exchange rate must be positive")

// IsSupported reports whether the currency code is part of the closed set
func IsSupported(c Currency) bool {
	_, ok := currencyInfo[c]
	return ok
}

// Info returns display metadata for a supported currency.
// Unknown codes are a programming error.
func Info(c Currency) CurrencyInfo {
	info, ok := currencyInfo[c]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown currency %q", c))
	}
	return info
}

// SupportedCurrencies returns the closed currency set
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyTRY, CurrencyUSD}
}

// Rates is a process-wide exchange rate table. The table is swapped
// atomically on update so concurrent readers never observe a
// partially-updated set of rates. The base currency rate is fixed at 1.
type Rates struct {
	table atomic.Pointer[map[Currency]float64]
}

// NewRates creates a rate table with the base currency at rate 1
// and no other rates set
func NewRates() *Rates {
	r := &Rates{}
	initial := map[Currency]float64{BaseCurrency: 1}
	r.table.Store(&initial)
	return r
}

// Rate returns the conversion rate of a currency relative to the base
// currency. Unknown or unset currencies are a programming error.
func (r *Rates) Rate(c Currency) float64 {
	table := *r.table.Load()
	rate, ok := table[c]
	if !ok {
		panic(fmt.Sprintf("pricing: no rate for currency %q", c))
	}
	return rate
}

// SetRate replaces the rate of a display currency. The prior table stays
// in place when the rate is rejected.
func (r *Rates) SetRate(c Currency, rate float64) error {
	if !IsSupported(c) {
		panic(fmt.Sprintf("pricing: unknown currency %q", c))
	}
	if c == BaseCurrency {
		return errors.New("base currency rate is fixed at 1")
	}
	if rate <= 0 {
		return ErrInvalidRate
	}

	// Copy-on-write so readers keep a consistent snapshot
	old := *r.table.Load()
	next := make(map[Currency]float64, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[c] = rate
	r.table.Store(&next)
	return nil
}

// Convert converts an amount between two supported currencies via the
// base currency. Amounts are major units (lira, dollars); internal order
// math never goes through here.
func (r *Rates) Convert(amount float64, from, to Currency) float64 {
	if from == to {
		return amount
	}

	inBase := amount
	if from != BaseCurrency {
		inBase = amount / r.Rate(from)
	}
	if to == BaseCurrency {
		return inBase
	}
	return inBase * r.Rate(to)
}

// Format renders an amount with exactly two decimal digits, prefixed
// with the currency symbol when withSymbol is true
func (r *Rates) Format(amount float64, c Currency, withSymbol bool) string {
	if withSymbol {
		return fmt.Sprintf("%s%.2f", Info(c).Symbol, amount)
	}
	return fmt.Sprintf("%.2f", amount)
}

// ToMajor converts base-currency minor units to major units for display
func ToMajor(minor int64) float64 {
	return float64(minor) / 100
}
