package pricing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRates(t *testing.T) *Rates {
	t.Helper()
	rates := NewRates()
	require.NoError(t, rates.SetRate(CurrencyUSD, 0.05))
	return rates
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	rates := newTestRates(t)

	assert.Equal(t, 123.45, rates.Convert(123.45, CurrencyTRY, CurrencyTRY))
	assert.Equal(t, 123.45, rates.Convert(123.45, CurrencyUSD, CurrencyUSD))
}

func TestConvertBaseToDisplayCurrency(t *testing.T) {
	rates := newTestRates(t)

	// 100 TRY at a USD rate of 0.05 is 5 USD
	converted := rates.Convert(100, CurrencyTRY, CurrencyUSD)
	assert.InDelta(t, 5.00, converted, 1e-9)
	assert.Equal(t, "$5.00", rates.Format(converted, CurrencyUSD, true))
	assert.Equal(t, "5.00", rates.Format(converted, CurrencyUSD, false))
}

func TestConvertRoundTrip(t *testing.T) {
	rates := newTestRates(t)

	amounts := []float64{0, 0.01, 1, 99.99, 100, 12345.67}
	for _, amount := range amounts {
		there := rates.Convert(amount, CurrencyTRY, CurrencyUSD)
		back := rates.Convert(there, CurrencyUSD, CurrencyTRY)
		assert.InDelta(t, amount, back, 1e-9, "round trip of %v", amount)
	}
}

func TestSetRateRejectsNonPositiveRates(t *testing.T) {
	rates := newTestRates(t)

	assert.ErrorIs(t, rates.SetRate(CurrencyUSD, 0), ErrInvalidRate)
	assert.ErrorIs(t, rates.SetRate(CurrencyUSD, -1), ErrInvalidRate)

	// Prior rate is retained after a rejected update
	assert.Equal(t, 0.05, rates.Rate(CurrencyUSD))
}

func TestSetRateRejectsBaseCurrency(t *testing.T) {
	rates := newTestRates(t)

	assert.Error(t, rates.SetRate(BaseCurrency, 2))
	assert.Equal(t, float64(1), rates.Rate(BaseCurrency))
}

func TestSetRateIsObservedByLaterConversions(t *testing.T) {
	rates := newTestRates(t)

	require.NoError(t, rates.SetRate(CurrencyUSD, 0.10))
	assert.InDelta(t, 10.00, rates.Convert(100, CurrencyTRY, CurrencyUSD), 1e-9)
}

func TestRatePanicsForUnknownCurrency(t *testing.T) {
	rates := NewRates()

	assert.Panics(t, func() { rates.Rate(Currency("EUR")) })
	assert.Panics(t, func() { rates.Convert(1, Currency("EUR"), CurrencyTRY) })
}

func TestConcurrentReadsDuringRateSwap(t *testing.T) {
	rates := newTestRates(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				rate := rates.Rate(CurrencyUSD)
				// Readers only ever see a fully applied rate
				assert.True(t, rate == 0.05 || rate == 0.2)
			}
		}()
	}

	for j := 0; j < 100; j++ {
		require.NoError(t, rates.SetRate(CurrencyUSD, 0.2))
		require.NoError(t, rates.SetRate(CurrencyUSD, 0.05))
	}
	wg.Wait()
}

func TestToMajor(t *testing.T) {
	assert.Equal(t, 12.5, ToMajor(1250))
	assert.Equal(t, 0.0, ToMajor(0))
}
