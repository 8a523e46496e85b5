package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxRedeemable(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		balance  int64
		want     int64
	}{
		{"balance covers subtotal", 10000, 15000, 10000},
		{"subtotal exceeds balance", 10000, 4000, 4000},
		{"equal", 10000, 10000, 10000},
		{"zero balance", 10000, 0, 0},
		{"zero subtotal", 0, 15000, 0},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxRedeemable(tt.subtotal, tt.balance)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestApplyRedemption(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     int64
		requested    int64
		balance      int64
		wantAccepted int64
		wantTotal    int64
		wantClamped  bool
	}{
		{"exact max", 10000, 10000, 15000, 10000, 0, false},
		{"partial", 10000, 2500, 15000, 2500, 7500, false},
		{"zero requested", 10000, 0, 15000, 0, 10000, false},
		{"request above subtotal clamps", 10000, 20000, 15000, 10000, 0, true},
		{"request above balance clamps", 10000, 9000, 4000, 4000, 6000, true},
		{"negative request clamps to zero", 10000, -500, 15000, 0, 10000, true},
		{"no balance", 10000, 5000, 0, 0, 10000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyRedemption(tt.subtotal, tt.requested, tt.balance)
			assert.Equal(t, tt.wantAccepted, got.Accepted)
			assert.Equal(t, tt.wantTotal, got.FinalTotal)
			assert.Equal(t, tt.wantClamped, got.Clamped)

			// Invariants: total = subtotal - accepted, never negative
			assert.Equal(t, tt.subtotal-got.Accepted, got.FinalTotal)
			assert.GreaterOrEqual(t, got.FinalTotal, int64(0))
		})
	}
}

func TestApplyRedemptionScenario(t *testing.T) {
	// Subtotal 100.00, balance 150.00, requested 200.00
	got := ApplyRedemption(10000, 20000, 15000)

	assert.Equal(t, int64(10000), got.Accepted)
	assert.True(t, got.Clamped)
	assert.Equal(t, int64(0), got.FinalTotal)
}
