package order

import (
	"testing"

	"github.com/gokhanazp/riversideburger-sub000/internal/domain/cart"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestValidateCheckout(t *testing.T) {
	withAddress := &user.User{Address: "Kadıköy, İstanbul"}
	noAddress := &user.User{}

	filled := cart.NewCart(1)
	filled.AddItem(1, "Klasik Burger", 18500, nil, "")
	empty := cart.NewCart(1)

	tests := []struct {
		name    string
		account *user.User
		cart    *cart.Cart
		open    bool
		wantErr error
	}{
		{"all preconditions met", withAddress, filled, true, nil},
		{"missing address", noAddress, filled, true, ErrNoAddress},
		{"empty cart", withAddress, empty, true, ErrEmptyCart},
		{"store closed", withAddress, filled, false, ErrStoreClosed},
		{"missing address reported before empty cart", noAddress, empty, true, ErrNoAddress},
		{"missing address reported before closed store", noAddress, filled, false, ErrNoAddress},
		{"empty cart reported before closed store", withAddress, empty, false, ErrEmptyCart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckout(tt.account, tt.cart, tt.open)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPlanRedemption(t *testing.T) {
	tests := []struct {
		name       string
		subtotal   int64
		requested  int64
		balance    int64
		wantPoints int64
		wantTotal  int64
	}{
		{"no redemption", 20000, 0, 150, 0, 20000},
		{"partial redemption", 20000, 50, 150, 50, 15000},
		{"request over balance clamps to balance", 20000, 150, 100, 100, 10000},
		{"request over subtotal clamps to order", 15000, 200, 200, 150, 0},
		{"negative request treated as zero", 20000, -10, 150, 0, 20000},
		{"zero balance", 20000, 50, 0, 0, 20000},
		{"odd subtotal floors to whole points", 12345, 200, 200, 123, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, total := PlanRedemption(tt.subtotal, tt.requested, tt.balance)
			assert.Equal(t, tt.wantPoints, points)
			assert.Equal(t, tt.wantTotal, total)
			assert.GreaterOrEqual(t, total, int64(0))
			assert.Equal(t, tt.subtotal, total+points*100)
		})
	}
}
