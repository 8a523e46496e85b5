// internal/domain/loyalty/calculator.go
package loyalty

// One point is worth one lira of discount. The redemption math runs in
// minor units (kurus) like every other monetary amount, which keeps it
// in integers and makes the non-negative floor exact.
const PointValueMinorUnits = 100

// Redemption is the outcome of applying a redemption request to a
// subtotal. Accepted is the redeemed amount after clamping; Clamped is
// true iff the requested amount fell outside [0, MaxRedeemable].
type Redemption struct {
	Accepted   int64 `json:"accepted"`
	FinalTotal int64 `json:"final_total"`
	Clamped    bool  `json:"clamped"`
}

// MaxRedeemable returns the most a user can redeem against a subtotal:
// never more than the balance, never more than the order itself
func MaxRedeemable(subtotal, balance int64) int64 {
	if subtotal < 0 {
		subtotal = 0
	}
	if balance < 0 {
		balance = 0
	}
	if balance < subtotal {
		return balance
	}
	return subtotal
}

// ApplyRedemption clamps the requested amount into [0, MaxRedeemable]
// and computes the payable total. The final total can never go
// negative.
func ApplyRedemption(subtotal, requested, balance int64) Redemption {
	max := MaxRedeemable(subtotal, balance)

	accepted := requested
	clamped := false
	if accepted < 0 {
		accepted = 0
		clamped = true
	} else if accepted > max {
		accepted = max
		clamped = true
	}

	finalTotal := subtotal - accepted
	if finalTotal < 0 {
		finalTotal = 0
	}

	return Redemption{
		Accepted:   accepted,
		FinalTotal: finalTotal,
		Clamped:    clamped,
	}
}
