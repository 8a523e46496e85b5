package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusReceived, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("shipped").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusReceived.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
	assert.False(t, StatusOnTheWay.IsTerminal())
}

func TestGenerateOrderNumber(t *testing.T) {
	at := time.Date(2026, time.August, 31, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20260831-00001", GenerateOrderNumber(at, 1))
	assert.Equal(t, "ORD-20260831-00042", GenerateOrderNumber(at, 42))
}

func TestGenerateOrderNumberUniquePerOrder(t *testing.T) {
	// Orders placed in the same instant still get distinct numbers
	// because the number carries the unique order id
	at := time.Date(2026, time.August, 31, 14, 30, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for id := uint(1); id <= 50; id++ {
		number := GenerateOrderNumber(at, id)
		assert.False(t, seen[number], number)
		seen[number] = true
	}
}
