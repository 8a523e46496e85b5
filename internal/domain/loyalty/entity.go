// internal/domain/loyalty/entity.go
package loyalty

import (
	"time"
)

// TransactionType distinguishes earning from spending
type TransactionType string

const (
	TransactionTypeEarned TransactionType = "earned"
	TransactionTypeUsed   TransactionType = "used"
)

// Account holds a user's balance in whole points, each worth
// PointValueMinorUnits of discount
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Points    int64     `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction is one ledger entry; every balance change leaves one
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	OrderID   *uint           `gorm:"index" json:"order_id,omitempty"`
	Type      TransactionType `gorm:"not null;size:20" json:"type"`
	Amount    int64           `gorm:"not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName overrides
func (Account) TableName() string     { return "loyalty_accounts" }
func (Transaction) TableName() string { return "loyalty_transactions" }
