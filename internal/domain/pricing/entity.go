// internal/domain/pricing/entity.go
package pricing

import (
	"time"
)

// CurrencyRate persists an exchange rate so admin updates survive restarts
type CurrencyRate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null;size:3" json:"code"`
	Rate      float64   `gorm:"not null" json:"rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (CurrencyRate) TableName() string {
	return "currency_rates"
}
