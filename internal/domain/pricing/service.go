// internal/domain/pricing/service.go
package pricing

import (
	"fmt"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"gorm.io/gorm"
)

// Service keeps the in-memory rate table in sync with the
// currency_rates table
type Service struct {
	db     *gorm.DB
	config *config.Config
	rates  *Rates
}

// NewService creates a new pricing service around a shared rate table
func NewService(db *gorm.DB, cfg *config.Config, rates *Rates) *Service {
	return &Service{
		db:     db,
		config: cfg,
		rates:  rates,
	}
}

// Rates exposes the live rate table for conversion and formatting
func (s *Service) Rates() *Rates {
	return s.rates
}

// LoadRates loads persisted rates into the table, seeding the table on
// first boot when no rates have been stored yet
func (s *Service) LoadRates() error {
	var stored []CurrencyRate
	if err := s.db.Find(&stored).Error; err != nil {
		return fmt.Errorf("failed to load currency rates: %w", err)
	}

	if len(stored) == 0 {
		seed := CurrencyRate{Code: string(CurrencyUSD), Rate: s.config.Pricing.DefaultUSDRate}
		if err := s.db.Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to seed currency rates: %w", err)
		}
		stored = []CurrencyRate{seed}
	}

	for _, row := range stored {
		code := Currency(row.Code)
		if !IsSupported(code) || code == BaseCurrency {
			return fmt.Errorf("currency_rates contains unusable code %q", row.Code)
		}
		if err := s.rates.SetRate(code, row.Rate); err != nil {
			return fmt.Errorf("currency_rates contains invalid rate for %s: %w", row.Code, err)
		}
	}

	return nil
}

// UpdateRate validates, persists and applies a new exchange rate. The
// in-memory table is only swapped once the rate is safely stored.
func (s *Service) UpdateRate(code Currency, rate float64) error {
	if !IsSupported(code) {
		return fmt.Errorf("unsupported currency %q", code)
	}
	if code == BaseCurrency {
		return fmt.Errorf("base currency rate is fixed at 1")
	}
	if rate <= 0 {
		return ErrInvalidRate
	}

	row := CurrencyRate{Code: string(code), Rate: rate}
	err := s.db.Where("code = ?", string(code)).
		Assign(CurrencyRate{Rate: rate}).
		FirstOrCreate(&row).Error
	if err != nil {
		return fmt.Errorf("failed to persist currency rate: %w", err)
	}

	return s.rates.SetRate(code, rate)
}
