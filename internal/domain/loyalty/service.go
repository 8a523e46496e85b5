// internal/domain/loyalty/service.go
package loyalty

import (
	"errors"
	"fmt"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"gorm.io/gorm"
)

// ErrInsufficientPoints is returned when a debit exceeds the live
// balance at commit time
var ErrInsufficientPoints = errors.New("insufficient loyalty points")

// Service handles the loyalty points ledger
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new loyalty service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// GetBalance returns the user's current points balance, creating the
// account lazily at zero
func (s *Service) GetBalance(userID uint) (int64, error) {
	account := Account{UserID: userID}
	err := s.db.Where("user_id = ?", userID).FirstOrCreate(&account).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load loyalty account: %w", err)
	}
	return account.Points, nil
}

// Debit decreases the balance by the given amount inside the caller's
// transaction and appends a "used" ledger entry. The decrement is
// guarded: it only applies when the live balance still covers the
// amount, so two concurrent redemptions cannot both win. A balance
// fetched earlier in the session is never trusted here.
func (s *Service) Debit(tx *gorm.DB, userID, orderID uint, points int64) error {
	if points < 0 {
		return fmt.Errorf("debit amount cannot be negative")
	}
	if points == 0 {
		return nil
	}

	result := tx.Model(&Account{}).
		Where("user_id = ? AND points >= ?", userID, points).
		Update("points", gorm.Expr("points - ?", points))
	if result.Error != nil {
		return fmt.Errorf("failed to debit loyalty points: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientPoints
	}

	entry := Transaction{
		UserID:  userID,
		OrderID: &orderID,
		Type:    TransactionTypeUsed,
		Amount:  points,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record loyalty transaction: %w", err)
	}
	return nil
}

// Credit increases the balance and appends an "earned" ledger entry.
// Used by the earning flow when an order is delivered.
func (s *Service) Credit(userID uint, orderID *uint, points int64) error {
	if points <= 0 {
		return fmt.Errorf("credit amount must be positive")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		account := Account{UserID: userID}
		if err := tx.Where("user_id = ?", userID).FirstOrCreate(&account).Error; err != nil {
			return fmt.Errorf("failed to load loyalty account: %w", err)
		}

		err := tx.Model(&Account{}).
			Where("user_id = ?", userID).
			Update("points", gorm.Expr("points + ?", points)).Error
		if err != nil {
			return fmt.Errorf("failed to credit loyalty points: %w", err)
		}

		entry := Transaction{
			UserID:  userID,
			OrderID: orderID,
			Type:    TransactionTypeEarned,
			Amount:  points,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to record loyalty transaction: %w", err)
		}
		return nil
	})
}

// GetTransactions lists a user's ledger entries, newest first
func (s *Service) GetTransactions(userID uint, limit int) ([]Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var transactions []Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load loyalty transactions: %w", err)
	}
	return transactions, nil
}
