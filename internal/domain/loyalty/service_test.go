package loyalty

import (
	"testing"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Account{}, &Transaction{}))

	return NewService(db, &config.Config{}), db
}

func seedAccount(t *testing.T, db *gorm.DB, userID uint, points int64) {
	t.Helper()
	require.NoError(t, db.Create(&Account{UserID: userID, Points: points}).Error)
}

func TestGetBalanceCreatesAccountLazily(t *testing.T) {
	service, db := newTestService(t)

	balance, err := service.GetBalance(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	var count int64
	require.NoError(t, db.Model(&Account{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDebitInsufficientBalanceRollsBack(t *testing.T) {
	service, db := newTestService(t)
	seedAccount(t, db, 1, 100)

	err := db.Transaction(func(tx *gorm.DB) error {
		return service.Debit(tx, 1, 7, 150)
	})
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	// The guarded update touched no row, so the balance is intact and
	// the ledger stays empty
	balance, err := service.GetBalance(1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	var entries int64
	require.NoError(t, db.Model(&Transaction{}).Count(&entries).Error)
	assert.Equal(t, int64(0), entries)
}

func TestDebitDecrementsAndRecordsLedgerEntry(t *testing.T) {
	service, db := newTestService(t)
	seedAccount(t, db, 1, 100)

	err := db.Transaction(func(tx *gorm.DB) error {
		return service.Debit(tx, 1, 7, 40)
	})
	require.NoError(t, err)

	balance, err := service.GetBalance(1)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	var entry Transaction
	require.NoError(t, db.Where("user_id = ?", 1).First(&entry).Error)
	assert.Equal(t, TransactionTypeUsed, entry.Type)
	assert.Equal(t, int64(40), entry.Amount)
	require.NotNil(t, entry.OrderID)
	assert.Equal(t, uint(7), *entry.OrderID)
}

func TestDebitExactBalanceSucceeds(t *testing.T) {
	service, db := newTestService(t)
	seedAccount(t, db, 1, 100)

	err := db.Transaction(func(tx *gorm.DB) error {
		return service.Debit(tx, 1, 7, 100)
	})
	require.NoError(t, err)

	balance, err := service.GetBalance(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestDebitZeroIsNoOp(t *testing.T) {
	service, db := newTestService(t)
	seedAccount(t, db, 1, 100)

	require.NoError(t, service.Debit(db, 1, 7, 0))

	var entries int64
	require.NoError(t, db.Model(&Transaction{}).Count(&entries).Error)
	assert.Equal(t, int64(0), entries)
}

func TestDebitNegativeRejected(t *testing.T) {
	service, db := newTestService(t)
	seedAccount(t, db, 1, 100)

	assert.Error(t, service.Debit(db, 1, 7, -5))
}

func TestCreditIncrementsAndRecordsLedgerEntry(t *testing.T) {
	service, db := newTestService(t)
	seedAccount(t, db, 1, 100)

	orderID := uint(7)
	require.NoError(t, service.Credit(1, &orderID, 25))

	balance, err := service.GetBalance(1)
	require.NoError(t, err)
	assert.Equal(t, int64(125), balance)

	var entry Transaction
	require.NoError(t, db.Where("user_id = ?", 1).First(&entry).Error)
	assert.Equal(t, TransactionTypeEarned, entry.Type)
	assert.Equal(t, int64(25), entry.Amount)
}

func TestCreditCreatesAccountForNewUser(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.Credit(9, nil, 10))

	balance, err := service.GetBalance(9)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
}
