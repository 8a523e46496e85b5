// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/cart"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/loyalty"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/store"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/user"
	"github.com/gokhanazp/riversideburger-sub000/internal/pkg/email"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Checkout precondition failures. Each one maps to a distinct message
// the client can act on.
var (
	ErrNoAddress   = errors.New("no delivery address on file")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrStoreClosed = errors.New("store is currently closed")
)

// Orders earn one loyalty point per ten lira of the paid total once
// delivered
const earnDivisorMinorUnits = 10 * loyalty.PointValueMinorUnits

// Service handles order business logic
type Service struct {
	db             *gorm.DB
	config         *config.Config
	cartService    *cart.Service
	storeService   *store.Service
	loyaltyService *loyalty.Service
	emailService   *email.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:             db,
		config:         cfg,
		cartService:    cart.NewService(db, redisClient, cfg),
		storeService:   store.NewService(db, cfg),
		loyaltyService: loyalty.NewService(db, cfg),
		emailService:   email.NewService(cfg),
	}
}

// CreateOrderRequest represents checkout input
type CreateOrderRequest struct {
	RedeemPoints int64  `json:"redeem_points" binding:"min=0"`
	Notes        string `json:"notes"`
}

// UpdateStatusRequest represents admin status updates
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// CreateOrder runs checkout for the user's current cart.
//
// Preconditions are checked in order and each failure surfaces its own
// error: the user must have a delivery address on file, the cart must
// not be empty, and the store must be open right now (availability is
// fetched fresh, never from a cached status).
//
// The redemption request is clamped against the live balance; the
// actual debit happens inside the same transaction that creates the
// order, so a stale balance can never produce a negative total or an
// overdrawn account.
func (s *Service) CreateOrder(ctx context.Context, userID uint, req *CreateOrderRequest) (*Order, error) {
	var account user.User
	if err := s.db.First(&account, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}

	userCart, err := s.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	open, err := s.storeService.IsOpenNow()
	if err != nil {
		return nil, err
	}

	if err := ValidateCheckout(&account, userCart, open); err != nil {
		return nil, err
	}

	subtotal := userCart.Subtotal()

	balance, err := s.loyaltyService.GetBalance(userID)
	if err != nil {
		return nil, err
	}
	pointsUsed, total := PlanRedemption(subtotal, req.RedeemPoints, balance)

	newOrder := Order{
		UserID:         userID,
		Status:         StatusReceived,
		Address:        account.Address,
		SubtotalAmount: subtotal,
		PointsUsed:     pointsUsed,
		TotalAmount:    total,
		Notes:          req.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		newOrder.OrderNumber = GenerateOrderNumber(time.Now().UTC(), newOrder.ID)
		if err := tx.Model(&newOrder).Update("order_number", newOrder.OrderNumber).Error; err != nil {
			return fmt.Errorf("failed to update order number: %w", err)
		}

		for _, line := range userCart.Items {
			orderItem := OrderItem{
				OrderID:    newOrder.ID,
				MenuItemID: line.MenuItemID,
				Name:       line.Name,
				UnitPrice:  line.EffectiveUnitPrice(),
				Quantity:   line.Quantity,
				TotalPrice: line.EffectiveUnitPrice() * int64(line.Quantity),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}

			for _, snapshot := range line.Customizations {
				option := OrderItemOption{
					OrderItemID: orderItem.ID,
					OptionID:    snapshot.OptionID,
					Name:        snapshot.Name,
					Price:       snapshot.Price,
				}
				if err := tx.Create(&option).Error; err != nil {
					return fmt.Errorf("failed to create order item option: %w", err)
				}
			}
		}

		if pointsUsed > 0 {
			if err := s.loyaltyService.Debit(tx, userID, newOrder.ID, pointsUsed); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartService.ClearCart(ctx, userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Failed to clear cart after checkout")
	}

	go s.sendConfirmationEmail(&account, &newOrder, userCart.ItemCount())

	return s.GetOrder(userID, newOrder.ID)
}

// GetOrder returns one of the user's orders with its items and option
// snapshots
func (s *Service) GetOrder(userID, orderID uint) (*Order, error) {
	var placed Order
	err := s.db.Preload("Items").Preload("Items.Options").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&placed).Error
	if err != nil {
		return nil, fmt.Errorf("order not found")
	}
	return &placed, nil
}

// GetOrders lists the user's orders, newest first
func (s *Service) GetOrders(userID uint, limit int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var orders []Order
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order through its lifecycle. Terminal orders
// cannot change again. Delivery credits loyalty points for the paid
// total.
func (s *Service) UpdateStatus(orderID uint, req *UpdateStatusRequest) (*Order, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", req.Status)
	}

	var placed Order
	if err := s.db.First(&placed, orderID).Error; err != nil {
		return nil, fmt.Errorf("order not found")
	}

	if placed.Status.IsTerminal() {
		return nil, fmt.Errorf("order %s is already %s", placed.OrderNumber, placed.Status)
	}

	if err := s.db.Model(&placed).Update("status", req.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	placed.Status = req.Status

	if req.Status == StatusDelivered {
		earned := placed.TotalAmount / earnDivisorMinorUnits
		if earned > 0 {
			if err := s.loyaltyService.Credit(placed.UserID, &placed.ID, earned); err != nil {
				logrus.WithError(err).WithField("order_id", placed.ID).Error("Failed to credit loyalty points")
			}
		}
	}

	return &placed, nil
}

// ValidateCheckout evaluates the checkout preconditions against state
// the caller already fetched. The checks run in a fixed order and the
// first failure wins, so a user with no address learns that before
// hearing about an empty cart or a closed store.
func ValidateCheckout(account *user.User, userCart *cart.Cart, storeOpen bool) error {
	if !account.HasDeliveryAddress() {
		return ErrNoAddress
	}
	if userCart.IsEmpty() {
		return ErrEmptyCart
	}
	if !storeOpen {
		return ErrStoreClosed
	}
	return nil
}

// PlanRedemption clamps a redemption request against the subtotal and
// the live balance, in whole points only. The accepted amount is
// floored to a point boundary so the ledger never carries fractions.
// Returns the points to debit and the payable total.
func PlanRedemption(subtotal, requestedPoints, balancePoints int64) (pointsUsed, total int64) {
	redemption := loyalty.ApplyRedemption(
		subtotal,
		requestedPoints*loyalty.PointValueMinorUnits,
		balancePoints*loyalty.PointValueMinorUnits,
	)
	pointsUsed = redemption.Accepted / loyalty.PointValueMinorUnits
	return pointsUsed, subtotal - pointsUsed*loyalty.PointValueMinorUnits
}

// Private helper methods

func (s *Service) sendConfirmationEmail(account *user.User, placed *Order, itemCount int) {
	data := &email.OrderConfirmationData{
		OrderNumber: placed.OrderNumber,
		ItemCount:   itemCount,
		TotalAmount: placed.TotalAmount,
		Address:     placed.Address,
	}
	if err := s.emailService.SendOrderConfirmation(account.Email, account.GetFullName(), data); err != nil {
		logrus.WithError(err).WithField("order_id", placed.ID).Warn("Failed to send order confirmation email")
	}
}
