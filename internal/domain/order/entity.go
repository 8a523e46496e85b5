// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status represents the order status
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusOnTheWay  Status = "on_the_way"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// IsValid checks whether the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the order can no longer change status
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order represents a placed order
type Order struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrderNumber    string         `gorm:"uniqueIndex;not null;size:32" json:"order_number"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	Status         Status         `gorm:"not null;size:20;default:'received'" json:"status"`
	Address        string         `gorm:"not null;size:500" json:"address"` // Delivery address snapshot
	SubtotalAmount int64          `gorm:"not null" json:"subtotal_amount"`  // Minor units
	PointsUsed     int64          `gorm:"not null;default:0" json:"points_used"`
	TotalAmount    int64          `gorm:"not null" json:"total_amount"` // Minor units
	Notes          string         `gorm:"size:500" json:"notes"`
	Items          []OrderItem    `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents one line of a placed order. Name and prices are
// snapshots taken at checkout so later menu edits do not change the
// record.
type OrderItem struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	OrderID    uint              `gorm:"not null;index" json:"order_id"`
	MenuItemID uint              `gorm:"not null" json:"menu_item_id"`
	Name       string            `gorm:"not null;size:255" json:"name"`
	UnitPrice  int64             `gorm:"not null" json:"unit_price"` // Base plus customizations, minor units
	Quantity   int               `gorm:"not null" json:"quantity"`
	TotalPrice int64             `gorm:"not null" json:"total_price"`
	Options    []OrderItemOption `gorm:"foreignKey:OrderItemID" json:"options,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// TableName overrides the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemOption is the snapshot of one selected customization
type OrderItemOption struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderItemID uint   `gorm:"not null;index" json:"order_item_id"`
	OptionID    uint   `gorm:"not null" json:"option_id"`
	Name        string `gorm:"not null;size:255" json:"name"`
	Price       int64  `gorm:"not null" json:"price"` // Minor units at checkout
}

// TableName overrides the table name for OrderItemOption
func (OrderItemOption) TableName() string {
	return "order_item_options"
}

// GenerateOrderNumber builds a human readable order number from the
// order date and the order's database id. The id is already unique, so
// concurrent checkouts can never produce the same number.
func GenerateOrderNumber(at time.Time, orderID uint) string {
	return fmt.Sprintf("ORD-%s-%05d", at.Format("20060102"), orderID)
}
