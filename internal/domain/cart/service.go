// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/customization"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/menu"
	"gorm.io/gorm"
)

// Service handles cart business logic. Carts live in Redis as JSON
// blobs keyed by user id; the aggregate itself stays pure and all
// catalog validation happens here at the boundary.
type Service struct {
	redisClient *redis.Client
	config      *config.Config
	menuService *menu.Service
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
		menuService: menu.NewService(db, cfg),
	}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	MenuItemID   uint   `json:"menu_item_id" binding:"required"`
	OptionIDs    []uint `json:"option_ids"`
	Instructions string `json:"instructions"`
}

// UpdateQuantityRequest represents update cart line request
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// PricedConfiguration is the outcome of validating and pricing one
// item configuration against the live catalog
type PricedConfiguration struct {
	Item           *menu.Item               `json:"item"`
	Customizations []customization.Snapshot `json:"customizations,omitempty"`
	UnitPrice      int64                    `json:"unit_price"` // Base plus extras, in kurus
}

// GetCart retrieves the user's cart, returning an empty cart when none
// has been stored yet
func (s *Service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	data, err := s.redisClient.Get(ctx, s.cartKey(userID)).Result()
	if err == redis.Nil {
		return NewCart(userID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var userCart Cart
	if err := json.Unmarshal([]byte(data), &userCart); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}
	return &userCart, nil
}

// PriceConfiguration validates a set of option ids against the item's
// customization categories and prices the configuration. Capacity and
// required-category violations surface as errors; catalog validation
// failures fail loudly.
func (s *Service) PriceConfiguration(menuItemID uint, optionIDs []uint) (*PricedConfiguration, error) {
	item, err := s.menuService.GetItem(menuItemID)
	if err != nil {
		return nil, err
	}

	categories, err := s.menuService.GetCustomizationCategories(menuItemID)
	if err != nil {
		return nil, err
	}

	selector := customization.NewSelector()
	for _, optionID := range optionIDs {
		category, option := findOption(categories, optionID)
		if option == nil {
			return nil, fmt.Errorf("option %d is not available for this item", optionID)
		}
		if err := selector.Toggle(category, option); err != nil {
			return nil, err
		}
	}

	if missing := selector.MissingRequired(categories); len(missing) > 0 {
		return nil, fmt.Errorf("required selections missing: %v", missing)
	}

	return &PricedConfiguration{
		Item:           item,
		Customizations: selector.Snapshots(),
		UnitPrice:      item.Price + selector.ExtraUnitPrice(),
	}, nil
}

// AddItem prices the configuration and adds it to the user's cart
func (s *Service) AddItem(ctx context.Context, userID uint, req *AddItemRequest) (*Cart, error) {
	priced, err := s.PriceConfiguration(req.MenuItemID, req.OptionIDs)
	if err != nil {
		return nil, err
	}

	userCart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	userCart.AddItem(priced.Item.ID, priced.Item.Name, priced.Item.Price, priced.Customizations, req.Instructions)

	if err := s.saveCart(ctx, userCart); err != nil {
		return nil, err
	}
	return userCart, nil
}

// UpdateQuantity updates a line's quantity, removing it at zero
func (s *Service) UpdateQuantity(ctx context.Context, userID uint, lineID string, req *UpdateQuantityRequest) (*Cart, error) {
	userCart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	userCart.UpdateQuantity(lineID, req.Quantity)

	if err := s.saveCart(ctx, userCart); err != nil {
		return nil, err
	}
	return userCart, nil
}

// RemoveItem removes a line from the user's cart
func (s *Service) RemoveItem(ctx context.Context, userID uint, lineID string) (*Cart, error) {
	userCart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	userCart.RemoveItem(lineID)

	if err := s.saveCart(ctx, userCart); err != nil {
		return nil, err
	}
	return userCart, nil
}

// ClearCart removes the user's stored cart entirely
func (s *Service) ClearCart(ctx context.Context, userID uint) error {
	if err := s.redisClient.Del(ctx, s.cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Service) saveCart(ctx context.Context, userCart *Cart) error {
	data, err := json.Marshal(userCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.redisClient.Set(ctx, s.cartKey(userCart.UserID), data, s.config.Cart.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *Service) cartKey(userID uint) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

func findOption(categories []menu.OptionCategory, optionID uint) (*menu.OptionCategory, *menu.Option) {
	for i := range categories {
		for j := range categories[i].Options {
			if categories[i].Options[j].ID == optionID {
				return &categories[i], &categories[i].Options[j]
			}
		}
	}
	return nil, nil
}
