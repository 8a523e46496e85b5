// internal/domain/menu/service.go
package menu

import (
	"fmt"
	"strings"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"gorm.io/gorm"
)

// Service handles menu catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new menu service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// RemovalOptionIDBase offsets the synthetic ids of ingredient-removal
// options so they never collide with catalog option rows
const RemovalOptionIDBase uint = 1_000_000_000

// RemovalCategoryName is the display name of the derived
// ingredient-removal category
const RemovalCategoryName = "Çıkarılacak Malzemeler"

// CreateItemRequest represents admin item creation data
type CreateItemRequest struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	NameEN      string `json:"name_en"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Ingredients string `json:"ingredients"`
	Image       string `json:"image"`
}

// UpdateItemRequest represents admin item update data
type UpdateItemRequest struct {
	CategoryID  *uint   `json:"category_id"`
	Name        *string `json:"name"`
	NameEN      *string `json:"name_en"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Ingredients *string `json:"ingredients"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"is_active"`
}

// CreateOptionCategoryRequest represents admin option category creation data
type CreateOptionCategoryRequest struct {
	Name          string `json:"name" binding:"required"`
	NameEN        string `json:"name_en"`
	MaxSelections int    `json:"max_selections" binding:"min=0"`
	Required      bool   `json:"required"`
}

// CreateOptionRequest represents admin option creation data
type CreateOptionRequest struct {
	OptionCategoryID uint   `json:"option_category_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	NameEN           string `json:"name_en"`
	Price            int64  `json:"price" binding:"min=0"`
}

// GetMenu retrieves all active categories with their active items
func (s *Service) GetMenu() ([]Category, error) {
	var categories []Category
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC").
		Preload("Items", "is_active = ?", true).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve menu: %w", err)
	}
	return categories, nil
}

// GetItem retrieves a single active menu item
func (s *Service) GetItem(itemID uint) (*Item, error) {
	var item Item
	err := s.db.Where("id = ? AND is_active = ?", itemID, true).First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("menu item not found")
	}
	return &item, nil
}

// GetCustomizationCategories returns the option categories available for
// an item, validated at the catalog boundary, plus the derived
// ingredient-removal category when the item lists ingredients
func (s *Service) GetCustomizationCategories(itemID uint) ([]OptionCategory, error) {
	var item Item
	err := s.db.Where("id = ? AND is_active = ?", itemID, true).
		Preload("OptionCategories.Options", "is_active = ?", true).
		First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("menu item not found")
	}

	categories := make([]OptionCategory, 0, len(item.OptionCategories)+1)
	for _, category := range item.OptionCategories {
		if err := ValidateOptionCategory(&category); err != nil {
			return nil, fmt.Errorf("catalog data for item %d is malformed: %w", itemID, err)
		}
		categories = append(categories, category)
	}

	if removal := BuildRemovalCategory(&item); removal != nil {
		categories = append(categories, *removal)
	}

	return categories, nil
}

// BuildRemovalCategory derives a zero-priced "remove ingredient" category
// from an item's ingredient list. Returns nil when the item has no
// ingredients to remove.
func BuildRemovalCategory(item *Item) *OptionCategory {
	ingredients := item.IngredientList()
	if len(ingredients) == 0 {
		return nil
	}

	options := make([]Option, len(ingredients))
	for i, ingredient := range ingredients {
		options[i] = Option{
			ID:     RemovalOptionIDBase + uint(i),
			Name:   ingredient,
			NameEN: ingredient,
			Price:  0,
		}
	}

	return &OptionCategory{
		Name:    RemovalCategoryName,
		NameEN:  "Remove Ingredients",
		Options: options,
	}
}

// ValidateOptionCategory checks catalog data where it enters the pricing
// path. Malformed rows fail loudly instead of being defaulted.
func ValidateOptionCategory(category *OptionCategory) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("option category %d has no name", category.ID)
	}
	if category.MaxSelections < 0 {
		return fmt.Errorf("option category %d has negative max selections", category.ID)
	}
	for _, option := range category.Options {
		if strings.TrimSpace(option.Name) == "" {
			return fmt.Errorf("option %d in category %d has no name", option.ID, category.ID)
		}
		if option.Price < 0 {
			return fmt.Errorf("option %d in category %d has negative price", option.ID, category.ID)
		}
	}
	return nil
}

// Admin operations

// CreateItem creates a new menu item
func (s *Service) CreateItem(req *CreateItemRequest) (*Item, error) {
	var category Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		return nil, fmt.Errorf("menu category not found")
	}

	item := Item{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		NameEN:      req.NameEN,
		Description: req.Description,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		Image:       req.Image,
		IsActive:    true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update to a menu item
func (s *Service) UpdateItem(itemID uint, req *UpdateItemRequest) (*Item, error) {
	var item Item
	if err := s.db.First(&item, itemID).Error; err != nil {
		return nil, fmt.Errorf("menu item not found")
	}

	updates := map[string]interface{}{}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.NameEN != nil {
		updates["name_en"] = *req.NameEN
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Ingredients != nil {
		updates["ingredients"] = *req.Ingredients
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return &item, nil
}

// CreateOptionCategory creates a new option category
func (s *Service) CreateOptionCategory(req *CreateOptionCategoryRequest) (*OptionCategory, error) {
	category := OptionCategory{
		Name:          req.Name,
		NameEN:        req.NameEN,
		MaxSelections: req.MaxSelections,
		Required:      req.Required,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create option category: %w", err)
	}
	return &category, nil
}

// CreateOption creates a new option inside a category
func (s *Service) CreateOption(req *CreateOptionRequest) (*Option, error) {
	var category OptionCategory
	if err := s.db.First(&category, req.OptionCategoryID).Error; err != nil {
		return nil, fmt.Errorf("option category not found")
	}

	option := Option{
		OptionCategoryID: req.OptionCategoryID,
		Name:             req.Name,
		NameEN:           req.NameEN,
		Price:            req.Price,
		IsActive:         true,
	}
	if err := s.db.Create(&option).Error; err != nil {
		return nil, fmt.Errorf("failed to create option: %w", err)
	}
	return &option, nil
}

// AttachOptionCategory links an option category to a menu item
func (s *Service) AttachOptionCategory(itemID, categoryID uint) error {
	var item Item
	if err := s.db.First(&item, itemID).Error; err != nil {
		return fmt.Errorf("menu item not found")
	}

	var category OptionCategory
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return fmt.Errorf("option category not found")
	}

	if err := s.db.Model(&item).Association("OptionCategories").Append(&category); err != nil {
		return fmt.Errorf("failed to attach option category: %w", err)
	}
	return nil
}
