// internal/domain/menu/entity.go
package menu

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Category represents a menu category (burgers, sides, drinks)
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	NameEN    string         `gorm:"size:255" json:"name_en"`
	Image     string         `gorm:"size:500" json:"image"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// Item represents a menu item
type Item struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	NameEN      string         `gorm:"size:255" json:"name_en"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // Base unit price in kurus
	Ingredients string         `gorm:"size:500" json:"ingredients"` // Comma-separated
	Image       string         `gorm:"size:500" json:"image"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category         Category         `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	OptionCategories []OptionCategory `gorm:"many2many:item_option_categories;" json:"option_categories,omitempty"`
}

// OptionCategory represents a named grouping of selectable options
// (e.g. "Extra Ingredients"). A MaxSelections of zero means uncapped.
type OptionCategory struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	NameEN        string         `gorm:"size:255" json:"name_en"`
	MaxSelections int            `gorm:"default:0" json:"max_selections"`
	Required      bool           `gorm:"default:false" json:"required"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Options []Option `gorm:"foreignKey:OptionCategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options,omitempty"`
}

// Option represents a single selectable add-on within a category
type Option struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	OptionCategoryID uint           `gorm:"not null;index" json:"option_category_id"`
	Name             string         `gorm:"not null;size:255" json:"name"`
	NameEN           string         `gorm:"size:255" json:"name_en"`
	Price            int64          `gorm:"not null;default:0" json:"price"` // Extra unit price in kurus
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Category) TableName() string       { return "menu_categories" }
func (Item) TableName() string           { return "menu_items" }
func (OptionCategory) TableName() string { return "option_categories" }
func (Option) TableName() string         { return "options" }

// IngredientList splits the comma-separated ingredients field
func (i *Item) IngredientList() []string {
	if strings.TrimSpace(i.Ingredients) == "" {
		return nil
	}

	parts := strings.Split(i.Ingredients, ",")
	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}

// GetFormattedPrice returns the base price as major units
func (i *Item) GetFormattedPrice() float64 {
	return float64(i.Price) / 100
}

// HasCap reports whether the category limits how many options can be
// selected at once
func (c *OptionCategory) HasCap() bool {
	return c.MaxSelections > 0
}
