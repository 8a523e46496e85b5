// internal/domain/customization/selector.go
package customization

import (
	"fmt"

	"github.com/gokhanazp/riversideburger-sub000/internal/domain/menu"
)

// CapacityError is returned when a toggle would exceed a category's
// max-selections cap. The selection state is left unchanged.
type CapacityError struct {
	Category string
	Cap      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("category %q allows at most %d selections", e.Category, e.Cap)
}

// Snapshot is the immutable value a selection becomes once it enters a
// cart line. It never points back at live catalog rows.
type Snapshot struct {
	OptionID uint   `json:"option_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // Extra unit price in kurus
}

type selection struct {
	categoryID   uint
	categoryName string
	option       menu.Option
}

// Selector tracks the option selections of one item-configuration
// session. At most one selection per option id; per-category caps are
// enforced on add. The selector never fetches catalog data, callers
// hand it the categories and options they obtained elsewhere.
type Selector struct {
	selections map[uint]selection
	order      []uint // option ids in insertion order
}

// NewSelector creates an empty selection session
func NewSelector() *Selector {
	return &Selector{
		selections: make(map[uint]selection),
	}
}

// Toggle adds the option to the selection, or removes it when it is
// already selected. Adding fails with CapacityError when the owning
// category is at its cap; removal always succeeds.
func (s *Selector) Toggle(category *menu.OptionCategory, option *menu.Option) error {
	if _, ok := s.selections[option.ID]; ok {
		s.remove(option.ID)
		return nil
	}

	if category.HasCap() {
		count := 0
		for _, sel := range s.selections {
			if sel.categoryID == category.ID {
				count++
			}
		}
		if count >= category.MaxSelections {
			return &CapacityError{Category: category.Name, Cap: category.MaxSelections}
		}
	}

	s.selections[option.ID] = selection{
		categoryID:   category.ID,
		categoryName: category.Name,
		option:       *option,
	}
	s.order = append(s.order, option.ID)
	return nil
}

// IsSelected reports whether the option id is currently selected
func (s *Selector) IsSelected(optionID uint) bool {
	_, ok := s.selections[optionID]
	return ok
}

// Count returns the number of current selections
func (s *Selector) Count() int {
	return len(s.selections)
}

// ExtraUnitPrice returns the summed extra unit price of all current
// selections, zero when nothing is selected
func (s *Selector) ExtraUnitPrice() int64 {
	var total int64
	for _, sel := range s.selections {
		total += sel.option.Price
	}
	return total
}

// Snapshots materializes the current selections, in the order they were
// made, into the immutable values carried by cart lines
func (s *Selector) Snapshots() []Snapshot {
	if len(s.order) == 0 {
		return nil
	}

	snapshots := make([]Snapshot, 0, len(s.order))
	for _, id := range s.order {
		sel := s.selections[id]
		snapshots = append(snapshots, Snapshot{
			OptionID: sel.option.ID,
			Name:     sel.option.Name,
			Price:    sel.option.Price,
		})
	}
	return snapshots
}

// MissingRequired returns the names of required categories that have no
// selection yet
func (s *Selector) MissingRequired(categories []menu.OptionCategory) []string {
	var missing []string
	for _, category := range categories {
		if !category.Required {
			continue
		}
		selected := false
		for _, sel := range s.selections {
			if sel.categoryID == category.ID {
				selected = true
				break
			}
		}
		if !selected {
			missing = append(missing, category.Name)
		}
	}
	return missing
}

func (s *Selector) remove(optionID uint) {
	delete(s.selections, optionID)
	for i, id := range s.order {
		if id == optionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SumSnapshots totals the extra unit price carried by a snapshot list
func SumSnapshots(snapshots []Snapshot) int64 {
	var total int64
	for _, snap := range snapshots {
		total += snap.Price
	}
	return total
}
