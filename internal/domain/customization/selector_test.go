package customization

import (
	"testing"

	"github.com/gokhanazp/riversideburger-sub000/internal/domain/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extrasCategory(cap int) *menu.OptionCategory {
	return &menu.OptionCategory{
		ID:            1,
		Name:          "Extra Ingredients",
		MaxSelections: cap,
	}
}

var (
	optCheese  = menu.Option{ID: 10, OptionCategoryID: 1, Name: "Cheese", Price: 500}
	optBacon   = menu.Option{ID: 11, OptionCategoryID: 1, Name: "Bacon", Price: 750}
	optJalapen = menu.Option{ID: 12, OptionCategoryID: 1, Name: "Jalapeño", Price: 300}
)

func TestToggleAddsAndRemoves(t *testing.T) {
	selector := NewSelector()
	category := extrasCategory(0)

	require.NoError(t, selector.Toggle(category, &optCheese))
	assert.True(t, selector.IsSelected(optCheese.ID))
	assert.Equal(t, int64(500), selector.ExtraUnitPrice())

	// Second toggle of the same option deselects it
	require.NoError(t, selector.Toggle(category, &optCheese))
	assert.False(t, selector.IsSelected(optCheese.ID))
	assert.Equal(t, int64(0), selector.ExtraUnitPrice())
	assert.Equal(t, 0, selector.Count())
}

func TestToggleEnforcesCategoryCap(t *testing.T) {
	selector := NewSelector()
	category := extrasCategory(2)

	require.NoError(t, selector.Toggle(category, &optCheese))
	require.NoError(t, selector.Toggle(category, &optBacon))

	// Third selection in a cap-2 category is rejected
	err := selector.Toggle(category, &optJalapen)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Extra Ingredients", capErr.Category)
	assert.Equal(t, 2, capErr.Cap)

	// Rejection left the state unchanged
	assert.Equal(t, 2, selector.Count())
	assert.False(t, selector.IsSelected(optJalapen.ID))
	assert.Equal(t, int64(1250), selector.ExtraUnitPrice())

	// Deselecting frees capacity for the rejected option
	require.NoError(t, selector.Toggle(category, &optCheese))
	require.NoError(t, selector.Toggle(category, &optJalapen))
	assert.True(t, selector.IsSelected(optJalapen.ID))
	assert.Equal(t, int64(1050), selector.ExtraUnitPrice())
}

func TestCapCountsPerCategory(t *testing.T) {
	selector := NewSelector()
	extras := extrasCategory(1)
	sauces := &menu.OptionCategory{ID: 2, Name: "Sauces", MaxSelections: 1}
	ketchup := menu.Option{ID: 20, OptionCategoryID: 2, Name: "Ketchup", Price: 0}

	require.NoError(t, selector.Toggle(extras, &optCheese))

	// A full extras category does not block selections in sauces
	require.NoError(t, selector.Toggle(sauces, &ketchup))
	assert.Equal(t, 2, selector.Count())
}

func TestSnapshotsPreserveSelectionOrder(t *testing.T) {
	selector := NewSelector()
	category := extrasCategory(0)

	require.NoError(t, selector.Toggle(category, &optBacon))
	require.NoError(t, selector.Toggle(category, &optCheese))

	snapshots := selector.Snapshots()
	require.Len(t, snapshots, 2)
	assert.Equal(t, Snapshot{OptionID: 11, Name: "Bacon", Price: 750}, snapshots[0])
	assert.Equal(t, Snapshot{OptionID: 10, Name: "Cheese", Price: 500}, snapshots[1])
	assert.Equal(t, int64(1250), SumSnapshots(snapshots))
}

func TestSnapshotsEmptySelection(t *testing.T) {
	assert.Nil(t, NewSelector().Snapshots())
}

func TestMissingRequired(t *testing.T) {
	selector := NewSelector()
	bread := menu.OptionCategory{ID: 3, Name: "Bread", Required: true, MaxSelections: 1}
	extras := menu.OptionCategory{ID: 1, Name: "Extra Ingredients"}

	missing := selector.MissingRequired([]menu.OptionCategory{bread, extras})
	assert.Equal(t, []string{"Bread"}, missing)

	white := menu.Option{ID: 30, OptionCategoryID: 3, Name: "White Bun", Price: 0}
	require.NoError(t, selector.Toggle(&bread, &white))
	assert.Empty(t, selector.MissingRequired([]menu.OptionCategory{bread, extras}))
}

func TestDerivedRemovalCategoryWorksLikeAnyOther(t *testing.T) {
	item := menu.Item{ID: 5, Name: "Classic Burger", Ingredients: "Onion, Pickles, Tomato"}
	removal := menu.BuildRemovalCategory(&item)
	require.NotNil(t, removal)
	require.Len(t, removal.Options, 3)

	selector := NewSelector()
	require.NoError(t, selector.Toggle(removal, &removal.Options[0]))
	require.NoError(t, selector.Toggle(removal, &removal.Options[2]))

	// Removals never change the price
	assert.Equal(t, int64(0), selector.ExtraUnitPrice())

	snapshots := selector.Snapshots()
	require.Len(t, snapshots, 2)
	assert.Equal(t, "Onion", snapshots[0].Name)
	assert.Equal(t, "Tomato", snapshots[1].Name)
	assert.GreaterOrEqual(t, snapshots[0].OptionID, menu.RemovalOptionIDBase)
}
