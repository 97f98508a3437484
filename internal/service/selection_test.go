package service

import (
	"context"
	"testing"

	"github.com/fitgirl/storefront/internal/catalog"
	"github.com/fitgirl/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectionFixture(t *testing.T) (domain.SelectionService, domain.CartService) {
	t.Helper()

	store, err := catalog.Default()
	require.NoError(t, err)

	cart := NewCartService(testShipping())
	return NewSelectionService(store, cart), cart
}

func TestSelectionService_OpenResetsState(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	_, err = sel.ToggleColor(ctx, "s1", "Rosa Vibrante")
	require.NoError(t, err)
	_, err = sel.ToggleSize(ctx, "s1", "M")
	require.NoError(t, err)
	_, err = sel.SetQuantity(ctx, "s1", 4)
	require.NoError(t, err)
	_, err = sel.SetImageIndex(ctx, "s1", 1)
	require.NoError(t, err)

	// Opening another product discards everything.
	state, err := sel.Open(ctx, "s1", "2")
	require.NoError(t, err)
	assert.Equal(t, "2", state.ProductID)
	assert.Empty(t, state.Colors)
	assert.Empty(t, state.Sizes)
	assert.Empty(t, state.Assignments)
	assert.Equal(t, 1, state.Quantity)
	assert.Equal(t, 0, state.ImageIndex)
	assert.False(t, state.Ready)

	// Re-opening the same product resets too.
	_, err = sel.ToggleColor(ctx, "s1", "Gradient Roxo")
	require.NoError(t, err)
	state, err = sel.Open(ctx, "s1", "2")
	require.NoError(t, err)
	assert.Empty(t, state.Colors)
}

func TestSelectionService_OpenUnknownProduct(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "999")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestSelectionService_NoSelection(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	_, err = sel.ToggleColor(ctx, "s1", "Rosa")
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	_, err = sel.Commit(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNoSelection)
}

func TestSelectionService_ToggleColor(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	state, err := sel.ToggleColor(ctx, "s1", "Rosa Vibrante")
	require.NoError(t, err)
	require.Len(t, state.Colors, 1)
	assert.Equal(t, "#E91E63", state.Colors[0].Value)

	// Toggling again removes it.
	state, err = sel.ToggleColor(ctx, "s1", "Rosa Vibrante")
	require.NoError(t, err)
	assert.Empty(t, state.Colors)

	_, err = sel.ToggleColor(ctx, "s1", "Azul Marinho")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestSelectionService_ToggleColorCascade(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	mustToggleColor(t, sel, "s1", "Rosa Vibrante")
	mustToggleColor(t, sel, "s1", "Preto")
	mustToggleSize(t, sel, "s1", "P")
	mustToggleSize(t, sel, "s1", "M")

	_, err = sel.Associate(ctx, "s1", "P", "Rosa Vibrante")
	require.NoError(t, err)
	state, err := sel.Associate(ctx, "s1", "M", "Rosa Vibrante")
	require.NoError(t, err)
	assert.True(t, state.Ready)

	// Removing the mapped color drops both assignments but keeps the
	// sizes chosen.
	state, err = sel.ToggleColor(ctx, "s1", "Rosa Vibrante")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "M"}, state.Sizes)
	assert.Empty(t, state.Assignments)
	assert.False(t, state.Ready)
}

func TestSelectionService_ToggleSize(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	state, err := sel.ToggleSize(ctx, "s1", "M")
	require.NoError(t, err)
	assert.Equal(t, []string{"M"}, state.Sizes)

	// GG is unavailable on product 1.
	_, err = sel.ToggleSize(ctx, "s1", "GG")
	assert.ErrorIs(t, err, domain.ErrSizeUnavailable)

	_, err = sel.ToggleSize(ctx, "s1", "XXG")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	// Removing a size drops its assignment.
	mustToggleColor(t, sel, "s1", "Preto")
	_, err = sel.Associate(ctx, "s1", "M", "Preto")
	require.NoError(t, err)
	state, err = sel.ToggleSize(ctx, "s1", "M")
	require.NoError(t, err)
	assert.Empty(t, state.Sizes)
	assert.Empty(t, state.Assignments)
}

func TestSelectionService_Associate(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	mustToggleSize(t, sel, "s1", "M")

	// Color not chosen yet.
	_, err = sel.Associate(ctx, "s1", "M", "Preto")
	assert.ErrorIs(t, err, domain.ErrColorNotChosen)

	mustToggleColor(t, sel, "s1", "Preto")

	// Size not chosen.
	_, err = sel.Associate(ctx, "s1", "P", "Preto")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	state, err := sel.Associate(ctx, "s1", "M", "Preto")
	require.NoError(t, err)
	assert.Equal(t, "Preto", state.Assignments["M"])
	assert.True(t, state.Ready)
}

func TestSelectionService_Readiness(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	// No sizes chosen: not ready.
	state, err := sel.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, state.Ready)

	// Size chosen but unassigned: not ready.
	mustToggleSize(t, sel, "s1", "M")
	mustToggleColor(t, sel, "s1", "Preto")
	state, err = sel.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, state.Ready)

	// Every chosen size assigned: ready.
	state, err = sel.Associate(ctx, "s1", "M", "Preto")
	require.NoError(t, err)
	assert.True(t, state.Ready)

	// A second unassigned size makes it unready again.
	state, err = sel.ToggleSize(ctx, "s1", "P")
	require.NoError(t, err)
	assert.False(t, state.Ready)
}

func TestSelectionService_CommitRejectsUnready(t *testing.T) {
	ctx := context.Background()
	sel, cart := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)
	mustToggleColor(t, sel, "s1", "Preto")

	_, err = sel.Commit(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrIncompleteSelection)

	// The cart must be untouched.
	summary, err := cart.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)

	// The selection must be untouched too.
	state, err := sel.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, state.Colors, 1)
}

func TestSelectionService_CommitUsesFirstChosenSize(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	mustToggleColor(t, sel, "s1", "Rosa Vibrante")
	mustToggleColor(t, sel, "s1", "Preto")
	mustToggleSize(t, sel, "s1", "G")
	mustToggleSize(t, sel, "s1", "P")

	_, err = sel.Associate(ctx, "s1", "G", "Preto")
	require.NoError(t, err)
	_, err = sel.Associate(ctx, "s1", "P", "Rosa Vibrante")
	require.NoError(t, err)

	_, err = sel.SetQuantity(ctx, "s1", 2)
	require.NoError(t, err)

	// Even with two assigned sizes, exactly one line is produced, from
	// the first chosen size and its color.
	summary, err := sel.Commit(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "G", summary.Lines[0].Size)
	assert.Equal(t, "Preto", summary.Lines[0].Color.Name)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
}

func TestSelectionService_SetQuantityFloor(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	state, err := sel.SetQuantity(ctx, "s1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Quantity)

	state, err = sel.SetQuantity(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Quantity)

	state, err = sel.SetQuantity(ctx, "s1", -2)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Quantity)
}

func TestSelectionService_SetImageIndex(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	// Product 1 has two images.
	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	state, err := sel.SetImageIndex(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.ImageIndex)

	_, err = sel.SetImageIndex(ctx, "s1", 2)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	_, err = sel.SetImageIndex(ctx, "s1", -1)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestSelectionService_Close(t *testing.T) {
	ctx := context.Background()
	sel, _ := newSelectionFixture(t)

	_, err := sel.Open(ctx, "s1", "1")
	require.NoError(t, err)

	require.NoError(t, sel.Close(ctx, "s1"))

	_, err = sel.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	// Closing with nothing open is fine.
	require.NoError(t, sel.Close(ctx, "s1"))
}

func mustToggleColor(t *testing.T, sel domain.SelectionService, sessionID, name string) {
	t.Helper()
	_, err := sel.ToggleColor(context.Background(), sessionID, name)
	require.NoError(t, err)
}

func mustToggleSize(t *testing.T, sel domain.SelectionService, sessionID, name string) {
	t.Helper()
	_, err := sel.ToggleSize(context.Background(), sessionID, name)
	require.NoError(t, err)
}
