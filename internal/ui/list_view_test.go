package ui_test

import (
	"context"
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/ui"

	"github.com/stretchr/testify/assert"
)

func fixtureCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Widgets"},
		{ID: 2, Name: "Gears"},
	}
}

func fixtureProducts(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		categoryID := uint(1)
		if i%2 == 0 {
			categoryID = 2
		}
		products = append(products, models.Product{
			ID:            uint(i + 10),
			Name:          fmt.Sprintf("Product %02d", i),
			Description:   fmt.Sprintf("Description for product %02d", i),
			Price:         float64(i),
			StockQuantity: i,
			CategoryID:    categoryID,
			Status:        models.StatusActive,
		})
	}
	return products
}

func TestListViewLoadAndPagination(t *testing.T) {
	stub := newCatalogStub(fixtureCategories(), fixtureProducts(12))
	_, api := stub.serve(t)

	list := ui.NewListView(api)
	ctx := context.Background()
	assert.NoError(t, list.Load(ctx))

	assert.Len(t, list.Categories(), 2)
	assert.Equal(t, 12, list.TotalFiltered())
	assert.Len(t, list.VisibleProducts(), ui.DefaultPageSize)

	list.SetPage(1)
	assert.Len(t, list.VisibleProducts(), 2)

	// Page is clamped to the filtered range.
	list.SetPage(99)
	assert.Equal(t, 1, list.Page())
	list.SetPage(-1)
	assert.Equal(t, 0, list.Page())

	assert.NoError(t, list.SetPageSize(5))
	assert.Equal(t, 0, list.Page())
	assert.Len(t, list.VisibleProducts(), 5)

	assert.Error(t, list.SetPageSize(7))
	assert.Equal(t, 5, list.PageSize())
}

func TestListViewSearch(t *testing.T) {
	stub := newCatalogStub(fixtureCategories(), []models.Product{
		{ID: 1, Name: "Gadget", Description: "A fine gadget", CategoryID: 1},
		{ID: 2, Name: "Widget", Description: "Spins freely", CategoryID: 1},
		{ID: 3, Name: "Cog", Description: "Gadget-adjacent", CategoryID: 2},
	})
	_, api := stub.serve(t)

	list := ui.NewListView(api)
	ctx := context.Background()
	assert.NoError(t, list.Load(ctx))
	list.SetPage(0)

	// Case-insensitive, matches name and description.
	list.SetSearch("GADGET")
	assert.Equal(t, 2, list.TotalFiltered())

	list.SetSearch("spins")
	visible := list.VisibleProducts()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Widget", visible[0].Name)

	list.SetSearch("")
	assert.Equal(t, 3, list.TotalFiltered())
}

func TestListViewSearchResetsPage(t *testing.T) {
	stub := newCatalogStub(fixtureCategories(), fixtureProducts(12))
	_, api := stub.serve(t)

	list := ui.NewListView(api)
	assert.NoError(t, list.Load(context.Background()))

	list.SetPage(1)
	list.SetSearch("Product")
	assert.Equal(t, 0, list.Page())
}

func TestListViewCategoryFilter(t *testing.T) {
	stub := newCatalogStub(fixtureCategories(), fixtureProducts(12))
	_, api := stub.serve(t)

	list := ui.NewListView(api)
	ctx := context.Background()
	assert.NoError(t, list.Load(ctx))
	list.SetPage(1)

	// Server-side filter: only Gears products come back, page resets.
	assert.NoError(t, list.SetCategoryFilter(ctx, 2))
	assert.Equal(t, 0, list.Page())
	assert.Equal(t, 6, list.TotalFiltered())
	for _, p := range list.VisibleProducts() {
		assert.Equal(t, uint(2), p.CategoryID)
	}

	assert.NoError(t, list.SetCategoryFilter(ctx, 0))
	assert.Equal(t, 12, list.TotalFiltered())
}

func TestListViewDelete(t *testing.T) {
	stub := newCatalogStub(fixtureCategories(), fixtureProducts(3))
	_, api := stub.serve(t)

	list := ui.NewListView(api)
	ctx := context.Background()
	assert.NoError(t, list.Load(ctx))

	// Declined confirmation leaves everything alone.
	list.Confirm = func(string) bool { return false }
	assert.NoError(t, list.Delete(ctx, 11))
	assert.Equal(t, 3, list.TotalFiltered())
	assert.Empty(t, stub.deletedIDs())

	// Confirmed delete removes the row locally without a re-fetch.
	list.Confirm = func(string) bool { return true }
	assert.NoError(t, list.Delete(ctx, 11))
	assert.Equal(t, 2, list.TotalFiltered())
	assert.Equal(t, []uint{11}, stub.deletedIDs())
	for _, p := range list.VisibleProducts() {
		assert.NotEqual(t, uint(11), p.ID)
	}
}

func TestListViewCategoryName(t *testing.T) {
	stub := newCatalogStub(fixtureCategories(), nil)
	_, api := stub.serve(t)

	list := ui.NewListView(api)
	assert.NoError(t, list.Load(context.Background()))

	assert.Equal(t, "Widgets", list.CategoryName(1))
	assert.Equal(t, "N/A", list.CategoryName(42))
}
