// Package ui holds the view models behind the catalog frontend: a product
// list with filtering, search, and pagination, and a product form with
// field validation and inline category creation. The views hold state and
// expose transition handlers; rendering is the caller's concern.
package ui

import (
	"context"
	"fmt"
	"strings"

	"catalog/internal/models"
	"catalog/pkg/client"
)

// PageSizeOptions are the page sizes the list view accepts.
var PageSizeOptions = []int{5, 10, 25}

// DefaultPageSize is the page size a fresh list view starts with.
const DefaultPageSize = 10

// ListView is the product list: products fetched per category filter
// (server-side), narrowed by a search term and paginated client-side.
type ListView struct {
	api *client.Client

	products   []models.Product
	categories []models.Category
	categoryID uint // 0 means all categories
	search     string
	page       int
	pageSize   int

	// Confirm guards deletes. When set it is asked before calling the API;
	// when nil deletes proceed unprompted.
	Confirm func(prompt string) bool
}

// NewListView creates a list view backed by the given API client.
func NewListView(api *client.Client) *ListView {
	return &ListView{
		api:      api,
		pageSize: DefaultPageSize,
	}
}

// Load fetches the category list and the initial, unfiltered product list.
func (v *ListView) Load(ctx context.Context) error {
	categories, err := v.api.Categories(ctx)
	if err != nil {
		return err
	}
	v.categories = categories
	return v.fetchProducts(ctx)
}

// SetCategoryFilter switches the server-side category filter and re-fetches
// the product list. Resets to the first page.
func (v *ListView) SetCategoryFilter(ctx context.Context, categoryID uint) error {
	v.categoryID = categoryID
	v.page = 0
	return v.fetchProducts(ctx)
}

// SetSearch updates the client-side search term. Resets to the first page.
func (v *ListView) SetSearch(term string) {
	v.search = term
	v.page = 0
}

// SetPage moves to the given page, clamped to the filtered result range.
func (v *ListView) SetPage(page int) {
	last := v.lastPage()
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	v.page = page
}

// SetPageSize switches the page size; it must be one of PageSizeOptions.
// Resets to the first page.
func (v *ListView) SetPageSize(size int) error {
	for _, option := range PageSizeOptions {
		if size == option {
			v.pageSize = size
			v.page = 0
			return nil
		}
	}
	return fmt.Errorf("unsupported page size %d", size)
}

// Delete removes a product after confirmation. On success the row is removed
// from local state without a re-fetch.
func (v *ListView) Delete(ctx context.Context, id uint) error {
	if v.Confirm != nil && !v.Confirm("Are you sure you want to delete this product?") {
		return nil
	}
	if err := v.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	kept := v.products[:0]
	for _, p := range v.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	v.products = kept
	v.SetPage(v.page) // the last page may have just emptied
	return nil
}

// VisibleProducts returns the current page of the filtered list.
func (v *ListView) VisibleProducts() []models.Product {
	filtered := v.filtered()
	start := v.page * v.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalFiltered returns how many products match the current search.
func (v *ListView) TotalFiltered() int {
	return len(v.filtered())
}

// Categories returns the loaded category list.
func (v *ListView) Categories() []models.Category {
	return v.categories
}

// CategoryName resolves a category name for display.
func (v *ListView) CategoryName(id uint) string {
	for _, c := range v.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "N/A"
}

// Page returns the current page index.
func (v *ListView) Page() int { return v.page }

// PageSize returns the current page size.
func (v *ListView) PageSize() int { return v.pageSize }

// CategoryFilter returns the active category filter, 0 for all.
func (v *ListView) CategoryFilter() uint { return v.categoryID }

// Search returns the active search term.
func (v *ListView) Search() string { return v.search }

func (v *ListView) fetchProducts(ctx context.Context) error {
	products, err := v.api.Products(ctx, v.categoryID)
	if err != nil {
		return err
	}
	v.products = products
	return nil
}

// filtered applies the search term: case-insensitive substring match against
// name and description.
func (v *ListView) filtered() []models.Product {
	if v.search == "" {
		return v.products
	}
	term := strings.ToLower(v.search)
	var matched []models.Product
	for _, p := range v.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (v *ListView) lastPage() int {
	total := v.TotalFiltered()
	if total == 0 {
		return 0
	}
	return (total - 1) / v.pageSize
}
