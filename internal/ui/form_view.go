package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"catalog/internal/models"
	"catalog/pkg/client"
)

// FormMode selects what Submit dispatches.
type FormMode int

const (
	// ModeCreate creates a new product on submit.
	ModeCreate FormMode = iota
	// ModeEdit updates an existing product on submit.
	ModeEdit
)

// ErrInvalidForm is returned by Submit when field validation blocks the
// submission. The per-field messages are in FieldErrors.
var ErrInvalidForm = errors.New("form has validation errors")

// FormView is the product create/edit form. Numeric fields are kept as text,
// mirroring form inputs, and parsed during validation.
type FormView struct {
	api       *client.Client
	mode      FormMode
	productID uint

	Name          string
	Description   string
	Price         string
	StockQuantity string
	CategoryID    uint
	Status        string

	categories  []models.Category
	fieldErrors map[string]string
	formError   string
	submitting  bool

	// OnSaved is invoked after a successful submit; the navigate-back hook.
	OnSaved func()
}

// NewCreateForm creates a form in create mode with default values.
func NewCreateForm(api *client.Client) *FormView {
	return &FormView{
		api:           api,
		mode:          ModeCreate,
		Price:         "0",
		StockQuantity: "0",
		Status:        models.StatusActive,
		fieldErrors:   make(map[string]string),
	}
}

// NewEditForm creates a form in edit mode for the given product.
func NewEditForm(api *client.Client, productID uint) *FormView {
	form := NewCreateForm(api)
	form.mode = ModeEdit
	form.productID = productID
	return form
}

// Load fetches the data the form needs. In edit mode the target product and
// the category list are fetched concurrently, then the fields are
// pre-populated; in create mode only the categories are fetched.
func (f *FormView) Load(ctx context.Context) error {
	if f.mode != ModeEdit {
		categories, err := f.api.Categories(ctx)
		if err != nil {
			return err
		}
		f.categories = categories
		return nil
	}

	var (
		wg           sync.WaitGroup
		categories   []models.Category
		product      *models.Product
		catErr, pErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		categories, catErr = f.api.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		product, pErr = f.api.Product(ctx, f.productID)
	}()
	wg.Wait()

	if catErr != nil {
		return catErr
	}
	if pErr != nil {
		return pErr
	}

	f.categories = categories
	f.Name = product.Name
	f.Description = product.Description
	f.Price = strconv.FormatFloat(product.Price, 'f', -1, 64)
	f.StockQuantity = strconv.Itoa(product.StockQuantity)
	f.CategoryID = product.CategoryID
	f.Status = product.Status
	return nil
}

// Validate checks every field against the product constraints and records
// per-field messages. Returns true when the form may be submitted.
func (f *FormView) Validate() bool {
	f.fieldErrors = make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		f.fieldErrors["name"] = "Name is required"
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		f.fieldErrors["price"] = "Price must be a number"
	} else if price <= 0 {
		f.fieldErrors["price"] = "Price must be positive"
	}

	stock, err := strconv.Atoi(strings.TrimSpace(f.StockQuantity))
	if err != nil {
		f.fieldErrors["stock_quantity"] = "Stock must be a whole number"
	} else if stock < 0 {
		f.fieldErrors["stock_quantity"] = "Stock cannot be negative"
	}

	if f.CategoryID == 0 {
		f.fieldErrors["category_id"] = "Category is required"
	}

	valid := false
	for _, status := range models.ProductStatuses {
		if f.Status == status {
			valid = true
			break
		}
	}
	if !valid {
		f.fieldErrors["status"] = "Status is required"
	}

	return len(f.fieldErrors) == 0
}

// Submit validates and dispatches a create or update depending on mode. While
// a submission is in flight further calls are no-ops. On success OnSaved
// fires and the caller navigates away; on failure the form state is kept so
// the user can correct it, with server validation messages merged into
// FieldErrors.
func (f *FormView) Submit(ctx context.Context) error {
	if f.submitting {
		return nil
	}
	if !f.Validate() {
		return ErrInvalidForm
	}

	f.submitting = true
	defer func() { f.submitting = false }()
	f.formError = ""

	price, _ := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	stock, _ := strconv.Atoi(strings.TrimSpace(f.StockQuantity))

	var err error
	if f.mode == ModeEdit {
		update := client.ProductUpdate{
			Name:          &f.Name,
			Description:   &f.Description,
			Price:         &price,
			StockQuantity: &stock,
			CategoryID:    &f.CategoryID,
			Status:        &f.Status,
		}
		_, err = f.api.UpdateProduct(ctx, f.productID, update)
	} else {
		input := client.ProductInput{
			Name:          f.Name,
			Description:   f.Description,
			Price:         price,
			StockQuantity: stock,
			CategoryID:    f.CategoryID,
			Status:        f.Status,
		}
		_, err = f.api.CreateProduct(ctx, input)
	}

	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.IsValidation() {
			for field, message := range apiErr.Errors {
				f.fieldErrors[field] = message
			}
		} else {
			f.formError = err.Error()
		}
		return err
	}

	if f.OnSaved != nil {
		f.OnSaved()
	}
	return nil
}

// CreateCategory creates a category inline, appends it to the form's category
// list, and selects it. No navigation happens.
func (f *FormView) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	category, err := f.api.CreateCategory(ctx, name, description)
	if err != nil {
		return nil, err
	}
	f.categories = append(f.categories, *category)
	f.CategoryID = category.ID
	return category, nil
}

// Categories returns the loaded category list.
func (f *FormView) Categories() []models.Category {
	return f.categories
}

// FieldErrors returns the per-field validation messages.
func (f *FormView) FieldErrors() map[string]string {
	return f.fieldErrors
}

// FormError returns the form-level error from the last failed submit.
func (f *FormView) FormError() string {
	return f.formError
}

// Mode returns the form mode.
func (f *FormView) Mode() FormMode {
	return f.mode
}
