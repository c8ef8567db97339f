package ui_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"catalog/internal/models"
	"catalog/pkg/client"
)

// catalogStub is a minimal in-memory rendition of the catalog API for view
// tests. It serves and mutates its own state the way the real API would.
type catalogStub struct {
	mu         sync.Mutex
	categories []models.Category
	products   []models.Product
	nextID     uint
	deletes    []uint
}

func newCatalogStub(categories []models.Category, products []models.Product) *catalogStub {
	nextID := uint(1)
	for _, p := range products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	for _, c := range categories {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	return &catalogStub{categories: categories, products: products, nextID: nextID}
}

func (s *catalogStub) serve(t *testing.T) (*httptest.Server, *client.Client) {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
	fieldError := func(w http.ResponseWriter, field, message string) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Validation failed",
			"errors":  map[string]string{field: message},
		})
	}

	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, s.categories)
	})

	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		if input.Name == "" {
			fieldError(w, "name", "The name field is required")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		category := models.Category{ID: s.nextID, Name: input.Name, Description: input.Description}
		s.nextID++
		s.categories = append(s.categories, category)
		writeJSON(w, http.StatusCreated, category)
	})

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		result := []models.Product{}
		filter := r.URL.Query().Get("category_id")
		for _, p := range s.products {
			if filter == "" || strconv.FormatUint(uint64(p.CategoryID), 10) == filter {
				result = append(result, p)
			}
		}
		writeJSON(w, http.StatusOK, result)
	})

	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseUint(r.PathValue("id"), 10, 32)
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, p := range s.products {
			if p.ID == uint(id) {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	})

	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		var input client.ProductInput
		json.NewDecoder(r.Body).Decode(&input)
		if input.Name == "Duplicate" {
			fieldError(w, "name", "The name has already been taken")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		product := models.Product{
			ID: s.nextID, Name: input.Name, Description: input.Description,
			Price: input.Price, StockQuantity: input.StockQuantity,
			CategoryID: input.CategoryID, Status: input.Status,
		}
		s.nextID++
		s.products = append(s.products, product)
		writeJSON(w, http.StatusCreated, product)
	})

	mux.HandleFunc("PUT /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseUint(r.PathValue("id"), 10, 32)
		var update client.ProductUpdate
		json.NewDecoder(r.Body).Decode(&update)
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.products {
			if s.products[i].ID != uint(id) {
				continue
			}
			p := &s.products[i]
			if update.Name != nil {
				p.Name = *update.Name
			}
			if update.Description != nil {
				p.Description = *update.Description
			}
			if update.Price != nil {
				p.Price = *update.Price
			}
			if update.StockQuantity != nil {
				p.StockQuantity = *update.StockQuantity
			}
			if update.CategoryID != nil {
				p.CategoryID = *update.CategoryID
			}
			if update.Status != nil {
				p.Status = *update.Status
			}
			writeJSON(w, http.StatusOK, *p)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	})

	mux.HandleFunc("DELETE /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseUint(r.PathValue("id"), 10, 32)
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, p := range s.products {
			if p.ID == uint(id) {
				s.products = append(s.products[:i], s.products[i+1:]...)
				s.deletes = append(s.deletes, uint(id))
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	session := client.NewSession()
	session.SetToken("test-token")
	return server, client.New(server.URL+"/api", session)
}

func (s *catalogStub) deletedIDs() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint(nil), s.deletes...)
}

func (s *catalogStub) productCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *catalogStub) product(id uint) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
