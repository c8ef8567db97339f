package models

import "time"

// Product availability states.
const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusOutOfStock = "out_of_stock"
)

// ProductStatuses lists every valid product status.
var ProductStatuses = []string{StatusActive, StatusInactive, StatusOutOfStock}

// Product is a catalog entry belonging to exactly one category. The category
// is attached eagerly on reads so API responses carry the full object.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" gorm:"not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"not null"`
	CategoryID    uint      `json:"category_id" gorm:"not null"`
	Status        string    `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}
