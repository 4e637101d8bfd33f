package model

import "time"

// Order is a storefront purchase. Orders are created by anonymous storefront
// callers; payment state is only ever flipped through the order update path.
// An order plus its items is one consistency unit: readers see either the
// pre-update item set or the fully replaced one, never a mix.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	StoreID       uint        `json:"store_id" gorm:"index;not null"`
	Store         *Store      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Phone         string      `json:"phone" gorm:"type:varchar(50)"`
	Address       string      `json:"address" gorm:"type:text"`
	CustomerEmail string      `json:"customer_email" gorm:"type:varchar(255)"`
	IsPaid        bool        `json:"is_paid" gorm:"default:false"`
	Items         []OrderItem `json:"order_items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is one product line of an order
type OrderItem struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"order_id" gorm:"index;not null"`
	ProductID uint     `json:"product_id" gorm:"index;not null"`
	Product   *Product `json:"product,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity  int      `json:"quantity" gorm:"not null;default:1"`
}

// AllModels lists every entity for migration, parents before children so
// AutoMigrate can create foreign keys in one pass.
func AllModels() []interface{} {
	return []interface{}{
		&Store{},
		&Billboard{},
		&Category{},
		&Size{},
		&Color{},
		&Product{},
		&ProductImage{},
		&Order{},
		&OrderItem{},
	}
}
