package model

import "time"

// Billboard is a promotional banner owned by a store. The image itself lives
// on an external asset host; only the hosted URL is stored.
type Billboard struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoreID   uint      `json:"store_id" gorm:"index;not null"`
	Store     *Store    `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Label     string    `json:"label" gorm:"type:varchar(255);not null"`
	ImageURL  string    `json:"image_url" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups products under a billboard
type Category struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	StoreID     uint       `json:"store_id" gorm:"index;not null"`
	Store       *Store     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name        string     `json:"name" gorm:"type:varchar(100);not null"`
	BillboardID uint       `json:"billboard_id" gorm:"index;not null"`
	Billboard   *Billboard `json:"billboard,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Size is a product size option (e.g. name "Small", value "S")
type Size struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoreID   uint      `json:"store_id" gorm:"index;not null"`
	Store     *Store    `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Value     string    `json:"value" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Color is a product color option (e.g. name "Red", value "#FF0000")
type Color struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoreID   uint      `json:"store_id" gorm:"index;not null"`
	Store     *Store    `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Value     string    `json:"value" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
