package model

import "time"

// Store is the root of tenancy. Every other entity belongs to exactly one
// store, and only the owner recorded here may mutate the store's catalog.
type Store struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_stores_owner_name"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;uniqueIndex:idx_stores_owner_name;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
