package model

import "time"

// Product is a catalog item. Price is a positive integer in minor currency
// units. Images are kept in a child table so their order survives round-trips.
type Product struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	StoreID    uint           `json:"store_id" gorm:"index;not null"`
	Store      *Store         `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name       string         `json:"name" gorm:"type:varchar(100);not null"`
	Price      int64          `json:"price" gorm:"not null"`
	CategoryID uint           `json:"category_id" gorm:"index;not null"`
	Category   *Category      `json:"category,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SizeID     uint           `json:"size_id" gorm:"index;not null"`
	Size       *Size          `json:"size,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ColorID    uint           `json:"color_id" gorm:"index;not null"`
	Color      *Color         `json:"color,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	IsFeatured bool           `json:"is_featured" gorm:"default:false"`
	IsArchived bool           `json:"is_archived" gorm:"default:false"`
	Images     []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ProductImage is one hosted image URL of a product. Position preserves the
// order the owner uploaded them in.
type ProductImage struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	ProductID uint   `json:"-" gorm:"index;not null"`
	URL       string `json:"url" gorm:"type:text;not null"`
	Position  int    `json:"position" gorm:"not null;default:0"`
}

// ImageURLs returns the product's image URLs in display order
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
