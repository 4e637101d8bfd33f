// Package validation holds the typed input schemas for every write endpoint.
// Each input validates itself and returns the full list of failed rules, so
// callers can reject a request before any storage access happens.
package validation

import (
	"net/mail"
)

// StoreInput is the payload for creating or renaming a store
type StoreInput struct {
	Name string `json:"name"`
}

// Validate returns the list of failed rules, empty when the input is valid
func (in *StoreInput) Validate() []string {
	var errs []string
	if len(in.Name) < 3 {
		errs = append(errs, "The store name must be at least 3 characters long")
	}
	return errs
}

// BillboardInput is the payload for creating a billboard
type BillboardInput struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}

func (in *BillboardInput) Validate() []string {
	var errs []string
	if len(in.Label) < 3 {
		errs = append(errs, "The label must be at least 3 characters long")
	}
	if in.ImageURL == "" {
		errs = append(errs, "The image is required")
	}
	return errs
}

// BillboardUpdateInput carries only the fields the caller wants to change
type BillboardUpdateInput struct {
	Label    *string `json:"label"`
	ImageURL *string `json:"image_url"`
}

func (in *BillboardUpdateInput) Validate() []string {
	var errs []string
	if in.Label != nil && len(*in.Label) < 3 {
		errs = append(errs, "The label must be at least 3 characters long")
	}
	if in.ImageURL != nil && *in.ImageURL == "" {
		errs = append(errs, "The image is required")
	}
	return errs
}

// CategoryInput is the payload for creating a category
type CategoryInput struct {
	Name        string `json:"name"`
	BillboardID uint   `json:"billboard_id"`
}

func (in *CategoryInput) Validate() []string {
	var errs []string
	if len(in.Name) < 3 {
		errs = append(errs, "The category name must be at least 3 characters long")
	}
	if in.BillboardID == 0 {
		errs = append(errs, "Billboard ID is required")
	}
	return errs
}

// CategoryUpdateInput carries only the fields the caller wants to change
type CategoryUpdateInput struct {
	Name        *string `json:"name"`
	BillboardID *uint   `json:"billboard_id"`
}

func (in *CategoryUpdateInput) Validate() []string {
	var errs []string
	if in.Name != nil && len(*in.Name) < 3 {
		errs = append(errs, "The category name must be at least 3 characters long")
	}
	if in.BillboardID != nil && *in.BillboardID == 0 {
		errs = append(errs, "Billboard ID is required")
	}
	return errs
}

// SizeInput is the payload for creating a size option
type SizeInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (in *SizeInput) Validate() []string {
	var errs []string
	if len(in.Name) < 2 {
		errs = append(errs, "The size name must be at least 2 characters long")
	}
	if in.Value == "" {
		errs = append(errs, "The size value is required")
	}
	return errs
}

// SizeUpdateInput carries only the fields the caller wants to change
type SizeUpdateInput struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

func (in *SizeUpdateInput) Validate() []string {
	var errs []string
	if in.Name != nil && len(*in.Name) < 2 {
		errs = append(errs, "The size name must be at least 2 characters long")
	}
	if in.Value != nil && *in.Value == "" {
		errs = append(errs, "The size value is required")
	}
	return errs
}

// ColorInput is the payload for creating a color option
type ColorInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (in *ColorInput) Validate() []string {
	var errs []string
	if len(in.Name) < 2 {
		errs = append(errs, "The color name must be at least 2 characters long")
	}
	if in.Value == "" {
		errs = append(errs, "The color value is required")
	}
	return errs
}

// ColorUpdateInput carries only the fields the caller wants to change
type ColorUpdateInput struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

func (in *ColorUpdateInput) Validate() []string {
	var errs []string
	if in.Name != nil && len(*in.Name) < 2 {
		errs = append(errs, "The color name must be at least 2 characters long")
	}
	if in.Value != nil && *in.Value == "" {
		errs = append(errs, "The color value is required")
	}
	return errs
}

// ProductInput is the payload for creating a product. Price is in minor
// currency units. Images are hosted URLs in display order.
type ProductInput struct {
	Name       string   `json:"name"`
	Images     []string `json:"images"`
	Price      int64    `json:"price"`
	CategoryID uint     `json:"category_id"`
	SizeID     uint     `json:"size_id"`
	ColorID    uint     `json:"color_id"`
	IsFeatured bool     `json:"is_featured"`
	IsArchived bool     `json:"is_archived"`
}

func (in *ProductInput) Validate() []string {
	var errs []string
	if len(in.Name) < 3 {
		errs = append(errs, "Product name must be at least 3 characters long")
	}
	if len(in.Name) > 100 {
		errs = append(errs, "Product name must be less than 100 characters")
	}
	errs = append(errs, validateImages(in.Images)...)
	if in.Price <= 0 {
		errs = append(errs, "Price must be greater than 0")
	}
	if in.CategoryID == 0 {
		errs = append(errs, "Category is required")
	}
	if in.SizeID == 0 {
		errs = append(errs, "Size is required")
	}
	if in.ColorID == 0 {
		errs = append(errs, "Color is required")
	}
	return errs
}

// ProductUpdateInput carries only the fields the caller wants to change.
// A non-nil Images slice replaces the whole image list.
type ProductUpdateInput struct {
	Name       *string   `json:"name"`
	Images     *[]string `json:"images"`
	Price      *int64    `json:"price"`
	CategoryID *uint     `json:"category_id"`
	SizeID     *uint     `json:"size_id"`
	ColorID    *uint     `json:"color_id"`
	IsFeatured *bool     `json:"is_featured"`
	IsArchived *bool     `json:"is_archived"`
}

func (in *ProductUpdateInput) Validate() []string {
	var errs []string
	if in.Name != nil {
		if len(*in.Name) < 3 {
			errs = append(errs, "Product name must be at least 3 characters long")
		}
		if len(*in.Name) > 100 {
			errs = append(errs, "Product name must be less than 100 characters")
		}
	}
	if in.Images != nil {
		errs = append(errs, validateImages(*in.Images)...)
	}
	if in.Price != nil && *in.Price <= 0 {
		errs = append(errs, "Price must be greater than 0")
	}
	if in.CategoryID != nil && *in.CategoryID == 0 {
		errs = append(errs, "Category is required")
	}
	if in.SizeID != nil && *in.SizeID == 0 {
		errs = append(errs, "Size is required")
	}
	if in.ColorID != nil && *in.ColorID == 0 {
		errs = append(errs, "Color is required")
	}
	return errs
}

func validateImages(images []string) []string {
	var errs []string
	if len(images) < 1 {
		errs = append(errs, "At least one image is required")
	}
	if len(images) > 10 {
		errs = append(errs, "Maximum 10 images allowed")
	}
	for _, url := range images {
		if url == "" {
			errs = append(errs, "Image URL is required")
			break
		}
	}
	return errs
}

// OrderItemInput is one product line of an order payload
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (in *OrderItemInput) Validate() []string {
	var errs []string
	if in.ProductID == 0 {
		errs = append(errs, "Product ID is required")
	}
	if in.Quantity < 1 {
		errs = append(errs, "Quantity must be greater than 0")
	}
	return errs
}

// OrderInput is the payload for a storefront order. Contact fields are
// optional; items default to an empty set.
type OrderInput struct {
	IsPaid        bool             `json:"is_paid"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	CustomerEmail string           `json:"customer_email"`
	Items         []OrderItemInput `json:"order_items"`
}

func (in *OrderInput) Validate() []string {
	var errs []string
	if in.CustomerEmail != "" {
		if _, err := mail.ParseAddress(in.CustomerEmail); err != nil {
			errs = append(errs, "Invalid customer email")
		}
	}
	for _, item := range in.Items {
		errs = append(errs, item.Validate()...)
	}
	return errs
}

// OrderUpdateInput carries the optional payment flag flip and the optional
// full item replacement. A non-nil empty Items slice clears all items.
type OrderUpdateInput struct {
	IsPaid *bool             `json:"is_paid"`
	Items  *[]OrderItemInput `json:"order_items"`
}

func (in *OrderUpdateInput) Validate() []string {
	var errs []string
	if in.Items != nil {
		for _, item := range *in.Items {
			errs = append(errs, item.Validate()...)
		}
	}
	return errs
}
