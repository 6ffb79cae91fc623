// Package seed provides the catalogue the store is seeded with on
// first initialisation, either built in or loaded from a JSON file on
// the local file system or S3.
package seed

import (
	"context"
	"time"

	"shopzone/internal/model"
)

// Catalog is the seedable portion of the store: categories and the
// products referencing them.
type Catalog struct {
	Categories []model.Category `json:"categories"`
	Products   []model.Product  `json:"products"`
}

// Loader loads a catalogue from a named source. The meaning of name
// depends on the implementation (file path, S3 key).
type Loader interface {
	Load(ctx context.Context, name string) (*Catalog, error)
}

// Default returns the built-in catalogue: five categories and eight
// products. Prices are in the smallest currency unit.
func Default() Catalog {
	ts := time.Now().UTC()

	categories := []model.Category{
		{ID: "1", Name: "Electronics", Description: "Latest gadgets and electronics", CreatedAt: ts},
		{ID: "2", Name: "Fashion", Description: "Trendy clothing and accessories", CreatedAt: ts},
		{ID: "3", Name: "Home & Kitchen", Description: "Home appliances and kitchen essentials", CreatedAt: ts},
		{ID: "4", Name: "Books", Description: "Books and educational materials", CreatedAt: ts},
		{ID: "5", Name: "Sports", Description: "Sports equipment and fitness gear", CreatedAt: ts},
	}

	products := []model.Product{
		{
			ID:            "1",
			Name:          "iPhone 15 Pro",
			Description:   "Latest iPhone with advanced camera system and A17 Pro chip",
			Price:         134900,
			CategoryID:    "1",
			ImageURL:      "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg",
			StockQuantity: 25,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "2",
			Name:          "Samsung Galaxy S24 Ultra",
			Description:   "Premium Android smartphone with S Pen and 200MP camera",
			Price:         129999,
			CategoryID:    "1",
			ImageURL:      "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg",
			StockQuantity: 30,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "3",
			Name:          "MacBook Air M3",
			Description:   "13-inch laptop with M3 chip, perfect for work and creativity",
			Price:         114900,
			CategoryID:    "1",
			ImageURL:      "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg",
			StockQuantity: 15,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "4",
			Name:          "Nike Air Max 270",
			Description:   "Comfortable running shoes with Max Air cushioning",
			Price:         12995,
			CategoryID:    "2",
			ImageURL:      "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
			StockQuantity: 50,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "5",
			Name:          "Levi's 501 Original Jeans",
			Description:   "Classic straight-fit jeans, the original blue jean since 1873",
			Price:         4999,
			CategoryID:    "2",
			ImageURL:      "https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
			StockQuantity: 40,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "6",
			Name:          "KitchenAid Stand Mixer",
			Description:   "Professional 5-quart stand mixer for all your baking needs",
			Price:         34999,
			CategoryID:    "3",
			ImageURL:      "https://images.pexels.com/photos/4226796/pexels-photo-4226796.jpeg",
			StockQuantity: 20,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "7",
			Name:          "The Psychology of Money",
			Description:   "Timeless lessons on wealth, greed, and happiness by Morgan Housel",
			Price:         399,
			CategoryID:    "4",
			ImageURL:      "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg",
			StockQuantity: 100,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            "8",
			Name:          "Yoga Mat Premium",
			Description:   "Non-slip yoga mat with extra cushioning for comfortable practice",
			Price:         2499,
			CategoryID:    "5",
			ImageURL:      "https://images.pexels.com/photos/3822906/pexels-photo-3822906.jpeg",
			StockQuantity: 35,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
	}

	return Catalog{Categories: categories, Products: products}
}
