package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrSlugExists       = errors.New("slug already exists")
	ErrCategoryNotFound = errors.New("category not found")
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	Sold          string  `json:"sold"`
	CategoryID    string  `json:"categoryId"`
	ShopeeURL     string  `json:"shopeeUrl"`
	IsFlash       int     `json:"isFlash"`

	// Parsed once at creation so ordering never re-parses the display
	// strings. -1 means the price string did not parse; 0 original price
	// means absent.
	PriceCents         int64 `json:"priceCents"`
	OriginalPriceCents int64 `json:"originalPriceCents"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type ProductInput struct {
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	Sold          string  `json:"sold"`
	CategoryID    string  `json:"categoryId"`
	ShopeeURL     string  `json:"shopeeUrl"`
	IsFlash       int     `json:"isFlash"`
}

type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error)
	CreateCategory(ctx context.Context, in CategoryInput) (Category, error)

	ListAllProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (Product, error)

	Ping(ctx context.Context) error
}

const defaultSold = "0 vendidos"

func buildCategory(in CategoryInput) Category {
	return Category{
		ID:          "c_" + uuid.NewString(),
		Name:        in.Name,
		Emoji:       in.Emoji,
		Description: in.Description,
		Slug:        in.Slug,
	}
}

func buildProduct(in ProductInput) Product {
	sold := in.Sold
	if sold == "" {
		sold = defaultSold
	}

	isFlash := 0
	if in.IsFlash != 0 {
		isFlash = 1
	}

	priceCents := int64(-1)
	if c, ok := parsePriceBRL(in.Price); ok {
		priceCents = c
	}

	origCents := int64(0)
	if in.OriginalPrice != "" {
		origCents = -1
		if c, ok := parsePriceBRL(in.OriginalPrice); ok {
			origCents = c
		}
	}

	return Product{
		ID:                 "p_" + uuid.NewString(),
		Name:               in.Name,
		Image:              in.Image,
		Price:              in.Price,
		OriginalPrice:      in.OriginalPrice,
		Rating:             in.Rating,
		Sold:               sold,
		CategoryID:         in.CategoryID,
		ShopeeURL:          in.ShopeeURL,
		IsFlash:            isFlash,
		PriceCents:         priceCents,
		OriginalPriceCents: origCents,
	}
}
