package api

import (
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/storage"
)

// extraResponse is the wire form of an extra.
type extraResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newExtraResponse(extra domain.Extra) extraResponse {
	return extraResponse{
		ID:          extra.ID().String(),
		Name:        extra.Name().String(),
		Description: extra.Description().String(),
		Price:       extra.Price().String(),
		CreatedAt:   extra.Metadata().CreatedAt(),
		UpdatedAt:   extra.Metadata().UpdatedAt(),
	}
}

func newExtraResponses(extras []domain.Extra) []extraResponse {
	out := make([]extraResponse, 0, len(extras))
	for _, extra := range extras {
		out = append(out, newExtraResponse(extra))
	}

	return out
}

// productResponse is the wire form of a product including its extras.
type productResponse struct {
	ID          string          `json:"id"`
	CatalogID   string          `json:"catalogId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       string          `json:"price"`
	Kind        string          `json:"kind"`
	Extras      []extraResponse `json:"extras"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newProductResponse(product domain.Product) productResponse {
	return productResponse{
		ID:          product.ID().String(),
		CatalogID:   product.CatalogID().String(),
		Name:        product.Name().String(),
		Description: product.Description().String(),
		Price:       product.Price().String(),
		Kind:        product.Kind().String(),
		Extras:      newExtraResponses(product.Extras()),
		CreatedAt:   product.Metadata().CreatedAt(),
		UpdatedAt:   product.Metadata().UpdatedAt(),
	}
}

// catalogResponse is the wire form of a catalog without its products.
type catalogResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newCatalogResponse(catalog domain.Catalog) catalogResponse {
	return catalogResponse{
		ID:          catalog.ID().String(),
		Name:        catalog.Name().String(),
		Description: catalog.Description().String(),
		CreatedAt:   catalog.Metadata().CreatedAt(),
		UpdatedAt:   catalog.Metadata().UpdatedAt(),
	}
}

// catalogProductsResponse is a catalog together with its product list.
type catalogProductsResponse struct {
	catalogResponse

	Products []productResponse `json:"products"`
}

func newCatalogProductsResponse(aggregate domain.CatalogProducts) catalogProductsResponse {
	products := make([]productResponse, 0, len(aggregate.Products))
	for _, product := range aggregate.Products {
		products = append(products, newProductResponse(product))
	}

	return catalogProductsResponse{
		catalogResponse: newCatalogResponse(aggregate.Catalog),
		Products:        products,
	}
}

// catalogPageResponse is one page of the catalog listing.
type catalogPageResponse struct {
	Items []catalogProductsResponse `json:"items"`
	Count uint                      `json:"count"`
	Page  uint                      `json:"page"`
	Limit uint                      `json:"limit"`
}

func newCatalogPageResponse(page storage.CatalogPage) catalogPageResponse {
	items := make([]catalogProductsResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, newCatalogProductsResponse(item))
	}

	return catalogPageResponse{
		Items: items,
		Count: page.Count,
		Page:  page.Page,
		Limit: page.Limit,
	}
}

// userResponse is the wire form of an account.
type userResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:            user.ID().String(),
		Name:          user.Name().String(),
		Email:         user.Email().String(),
		EmailVerified: user.EmailVerified(),
		CreatedAt:     user.Metadata().CreatedAt(),
		UpdatedAt:     user.Metadata().UpdatedAt(),
	}
}
