// Package service implements the application use cases on top of the storage
// contracts. Services parse raw transport input into domain values, so
// validation failures surface before anything touches the store.
package service

//go:generate mockgen -package mockservice -source=interface.go -destination=mock/mockservice.go *

import (
	"context"

	"catalog/pkg/domain"
	"catalog/pkg/storage"
)

// CatalogInput carries the raw fields of a catalog create request.
type CatalogInput struct {
	Name        string
	Description string
}

// CatalogUpdate carries the raw fields of a catalog update request. Nil
// means "leave unchanged".
type CatalogUpdate struct {
	Name        *string
	Description *string
}

// Catalogs manages catalog aggregates.
type Catalogs interface {
	Create(ctx context.Context, in CatalogInput) (domain.Catalog, error)
	Get(ctx context.Context, id string) (domain.CatalogProducts, error)
	List(ctx context.Context, page, limit uint) (storage.CatalogPage, error)
	Update(ctx context.Context, id string, in CatalogUpdate) (domain.Catalog, error)
	Delete(ctx context.Context, id string) (domain.CatalogProducts, error)
}

// ProductInput carries the raw fields of a product create request. Price is
// the canonical decimal string form, ExtraIDs reference existing extras.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Kind        string
	ExtraIDs    []string
}

// ProductUpdate carries the raw fields of a product update request. Nil
// means "leave unchanged"; a non-nil empty ExtraIDs unbinds every extra.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *string
	Kind        *string
	ExtraIDs    *[]string
}

// Products manages products within a catalog.
type Products interface {
	Create(ctx context.Context, catalogID string, in ProductInput) (domain.Product, error)
	Get(ctx context.Context, catalogID, id string) (domain.Product, error)
	Update(ctx context.Context, catalogID, id string, in ProductUpdate) (domain.Product, error)
	Delete(ctx context.Context, catalogID, id string) (domain.Product, error)
}

// ExtraInput carries the raw fields of an extra create request.
type ExtraInput struct {
	Name        string
	Description string
	Price       string
}

// ExtraUpdate carries the raw fields of an extra update request. Nil means
// "leave unchanged".
type ExtraUpdate struct {
	Name        *string
	Description *string
	Price       *string
}

// Extras manages product extras.
type Extras interface {
	Create(ctx context.Context, in ExtraInput) (domain.Extra, error)
	Get(ctx context.Context, id string) (domain.Extra, error)
	List(ctx context.Context) ([]domain.Extra, error)
	Update(ctx context.Context, id string, in ExtraUpdate) (domain.Extra, error)
	Delete(ctx context.Context, id string) (domain.Extra, error)
}

// RegisterInput carries the raw fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginResult is a successful login: the signed bearer token plus the
// session and user behind it.
type LoginResult struct {
	Token   string
	Session domain.Session
	User    domain.User
}

// Users manages accounts and login sessions.
type Users interface {
	// Register creates the account and enqueues the verification mail in one
	// transaction.
	Register(ctx context.Context, in RegisterInput) (domain.User, error)
	// Login verifies the credentials and issues a fresh session token.
	Login(ctx context.Context, email, password string) (LoginResult, error)
	// Refresh extends a live session and reissues its token.
	Refresh(ctx context.Context, session domain.Session) (LoginResult, error)
	// Logout removes the session. Unknown sessions log out successfully.
	Logout(ctx context.Context, sessionID domain.SessionID) error
	// UserBySession resolves the account behind a live session.
	UserBySession(ctx context.Context, session domain.Session) (domain.User, error)
	// VerifyEmail redeems a verification token and marks the address verified.
	VerifyEmail(ctx context.Context, token string) error
}
