package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	catalogTable       = "catalog"
	productTable       = "product"
	extraTable         = "extra"
	productExtrasTable = "product_extras"
	userTable          = "app_user"
	sessionTable       = "session"
)

type PgCatalog struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *PgCatalog) ToDomain() (domain.Catalog, error) {
	metadata, err := domain.ConfiguredMetadata(p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("could not rebuild catalog %s: %w", p.ID, err)
	}

	return domain.CatalogFromConfig(domain.CatalogConfig{
		ID:          domain.CatalogID(p.ID),
		Name:        domain.CatalogName(p.Name),
		Description: domain.Description(p.Description.String),
		Metadata:    metadata,
	}), nil
}

func (p *PgCatalog) FromDomain(catalog domain.Catalog) {
	*p = PgCatalog{
		ID:   uuid.UUID(catalog.ID()),
		Name: catalog.Name().String(),
		Description: sql.NullString{
			String: catalog.Description().String(),
			Valid:  !catalog.Description().IsZero(),
		},
		CreatedAt: catalog.Metadata().CreatedAt(),
		UpdatedAt: catalog.Metadata().UpdatedAt(),
	}
}

type PgProduct struct {
	ID          uuid.UUID      `db:"id"`
	CatalogID   uuid.UUID      `db:"catalog_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`

	Price decimal.Decimal `db:"price"`
	Kind  string          `db:"kind"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToDomain rebuilds the product entity. The extras collection is loaded
// separately from the join table and passed in.
func (p *PgProduct) ToDomain(extras domain.Extras) (domain.Product, error) {
	metadata, err := domain.ConfiguredMetadata(p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return domain.Product{}, fmt.Errorf("could not rebuild product %s: %w", p.ID, err)
	}

	kind, err := domain.ParseKind(p.Kind)
	if err != nil {
		return domain.Product{}, fmt.Errorf("could not rebuild product %s: %w", p.ID, err)
	}

	return domain.ProductFromConfig(domain.ProductConfig{
		ID:          domain.ProductID(p.ID),
		CatalogID:   domain.CatalogID(p.CatalogID),
		Name:        domain.ProductName(p.Name),
		Description: domain.Description(p.Description.String),
		Price:       domain.NewPrice(p.Price),
		Kind:        kind,
		Extras:      extras,
		Metadata:    metadata,
	}), nil
}

func (p *PgProduct) FromDomain(product domain.Product) {
	*p = PgProduct{
		ID:        uuid.UUID(product.ID()),
		CatalogID: uuid.UUID(product.CatalogID()),
		Name:      product.Name().String(),
		Description: sql.NullString{
			String: product.Description().String(),
			Valid:  !product.Description().IsZero(),
		},
		Price:     product.Price().Decimal(),
		Kind:      product.Kind().String(),
		CreatedAt: product.Metadata().CreatedAt(),
		UpdatedAt: product.Metadata().UpdatedAt(),
	}
}

type PgExtra struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`

	Price decimal.Decimal `db:"price"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *PgExtra) ToDomain() (domain.Extra, error) {
	metadata, err := domain.ConfiguredMetadata(p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return domain.Extra{}, fmt.Errorf("could not rebuild extra %s: %w", p.ID, err)
	}

	return domain.ExtraFromConfig(domain.ExtraConfig{
		ID:          domain.ExtraID(p.ID),
		Name:        domain.ExtraName(p.Name),
		Description: domain.Description(p.Description.String),
		Price:       domain.NewPrice(p.Price),
		Metadata:    metadata,
	}), nil
}

func (p *PgExtra) FromDomain(extra domain.Extra) {
	*p = PgExtra{
		ID:   uuid.UUID(extra.ID()),
		Name: extra.Name().String(),
		Description: sql.NullString{
			String: extra.Description().String(),
			Valid:  !extra.Description().IsZero(),
		},
		Price:     extra.Price().Decimal(),
		CreatedAt: extra.Metadata().CreatedAt(),
		UpdatedAt: extra.Metadata().UpdatedAt(),
	}
}

func pgExtrasToDomain(extras []PgExtra) (domain.Extras, error) {
	out := make([]domain.Extra, 0, len(extras))
	for _, extra := range extras {
		d, err := extra.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	bounded, err := domain.NewExtras(out)
	if err != nil {
		return nil, serrors.With(serrors.ErrInternal, "stored product violates the extra bound: %s", err)
	}

	return bounded, nil
}

type PgUser struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	EmailVerified bool      `db:"email_verified"`
	Password      string    `db:"password"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *PgUser) ToDomain() (domain.User, error) {
	metadata, err := domain.ConfiguredMetadata(p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("could not rebuild user %s: %w", p.ID, err)
	}

	return domain.UserFromConfig(domain.UserConfig{
		ID:            domain.UserID(p.ID),
		Name:          domain.Username(p.Name),
		Email:         domain.Email(p.Email),
		EmailVerified: p.EmailVerified,
		Metadata:      metadata,
	}), nil
}

func (p *PgUser) FromDomain(user domain.User, passwordHash string) {
	*p = PgUser{
		ID:            uuid.UUID(user.ID()),
		Name:          user.Name().String(),
		Email:         user.Email().String(),
		EmailVerified: user.EmailVerified(),
		Password:      passwordHash,
		CreatedAt:     user.Metadata().CreatedAt(),
		UpdatedAt:     user.Metadata().UpdatedAt(),
	}
}

type PgSession struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (p *PgSession) ToDomain() domain.Session {
	return domain.Session{
		ID:        domain.SessionID(p.ID),
		UserID:    domain.UserID(p.UserID),
		ExpiresAt: p.ExpiresAt,
	}
}

func (p *PgSession) FromDomain(session domain.Session) {
	*p = PgSession{
		ID:        uuid.UUID(session.ID),
		UserID:    uuid.UUID(session.UserID),
		ExpiresAt: session.ExpiresAt,
	}
}

// jsonExtra and jsonProduct decode the json_agg sub-aggregations produced by
// the catalog aggregate queries. Timestamps arrive as RFC 3339 strings,
// prices as raw numerics which decimal parses without a float round-trip.
type jsonExtra struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type jsonProduct struct {
	ID          uuid.UUID       `json:"id"`
	CatalogID   uuid.UUID       `json:"catalog_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Kind        string          `json:"kind"`
	Extras      []jsonExtra     `json:"extras"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func decodeProducts(raw json.RawMessage) (domain.Products, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []jsonProduct
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("could not unmarshal products aggregation: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := row.toDomain()
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	bounded, err := domain.NewProducts(products)
	if err != nil {
		return nil, serrors.With(serrors.ErrInternal, "stored catalog violates the product bound: %s", err)
	}

	return bounded, nil
}

func (j *jsonProduct) toDomain() (domain.Product, error) {
	extras := make([]domain.Extra, 0, len(j.Extras))
	for _, e := range j.Extras {
		metadata, err := domain.ConfiguredMetadata(e.CreatedAt.UTC(), e.UpdatedAt.UTC())
		if err != nil {
			return domain.Product{}, fmt.Errorf("could not rebuild extra %s: %w", e.ID, err)
		}

		extras = append(extras, domain.ExtraFromConfig(domain.ExtraConfig{
			ID:          domain.ExtraID(e.ID),
			Name:        domain.ExtraName(e.Name),
			Description: domain.Description(e.Description),
			Price:       domain.NewPrice(e.Price),
			Metadata:    metadata,
		}))
	}

	boundedExtras, err := domain.NewExtras(extras)
	if err != nil {
		return domain.Product{}, serrors.With(serrors.ErrInternal,
			"stored product %s violates the extra bound: %s", j.ID, err)
	}

	metadata, err := domain.ConfiguredMetadata(j.CreatedAt.UTC(), j.UpdatedAt.UTC())
	if err != nil {
		return domain.Product{}, fmt.Errorf("could not rebuild product %s: %w", j.ID, err)
	}

	kind, err := domain.ParseKind(j.Kind)
	if err != nil {
		return domain.Product{}, fmt.Errorf("could not rebuild product %s: %w", j.ID, err)
	}

	return domain.ProductFromConfig(domain.ProductConfig{
		ID:          domain.ProductID(j.ID),
		CatalogID:   domain.CatalogID(j.CatalogID),
		Name:        domain.ProductName(j.Name),
		Description: domain.Description(j.Description),
		Price:       domain.NewPrice(j.Price),
		Kind:        kind,
		Extras:      boundedExtras,
		Metadata:    metadata,
	}), nil
}
