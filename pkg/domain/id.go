package domain

import (
	"catalog/pkg/serrors"

	"github.com/google/uuid"
)

// Entity ids are uuid v7 values: 128-bit, time-ordered, generated locally at
// construction time. The wrappers exist purely for type safety, so a product
// id can never be passed where a catalog id is expected.
type (
	// CatalogID uniquely identifies a catalog.
	CatalogID uuid.UUID
	// ProductID uniquely identifies a product within its catalog.
	ProductID uuid.UUID
	// ExtraID uniquely identifies a product extra.
	ExtraID uuid.UUID
	// UserID uniquely identifies a user.
	UserID uuid.UUID
	// SessionID uniquely identifies a login session.
	SessionID uuid.UUID
)

func newV7() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func parseID(value, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, serrors.With(serrors.ErrValidation, "%q is not a valid %s id", value, entity)
	}

	return id, nil
}

// NewCatalogID generates a fresh time-ordered catalog id.
func NewCatalogID() CatalogID { return CatalogID(newV7()) }

// ParseCatalogID parses the canonical string form of a catalog id.
func ParseCatalogID(value string) (CatalogID, error) {
	id, err := parseID(value, "catalog")

	return CatalogID(id), err
}

func (id CatalogID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is the zero value (never a generated id).
func (id CatalogID) IsZero() bool { return id == CatalogID{} }

// NewProductID generates a fresh time-ordered product id.
func NewProductID() ProductID { return ProductID(newV7()) }

// ParseProductID parses the canonical string form of a product id.
func ParseProductID(value string) (ProductID, error) {
	id, err := parseID(value, "product")

	return ProductID(id), err
}

func (id ProductID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is the zero value (never a generated id).
func (id ProductID) IsZero() bool { return id == ProductID{} }

// NewExtraID generates a fresh time-ordered extra id.
func NewExtraID() ExtraID { return ExtraID(newV7()) }

// ParseExtraID parses the canonical string form of an extra id.
func ParseExtraID(value string) (ExtraID, error) {
	id, err := parseID(value, "extra")

	return ExtraID(id), err
}

func (id ExtraID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is the zero value (never a generated id).
func (id ExtraID) IsZero() bool { return id == ExtraID{} }

// NewUserID generates a fresh time-ordered user id.
func NewUserID() UserID { return UserID(newV7()) }

// ParseUserID parses the canonical string form of a user id.
func ParseUserID(value string) (UserID, error) {
	id, err := parseID(value, "user")

	return UserID(id), err
}

func (id UserID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is the zero value (never a generated id).
func (id UserID) IsZero() bool { return id == UserID{} }

// NewSessionID generates a fresh time-ordered session id.
func NewSessionID() SessionID { return SessionID(newV7()) }

// ParseSessionID parses the canonical string form of a session id.
func ParseSessionID(value string) (SessionID, error) {
	id, err := parseID(value, "session")

	return SessionID(id), err
}

func (id SessionID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is the zero value (never a generated id).
func (id SessionID) IsZero() bool { return id == SessionID{} }
