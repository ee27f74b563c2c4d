package domain

import (
	"strings"

	"catalog/pkg/serrors"
)

// Maximum byte lengths of the string value objects. Input is trimmed before
// the bound is checked; anything longer is rejected, never truncated.
const (
	MaxCatalogNameLen = 64
	MaxProductNameLen = 64
	MaxExtraNameLen   = 128
	MaxDescriptionLen = 128
	MaxUsernameLen    = 64
	MaxEmailLen       = 256
)

type (
	// CatalogName is a validated catalog display name.
	CatalogName string
	// ProductName is a validated product display name.
	ProductName string
	// ExtraName is a validated extra display name.
	ExtraName string
	// Description is a validated, optional catalog description. The empty
	// string means no description.
	Description string
	// Username is a validated user display name.
	Username string
	// Email is a validated email address.
	Email string
)

func newBounded(raw, what string, maxLen int) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) > maxLen {
		return "", serrors.With(serrors.ErrValidation, "%s cannot have more than %d bytes", what, maxLen)
	}

	return s, nil
}

// NewCatalogName trims raw and validates it against MaxCatalogNameLen.
func NewCatalogName(raw string) (CatalogName, error) {
	s, err := newBounded(raw, "catalog name", MaxCatalogNameLen)

	return CatalogName(s), err
}

func (n CatalogName) String() string { return string(n) }

// NewProductName trims raw and validates it against MaxProductNameLen.
func NewProductName(raw string) (ProductName, error) {
	s, err := newBounded(raw, "product name", MaxProductNameLen)

	return ProductName(s), err
}

func (n ProductName) String() string { return string(n) }

// NewExtraName trims raw and validates it against MaxExtraNameLen.
func NewExtraName(raw string) (ExtraName, error) {
	s, err := newBounded(raw, "extra name", MaxExtraNameLen)

	return ExtraName(s), err
}

func (n ExtraName) String() string { return string(n) }

// NewDescription trims raw and validates it against MaxDescriptionLen.
func NewDescription(raw string) (Description, error) {
	s, err := newBounded(raw, "catalog description", MaxDescriptionLen)

	return Description(s), err
}

func (d Description) String() string { return string(d) }

// IsZero reports whether the description is absent.
func (d Description) IsZero() bool { return d == "" }

// NewUsername trims raw and validates it against MaxUsernameLen.
func NewUsername(raw string) (Username, error) {
	s, err := newBounded(raw, "username", MaxUsernameLen)

	return Username(s), err
}

func (u Username) String() string { return string(u) }

// NewEmail trims raw and validates it against MaxEmailLen. The address must
// contain an "@"; anything stricter is left to the verification mail.
func NewEmail(raw string) (Email, error) {
	s, err := newBounded(raw, "email", MaxEmailLen)
	if err != nil {
		return "", err
	}
	if !strings.Contains(s, "@") {
		return "", serrors.With(serrors.ErrValidation, "%q is not a valid email", s)
	}

	return Email(s), nil
}

func (e Email) String() string { return string(e) }
