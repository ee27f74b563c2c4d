package domain

import "fmt"

// Entity names used in the typed detail errors below.
const (
	EntityCatalog = "catalog"
	EntityProduct = "product"
	EntityExtra   = "extra"
	EntityUser    = "user"
	EntitySession = "session"
)

// IDConflictError reports that an entity with the same id already exists.
// It is carried as the cause inside a serrors.ErrConflict wrapper so callers
// can re-tag across aggregates without losing the origin.
type IDConflictError struct {
	Entity string
	ID     string
}

func (e *IDConflictError) Error() string {
	return fmt.Sprintf("%s with id %q already exists", e.Entity, e.ID)
}

// NameConflictError reports that the entity's unique name is already taken.
type NameConflictError struct {
	Entity string
	Name   string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("%s with name %q already exists", e.Entity, e.Name)
}

// EmailConflictError reports that a user with the same email already exists.
type EmailConflictError struct {
	Email string
}

func (e *EmailConflictError) Error() string {
	return fmt.Sprintf("user with email %q already exists", e.Email)
}

// NotFoundError reports a missing entity or referenced parent. Key is the
// looked-up identifier (id or email). Scope is set when the lookup was scoped
// by a parent, e.g. the catalog id of a product lookup.
type NotFoundError struct {
	Entity string
	Key    string
	Scope  string
}

func (e *NotFoundError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("%s %q not found in catalog %q", e.Entity, e.Key, e.Scope)
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}
