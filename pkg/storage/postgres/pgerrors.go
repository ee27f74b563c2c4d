package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names in the schema, matched by name when the database rejects a
// write. The migrations are the source of truth, these must stay in sync.
const (
	constraintCatalogPK   = "pk_catalog"
	constraintCatalogName = "ak_catalog_name"

	constraintProductPK        = "pk_product"
	constraintProductName      = "ak_product_name"
	constraintProductCatalogFK = "fk_product_catalog_id"

	constraintExtraPK   = "pk_extra"
	constraintExtraName = "ak_extra_name"

	constraintProductExtrasProductFK = "fk_product_extras_product_id"
	constraintProductExtrasExtraFK   = "fk_product_extras_extra_id"

	constraintUserPK    = "pk_user"
	constraintUserEmail = "ak_user_email"

	constraintSessionPK     = "pk_session"
	constraintSessionUserFK = "fk_session_user_id"
)

// constraintName extracts the violated constraint name from a database error,
// or "" when the error is not a constraint violation.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
