// Package domain contains the core domain model of the catalog service:
// value objects (ids, names, prices, product kinds), the metadata timestamp
// pair, and the catalog, product, extra and user entities. These types
// validate themselves at construction and are intentionally free of
// infrastructure concerns so they can be shared across packages.
//
// Entities are immutable values. State changes go through the entity's
// Setter builder, whose Commit returns a new value with a refreshed
// Metadata; nothing mutates an entity in place.
package domain
