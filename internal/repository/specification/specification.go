package specification

import "gorm.io/gorm"

// Specification is a composable query predicate. Repositories apply each one
// in order onto the base query; filters therefore stay explicit structs
// instead of ad hoc string building.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
