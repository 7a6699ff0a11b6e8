package specification

import "gorm.io/gorm"

// ByResolved filters chat messages on their resolution flag.
type ByResolved struct {
	Resolved bool
}

func (s ByResolved) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("resolved = ?", s.Resolved)
}
