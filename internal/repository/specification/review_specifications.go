package specification

import "gorm.io/gorm"

type ByProductID struct {
	ProductID uint
}

func (s ByProductID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("product_id = ?", s.ProductID)
}
