package mapper

import (
	"encoding/json"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/model"

	"gorm.io/datatypes"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToModel(e *entity.Product) *model.Product {
	var sizes datatypes.JSON
	if len(e.Sizes) > 0 {
		if raw, err := json.Marshal(e.Sizes); err == nil {
			sizes = datatypes.JSON(raw)
		}
	}
	return &model.Product{
		Id:        e.Id,
		Name:      e.Name,
		Brand:     e.Brand,
		Price:     e.Price,
		Image:     e.Image,
		Stock:     e.Stock,
		Category:  e.Category,
		Sizes:     sizes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntity(mo *model.Product) *entity.Product {
	var sizes []string
	if len(mo.Sizes) > 0 {
		// Corrupt size payloads degrade to an empty list rather than failing
		// the whole read.
		_ = json.Unmarshal(mo.Sizes, &sizes)
	}
	return &entity.Product{
		Id:        mo.Id,
		Name:      mo.Name,
		Brand:     mo.Brand,
		Price:     mo.Price,
		Image:     mo.Image,
		Stock:     mo.Stock,
		Category:  mo.Category,
		Sizes:     sizes,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}
