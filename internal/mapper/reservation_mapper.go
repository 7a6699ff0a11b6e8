package mapper

import (
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/model"
)

type ReservationMapper struct {
	productMapper *ProductMapper
}

func NewReservationMapper() *ReservationMapper {
	return &ReservationMapper{productMapper: NewProductMapper()}
}

func (m *ReservationMapper) ToModel(e *entity.Reservation) *model.Reservation {
	return &model.Reservation{
		Id:              e.Id,
		UserId:          e.UserId,
		ProductId:       e.ProductId,
		Quantity:        e.Quantity,
		ReservationDate: e.ReservationDate,
		PickupDate:      e.PickupDate,
		Status:          e.Status,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToEntity maps the row; the Product association is carried over when it was
// preloaded (a zero product id means it was not).
func (m *ReservationMapper) ToEntity(mo *model.Reservation) *entity.Reservation {
	e := &entity.Reservation{
		Id:              mo.Id,
		UserId:          mo.UserId,
		ProductId:       mo.ProductId,
		Quantity:        mo.Quantity,
		ReservationDate: mo.ReservationDate,
		PickupDate:      mo.PickupDate,
		Status:          mo.Status,
		Notes:           mo.Notes,
		CreatedAt:       mo.CreatedAt,
		UpdatedAt:       mo.UpdatedAt,
	}
	if mo.Product.Id != 0 {
		e.Product = m.productMapper.ToEntity(&mo.Product)
	}
	return e
}
