package mapper

import (
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToModel(e *entity.Review) *model.Review {
	return &model.Review{
		Id:        e.Id,
		ProductId: e.ProductId,
		UserId:    e.UserId,
		Rating:    e.Rating,
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ReviewMapper) ToEntity(mo *model.Review) *entity.Review {
	return &entity.Review{
		Id:          mo.Id,
		ProductId:   mo.ProductId,
		UserId:      mo.UserId,
		Rating:      mo.Rating,
		Comment:     mo.Comment,
		CreatedAt:   mo.CreatedAt,
		UpdatedAt:   mo.UpdatedAt,
		Username:    mo.User.Username,
		ProductName: mo.Product.Name,
	}
}
