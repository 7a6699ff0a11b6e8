package implementation

import (
	"context"
	"errors"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/mapper"
	"sneakers-store-be/internal/model"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReservationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReservationMapper
}

func NewReservationRepository(db *gorm.DB) contract.ReservationRepository {
	return &ReservationRepositoryImpl{
		db:     db,
		mapper: mapper.NewReservationMapper(),
	}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation *entity.Reservation) error {
	m := r.mapper.ToModel(reservation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created, err := r.FindById(ctx, m.Id)
	if err != nil {
		return err
	}
	*reservation = *created
	return nil
}

func (r *ReservationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, error) {
	var models []*model.Reservation
	query := applySpecifications(r.db.WithContext(ctx).Preload("Product"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Reservation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ReservationRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.Reservation, error) {
	var m model.Reservation
	if err := r.db.WithContext(ctx).Preload("Product").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReservationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Reservation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReservationRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*entity.Reservation, error) {
	if len(fields) == 0 {
		return nil, contract.ErrNoFields
	}
	res := r.db.WithContext(ctx).Model(&model.Reservation{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, contract.ErrNotFound
	}
	return r.FindById(ctx, id)
}
