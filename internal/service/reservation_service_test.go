package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uint]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.Id] = p
	return nil
}

func (r *fakeProductRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindById(_ context.Context, id uint) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeReservationRepo struct {
	nextId       uint
	reservations map[uint]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{nextId: 1, reservations: map[uint]*entity.Reservation{}}
}

func (r *fakeReservationRepo) Create(_ context.Context, res *entity.Reservation) error {
	res.Id = r.nextId
	r.nextId++
	res.CreatedAt = time.Now()
	stored := *res
	r.reservations[res.Id] = &stored
	return nil
}

func (r *fakeReservationRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Reservation, error) {
	out := make([]*entity.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		include := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByUserID:
				if res.UserId != s.UserID {
					include = false
				}
			case specification.ByStatus:
				if res.Status != s.Status {
					include = false
				}
			}
		}
		if include {
			copied := *res
			out = append(out, &copied)
		}
	}

	// Ids are monotonic, so created_at ordering reduces to id ordering.
	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "created_at" {
			sort.Slice(out, func(i, j int) bool {
				if order.Desc {
					return out[i].Id > out[j].Id
				}
				return out[i].Id < out[j].Id
			})
		}
	}
	for _, spec := range specs {
		if page, ok := spec.(specification.Pagination); ok {
			if page.Offset >= len(out) {
				return nil, nil
			}
			out = out[page.Offset:]
			if len(out) > page.Limit {
				out = out[:page.Limit]
			}
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) FindById(_ context.Context, id uint) (*entity.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func (r *fakeReservationRepo) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) (*entity.Reservation, error) {
	if len(fields) == 0 {
		return nil, contract.ErrNoFields
	}
	res, ok := r.reservations[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	if v, ok := fields["status"]; ok {
		res.Status = v.(string)
	}
	if v, ok := fields["pickup_date"]; ok {
		d := v.(time.Time)
		res.PickupDate = &d
	}
	copied := *res
	return &copied, nil
}

func newTestReservationService() (IReservationService, *fakeReservationRepo) {
	products := &fakeProductRepo{products: map[uint]*entity.Product{
		1: {Id: 1, Name: "Nike Air Max 90", Price: 129.99, Stock: 5},
		2: {Id: 2, Name: "Adidas Stan Smith", Price: 89.99, Stock: 0},
	}}
	repo := newFakeReservationRepo()
	return NewReservationService(repo, products, logger.NewNopLogger()), repo
}

func TestCreateReservation(t *testing.T) {
	svc, _ := newTestReservationService()

	res, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
		UserId:          3,
		ProductId:       1,
		Quantity:        2,
		ReservationDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPending, res.Status)
	assert.Equal(t, 2, res.Quantity)
}

func TestCreateReservationInsufficientStock(t *testing.T) {
	svc, _ := newTestReservationService()

	_, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
		UserId:          3,
		ProductId:       2,
		Quantity:        1,
		ReservationDate: time.Now(),
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
	assert.Equal(t, 1, stockErr.Requested)
}

func TestCreateReservationUnknownProduct(t *testing.T) {
	svc, _ := newTestReservationService()

	_, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
		UserId:          3,
		ProductId:       42,
		Quantity:        1,
		ReservationDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateReservationValidatesStatus(t *testing.T) {
	svc, _ := newTestReservationService()

	created, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
		UserId:          3,
		ProductId:       1,
		Quantity:        1,
		ReservationDate: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateReservation(context.Background(), created.Id, &dto.UpdateReservationRequest{Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.UpdateReservation(context.Background(), created.Id, &dto.UpdateReservationRequest{Status: entity.ReservationStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, updated.Status)
}

func TestCancelReservation(t *testing.T) {
	svc, _ := newTestReservationService()

	created, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
		UserId:          3,
		ProductId:       1,
		Quantity:        1,
		ReservationDate: time.Now(),
	})
	require.NoError(t, err)

	// Another customer cannot cancel it.
	_, err = svc.CancelReservation(context.Background(), created.Id, 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	cancelled, err := svc.CancelReservation(context.Background(), created.Id, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, cancelled.Status)

	// Cancelling twice fails.
	_, err = svc.CancelReservation(context.Background(), created.Id, 3)
	assert.ErrorIs(t, err, ErrReservationCancelled)
}

func TestGetReservation(t *testing.T) {
	svc, _ := newTestReservationService()

	created, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
		UserId:          3,
		ProductId:       1,
		Quantity:        1,
		ReservationDate: time.Now(),
	})
	require.NoError(t, err)

	// The owner reads it back.
	res, err := svc.GetReservation(context.Background(), created.Id, 3)
	require.NoError(t, err)
	assert.Equal(t, created.Id, res.Id)

	// Another customer gets not-found, not forbidden, so ids stay opaque.
	_, err = svc.GetReservation(context.Background(), created.Id, 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// Admins (userId 0) read anyone's.
	res, err = svc.GetReservation(context.Background(), created.Id, 0)
	require.NoError(t, err)
	assert.Equal(t, created.Id, res.Id)

	_, err = svc.GetReservation(context.Background(), 42, 0)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetAllReservationsPaginates(t *testing.T) {
	svc, _ := newTestReservationService()

	for i := 0; i < 7; i++ {
		_, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
			UserId:          uint(i + 1),
			ProductId:       1,
			Quantity:        1,
			ReservationDate: time.Now(),
		})
		require.NoError(t, err)
	}

	page, err := svc.GetAllReservations(context.Background(), "", 3, 3)
	require.NoError(t, err)

	// Total reflects every matching row, not the page size.
	assert.Equal(t, int64(7), page.Total)
	require.Len(t, page.Reservations, 3)

	// Newest first: ids 7..1, so offset 3 starts at 4.
	assert.Equal(t, uint(4), page.Reservations[0].Id)
	assert.Equal(t, uint(2), page.Reservations[2].Id)
}

func TestGetAllReservationsDefaultsAndStatusFilter(t *testing.T) {
	svc, repo := newTestReservationService()

	for i := 0; i < 4; i++ {
		_, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
			UserId:          uint(i + 1),
			ProductId:       1,
			Quantity:        1,
			ReservationDate: time.Now(),
		})
		require.NoError(t, err)
	}
	_, err := repo.UpdateFields(context.Background(), 1, map[string]interface{}{"status": entity.ReservationStatusConfirmed})
	require.NoError(t, err)

	// Zero limit/offset fall back to the defaults.
	all, err := svc.GetAllReservations(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Total)
	assert.Len(t, all.Reservations, 4)

	confirmed, err := svc.GetAllReservations(context.Background(), entity.ReservationStatusConfirmed, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), confirmed.Total)
	require.Len(t, confirmed.Reservations, 1)
	assert.Equal(t, uint(1), confirmed.Reservations[0].Id)

	_, err = svc.GetAllReservations(context.Background(), "shipped", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReservationStats(t *testing.T) {
	svc, _ := newTestReservationService()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateReservation(context.Background(), &dto.CreateReservationRequest{
			UserId:          uint(i + 1),
			ProductId:       1,
			Quantity:        1,
			ReservationDate: time.Now(),
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.ByStatus[entity.ReservationStatusPending])
	assert.Zero(t, stats.ByStatus[entity.ReservationStatusCancelled])
}
