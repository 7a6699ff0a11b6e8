package service

import (
	"context"
	"errors"
	"fmt"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrReservationCancelled = errors.New("reservation is already cancelled")
)

// InsufficientStockError reports a reservation attempt that exceeds the
// available stock of the product.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available, %d requested", e.Available, e.Requested)
}

// defaultReservationPageSize caps the admin listing when the client sends no
// limit, matching the dashboard's page size.
const defaultReservationPageSize = 50

type IReservationService interface {
	CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	GetReservation(ctx context.Context, reservationId, userId uint) (*dto.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userId uint) (*dto.ReservationListResponse, error)
	GetAllReservations(ctx context.Context, status string, limit, offset int) (*dto.ReservationListResponse, error)
	UpdateReservation(ctx context.Context, reservationId uint, req *dto.UpdateReservationRequest) (*dto.ReservationResponse, error)
	CancelReservation(ctx context.Context, reservationId, userId uint) (*dto.ReservationResponse, error)
	GetStats(ctx context.Context) (*dto.ReservationStatsResponse, error)
}

type reservationService struct {
	reservationRepo contract.ReservationRepository
	productRepo     contract.ProductRepository
	log             logger.ILogger
}

func NewReservationService(
	reservationRepo contract.ReservationRepository,
	productRepo contract.ProductRepository,
	log logger.ILogger,
) IReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		productRepo:     productRepo,
		log:             log,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	product, err := s.productRepo.FindById(ctx, req.ProductId)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if product.Stock < req.Quantity {
		return nil, &InsufficientStockError{Available: product.Stock, Requested: req.Quantity}
	}

	reservation := &entity.Reservation{
		UserId:          req.UserId,
		ProductId:       req.ProductId,
		Quantity:        req.Quantity,
		ReservationDate: req.ReservationDate,
		Status:          entity.ReservationStatusPending,
		Notes:           req.Notes,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.Info("reservation", "reservation created", map[string]interface{}{
		"reservation_id": reservation.Id,
		"product_id":     req.ProductId,
		"quantity":       req.Quantity,
	})

	return toReservationResponse(reservation), nil
}

// GetReservation returns a single reservation. Customers only see their own;
// admins pass userId 0 and see any.
func (s *reservationService) GetReservation(ctx context.Context, reservationId, userId uint) (*dto.ReservationResponse, error) {
	reservation, err := s.reservationRepo.FindById(ctx, reservationId)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	if userId != 0 && reservation.UserId != userId {
		return nil, ErrReservationNotFound
	}
	return toReservationResponse(reservation), nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userId uint) (*dto.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toReservationListResponse(reservations, int64(len(reservations))), nil
}

// GetAllReservations pages through every reservation, newest first. Total
// counts every matching row, not just the returned page.
func (s *reservationService) GetAllReservations(ctx context.Context, status string, limit, offset int) (*dto.ReservationListResponse, error) {
	if limit <= 0 {
		limit = defaultReservationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var filters []specification.Specification
	if status != "" {
		if !entity.IsValidReservationStatus(status) {
			return nil, ErrInvalidStatus
		}
		filters = append(filters, specification.ByStatus{Status: status})
	}

	total, err := s.reservationRepo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	reservations, err := s.reservationRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toReservationListResponse(reservations, total), nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationId uint, req *dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	if !entity.IsValidReservationStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	fields := map[string]interface{}{"status": req.Status}
	if req.PickupDate != nil {
		fields["pickup_date"] = *req.PickupDate
	}

	updated, err := s.reservationRepo.UpdateFields(ctx, reservationId, fields)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return toReservationResponse(updated), nil
}

// CancelReservation lets a customer cancel their own reservation. Admins may
// cancel anyone's by passing userId 0.
func (s *reservationService) CancelReservation(ctx context.Context, reservationId, userId uint) (*dto.ReservationResponse, error) {
	reservation, err := s.reservationRepo.FindById(ctx, reservationId)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	if userId != 0 && reservation.UserId != userId {
		return nil, ErrReservationNotFound
	}
	if reservation.Status == entity.ReservationStatusCancelled {
		return nil, ErrReservationCancelled
	}

	updated, err := s.reservationRepo.UpdateFields(ctx, reservationId, map[string]interface{}{
		"status": entity.ReservationStatusCancelled,
	})
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return toReservationResponse(updated), nil
}

func (s *reservationService) GetStats(ctx context.Context) (*dto.ReservationStatsResponse, error) {
	total, err := s.reservationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(entity.ReservationStatuses))
	for _, status := range entity.ReservationStatuses {
		count, err := s.reservationRepo.Count(ctx, specification.ByStatus{Status: status})
		if err != nil {
			return nil, err
		}
		byStatus[status] = count
	}

	return &dto.ReservationStatsResponse{Total: total, ByStatus: byStatus}, nil
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	res := &dto.ReservationResponse{
		Id:              r.Id,
		UserId:          r.UserId,
		ProductId:       r.ProductId,
		Quantity:        r.Quantity,
		ReservationDate: r.ReservationDate,
		PickupDate:      r.PickupDate,
		Status:          r.Status,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
	if r.Product != nil {
		res.Product = &dto.ReservationProduct{
			Id:    r.Product.Id,
			Name:  r.Product.Name,
			Price: r.Product.Price,
			Image: r.Product.Image,
		}
	}
	return res
}

func toReservationListResponse(reservations []*entity.Reservation, total int64) *dto.ReservationListResponse {
	out := make([]*dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	return &dto.ReservationListResponse{
		Total:        total,
		Reservations: out,
	}
}
