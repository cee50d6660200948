package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	businesshoursrepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	reservationrepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	rtyperepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservationtype"
	storerepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/store"
)

// UseCase books a reservation: it re-derives the slot grid for the
// requested date, picks the least loaded qualified staff member and
// commits the row. The storage layer's exclusion guarantee is the final
// arbiter under concurrency.
type UseCase struct {
	storeRepo       StoreRepository
	rtypeRepo       ReservationTypeRepository
	staffRepo       StaffRepository
	hoursRepo       BusinessHoursRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	metrics         BusinessMetrics
	logger          Logger
}

func NewUseCase(
	storeRepo StoreRepository,
	rtypeRepo ReservationTypeRepository,
	staffRepo StaffRepository,
	hoursRepo BusinessHoursRepository,
	reservationRepo ReservationRepository,
	timeProvider TimeProvider,
	metrics BusinessMetrics,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		storeRepo:       storeRepo,
		rtypeRepo:       rtypeRepo,
		staffRepo:       staffRepo,
		hoursRepo:       hoursRepo,
		reservationRepo: reservationRepo,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Validate input and reject past dates
	if err := validateRequest(req, now); err != nil {
		return nil, err
	}

	// 2. Reservation type must exist
	rtype, err := uc.rtypeRepo.GetByID(ctx, req.ReservationTypeID)
	if err != nil {
		if errors.Is(err, rtyperepo.ErrTypeNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrReservationTypeNotFound, req.ReservationTypeID)
		}
		uc.logger.Error("create_reservation: failed to get reservation type %d: %v", req.ReservationTypeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Store must exist
	if _, err := uc.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, storerepo.ErrStoreNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrStoreNotFound, req.StoreID)
		}
		uc.logger.Error("create_reservation: failed to get store %d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Store must be open on the requested weekday
	hours, err := uc.hoursRepo.GetByStoreAndWeekday(ctx, req.StoreID, int(req.Date.Weekday()))
	if err != nil && !errors.Is(err, businesshoursrepo.ErrHoursNotFound) {
		uc.logger.Error("create_reservation: failed to get business hours for store %d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if hours == nil || !hours.IsOpen() {
		return nil, fmt.Errorf("%w: storeID=%d date=%s", ErrStoreClosed, req.StoreID, req.Date.Format(domain.DateFormat))
	}

	// 5. Requested start time must land on the slot grid
	if !domain.SlotOnGrid(hours.StartTime, hours.EndTime, rtype.DefaultMinutes, req.StartTime) {
		return nil, fmt.Errorf("%w: startTime=%s", ErrInvalidSlot, req.StartTime)
	}

	day := domain.Day(req.Date)
	startAt, err := req.StartTime.AtDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endTS, err := req.StartTime.AddMinutes(rtype.DefaultMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime=%s", ErrInvalidSlot, req.StartTime)
	}
	endAt, err := endTS.AtDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	// 6. Candidates: qualified staff free in the requested interval
	staffs, err := uc.staffRepo.ListQualified(ctx, req.StoreID, req.ReservationTypeID)
	if err != nil {
		uc.logger.Error("create_reservation: failed to list qualified staff: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	existing, err := uc.reservationRepo.ListByStoreAndDate(ctx, req.StoreID, day)
	if err != nil {
		uc.logger.Error("create_reservation: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	candidates := freeCandidates(staffs, existing, startAt, endAt)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: storeID=%d typeID=%d", ErrNoQualifiedStaff, req.StoreID, req.ReservationTypeID)
	}

	// 7. Pick the least loaded candidate, ties broken by lowest staff id
	staffID, err := uc.pickStaff(ctx, candidates)
	if err != nil {
		return nil, err
	}

	// 8. Commit; the exclusion constraint resolves concurrent takers
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		StoreID:           req.StoreID,
		ReservationTypeID: req.ReservationTypeID,
		StaffID:           staffID,
		UserEmail:         req.UserEmail,
		Date:              day,
		StartTime:         startAt,
		EndTime:           endAt,
		Status:            domain.StatusConfirmed,
	})
	if err != nil {
		if errors.Is(err, reservationrepo.ErrDuplicateReservation) {
			if uc.metrics != nil {
				uc.metrics.IncReservationConflict()
			}
			uc.logger.Warn("create_reservation: duplicate for staff %d at %s", staffID, req.StartTime)
			return nil, fmt.Errorf("%w: staffID=%d startTime=%s", ErrDuplicateReservation, staffID, req.StartTime)
		}
		uc.logger.Error("create_reservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncReservationCreated()
	}
	uc.logger.Info("create_reservation: reservation %d created for staff %d at %s %s",
		created.ID, created.StaffID, created.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ID:                created.ID,
		StoreID:           created.StoreID,
		ReservationTypeID: created.ReservationTypeID,
		StaffID:           created.StaffID,
		UserEmail:         created.UserEmail,
		Date:              created.Date,
		StartTime:         created.StartTime,
		EndTime:           created.EndTime,
		Status:            string(created.Status),
		CreatedAt:         created.CreatedAt,
	}, nil
}

// freeCandidates keeps staff without an active reservation overlapping
// [startAt, endAt). Order follows the staff listing (ascending id).
func freeCandidates(staffs []*domain.Staff, existing []*domain.Reservation, startAt, endAt time.Time) []*domain.Staff {
	busy := make(map[int64]bool)
	for _, res := range existing {
		if !res.IsActive() {
			continue
		}
		if domain.Overlaps(res.StartTime, res.EndTime, startAt, endAt) {
			busy[res.StaffID] = true
		}
	}

	candidates := make([]*domain.Staff, 0, len(staffs))
	for _, s := range staffs {
		if !busy[s.ID] {
			candidates = append(candidates, s)
		}
	}
	return candidates
}

func (uc *UseCase) pickStaff(ctx context.Context, candidates []*domain.Staff) (int64, error) {
	ids := make([]int64, 0, len(candidates))
	for _, s := range candidates {
		ids = append(ids, s.ID)
	}

	counts, err := uc.reservationRepo.CountActiveByStaffIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("create_reservation: failed to count reservations: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Candidates come sorted by id, so the first strict improvement wins
	// and ties keep the lowest id.
	best := candidates[0].ID
	bestCount := counts[best]
	for _, s := range candidates[1:] {
		if counts[s.ID] < bestCount {
			best = s.ID
			bestCount = counts[s.ID]
		}
	}
	return best, nil
}
