package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bhRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	rtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservationtype"
	storeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/store"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase computes bookable slots for the availability horizon.
type UseCase struct {
	storeRepo       StoreRepository
	typeRepo        ReservationTypeRepository
	staffRepo       StaffRepository
	hoursRepo       BusinessHoursRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	storeRepo StoreRepository,
	typeRepo ReservationTypeRepository,
	staffRepo StaffRepository,
	hoursRepo BusinessHoursRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeRepo:       storeRepo,
		typeRepo:        typeRepo,
		staffRepo:       staffRepo,
		hoursRepo:       hoursRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute returns the bookable slots for the next AvailabilityHorizonDays
// consecutive days starting today.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: store=%d, type=%d", req.StoreID, req.ReservationTypeID)

	// 1. validate input
	if req.StoreID <= 0 {
		return nil, fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}
	if req.ReservationTypeID <= 0 {
		return nil, fmt.Errorf("%w: reservationTypeID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. both referenced entities must exist
	rtype, err := uc.typeRepo.GetByID(ctx, req.ReservationTypeID)
	if err != nil {
		if errors.Is(err, rtRepo.ErrTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: reservation type id=%d not found", req.ReservationTypeID)
			return nil, ErrReservationTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get reservation type id=%d: %v", req.ReservationTypeID, err)
		return nil, fmt.Errorf("%w: failed to get reservation type: %v", ErrInternal, err)
	}

	if _, err := uc.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("GetAvailableSlots: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 3. without at least one qualified staff member there is no capacity
	staffs, err := uc.staffRepo.ListQualified(ctx, req.StoreID, req.ReservationTypeID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list qualified staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list qualified staff: %v", ErrInternal, err)
	}
	if len(staffs) == 0 {
		uc.logger.Warn("GetAvailableSlots: no qualified staff for store=%d, type=%d", req.StoreID, req.ReservationTypeID)
		return nil, ErrNoQualifiedStaff
	}

	// 4. walk the horizon day by day; anchors must match how the
	// committer persists reservation instants
	today := domain.Day(now)
	days := make([]DaySlots, 0, domain.AvailabilityHorizonDays)

	for i := 0; i < domain.AvailabilityHorizonDays; i++ {
		date := today.AddDate(0, 0, i)

		slots, err := uc.slotsForDate(ctx, req.StoreID, rtype, staffs, date, now, i == 0)
		if err != nil {
			return nil, err
		}
		days = append(days, DaySlots{Date: date, Slots: slots})
	}

	uc.logger.Info("GetAvailableSlots: computed %d days for store=%d, type=%d",
		len(days), req.StoreID, req.ReservationTypeID)

	return &Response{Days: days}, nil
}

// slotsForDate produces the open slots of one day. A missing hours row, a
// closed flag, or an absent bound all yield an empty list, never an error.
func (uc *UseCase) slotsForDate(
	ctx context.Context,
	storeID int64,
	rtype *domain.ReservationType,
	staffs []*domain.Staff,
	date time.Time,
	now time.Time,
	isToday bool,
) ([]types.TimeString, error) {
	hours, err := uc.hoursRepo.GetByStoreAndWeekday(ctx, storeID, int(date.Weekday()))
	if err != nil && !errors.Is(err, bhRepo.ErrHoursNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get business hours for store=%d weekday=%d: %v",
			storeID, int(date.Weekday()), err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if hours == nil || !hours.IsOpen() {
		return []types.TimeString{}, nil
	}

	slots := domain.GenerateSlots(hours.StartTime, hours.EndTime, rtype.DefaultMinutes)
	if isToday {
		slots = trimPastSlots(slots, now)
	}
	if len(slots) == 0 {
		return []types.TimeString{}, nil
	}

	// All reservations of the day count, whatever their type: a staff
	// member's time is store-wide.
	reservations, err := uc.reservationRepo.ListByStoreAndDate(ctx, storeID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations for store=%d date=%s: %v",
			storeID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	return filterByCapacity(slots, rtype.DefaultMinutes, date, staffs, reservations), nil
}
