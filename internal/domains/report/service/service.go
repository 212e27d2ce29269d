package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"glade/config"
	"glade/infras/otel"
	bookingModel "glade/internal/domains/booking/model"
	bookingRepository "glade/internal/domains/booking/repository"
	cottageModel "glade/internal/domains/cottage/model"
	cottageRepository "glade/internal/domains/cottage/repository"
	"glade/internal/domains/report/model"
	"glade/internal/domains/report/model/dto"
	"glade/shared"
	"glade/shared/constant"
	gDto "glade/shared/dto"
	"glade/shared/failure"
	"glade/shared/timezone"
)

type Report interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	AvailableUntilYearEnd(ctx context.Context, cottageID string) (dto.AvailabilityResponse, error)
	Statistics(ctx context.Context) (dto.StatisticsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	cottageRepo cottageRepository.Cottage
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, cottageRepo cottageRepository.Cottage, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		cottageRepo: cottageRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// CheckAvailability reports whether the cottage is free of overlapping
// bookings for the requested date range. It is a read-only projection;
// nothing stops two callers from booking the same range afterwards.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.DateRange()
	if err != nil {
		return res, err
	}

	if err = s.ensureCottageExists(ctx, req.CottageID); err != nil {
		return res, err
	}

	overlapFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldCottageID,
				Value:    req.CottageID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "requested_check_out",
				Field:    bookingModel.FieldCheckIn,
				Value:    checkOut,
				Operator: gDto.FilterOperatorLess,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "requested_check_in",
				Field:    bookingModel.FieldCheckOut,
				Value:    checkIn,
				Operator: gDto.FilterOperatorGreater,
				Table:    bookingModel.TableName,
			},
		},
	}

	overlaps, err := s.bookingRepo.Exist(ctx, overlapFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return res, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	res.CottageID = req.CottageID
	res.CheckIn = req.CheckIn
	res.CheckOut = req.CheckOut
	res.Available = !overlaps

	return res, nil
}

// AvailableUntilYearEnd lists every free gap for the cottage from today
// through December 31 of the current year.
func (s *serviceImpl) AvailableUntilYearEnd(ctx context.Context, cottageID string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableUntilYearEnd")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureCottageExists(ctx, cottageID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.FieldCheckIn,
		SortDir: "ASC",
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, shared.FilterByID(cottageID, bookingModel.FieldCottageID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cottage bookings")

		return res, fmt.Errorf("failed to get cottage bookings: %w", err)
	}

	today := timezone.Today()
	yearEnd := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())

	res.FromRanges(cottageID, bookingModel.AvailableRanges(today, bookings, yearEnd))

	return res, nil
}

// Statistics aggregates income, expenses and profit across all stored
// records. Always computed fresh so it never reports stale totals.
func (s *serviceImpl) Statistics(ctx context.Context) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	cottages, err := s.cottageRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get cottages")

		return res, fmt.Errorf("failed to get cottages: %w", err)
	}

	res.FromModel(model.Aggregate(bookings, cottages))

	return res, nil
}

func (s *serviceImpl) ensureCottageExists(ctx context.Context, cottageID string) error {
	exist, err := s.cottageRepo.Exist(ctx, shared.FilterByID(cottageID, cottageModel.FieldID, cottageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check cottage existence")

		return fmt.Errorf("failed to check cottage existence: %w", err)
	}

	if !exist {
		return failure.NotFound("cottage not found") // nolint:wrapcheck
	}

	return nil
}
