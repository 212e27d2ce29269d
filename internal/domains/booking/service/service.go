package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"glade/config"
	"glade/infras/kafka"
	"glade/infras/otel"
	"glade/internal/domains/booking/model"
	"glade/internal/domains/booking/model/dto"
	"glade/internal/domains/booking/repository"
	cottageModel "glade/internal/domains/cottage/model"
	cottageRepository "glade/internal/domains/cottage/repository"
	"glade/shared"
	"glade/shared/cache"
	"glade/shared/constant"
	gDto "glade/shared/dto"
	"glade/shared/failure"
	"glade/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	cottageRepo cottageRepository.Cottage
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Booking, cottageRepo cottageRepository.Cottage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:        repo,
		cottageRepo: cottageRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.DateRange()
	if err != nil {
		return err
	}

	cottage, err := s.getCottage(ctx, req.CottageID)
	if err != nil {
		return err
	}

	price, err := model.CalculatePrice(checkIn, checkOut, cottage.PricePerNight)
	if err != nil {
		return err
	}

	booking := req.ToModel(user, checkIn, checkOut, price)

	if err = s.repo.Insert(ctx, booking); err != nil {
		return err
	}

	s.publishEvent(ctx, dto.EventBookingCreated, booking)
	s.invalidate(ctx, booking.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentBooking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return err
	}

	if currentBooking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found")
	}

	checkIn := currentBooking.CheckIn
	if req.CheckIn != constant.Empty {
		checkIn, err = timezone.Parse(constant.DateOnlyFormat, req.CheckIn)
		if err != nil {
			return failure.BadRequestFromString("check_in must be a valid date") //nolint:wrapcheck
		}
	}

	checkOut := currentBooking.CheckOut
	if req.CheckOut != constant.Empty {
		checkOut, err = timezone.Parse(constant.DateOnlyFormat, req.CheckOut)
		if err != nil {
			return failure.BadRequestFromString("check_out must be a valid date") //nolint:wrapcheck
		}
	}

	if !timezone.DateOnly(checkOut).After(timezone.DateOnly(checkIn)) {
		return model.ErrCheckOutNotAfterCheckIn //nolint:wrapcheck
	}

	cottage, err := s.getCottage(ctx, currentBooking.CottageID)
	if err != nil {
		return err
	}

	// The price always tracks the cottage's current nightly price, so
	// every save recomputes it even when the dates did not change.
	price, err := model.CalculatePrice(checkIn, checkOut, cottage.PricePerNight)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldCheckIn] = checkIn
	updatedFields[model.FieldCheckOut] = checkOut
	updatedFields[model.FieldPrice] = price

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	currentBooking.CheckIn = checkIn
	currentBooking.CheckOut = checkOut
	currentBooking.Price = price

	s.publishEvent(ctx, dto.EventBookingUpdated, currentBooking)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return err
	}

	if booking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publishEvent(ctx, dto.EventBookingDeleted, booking)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getCottage(ctx context.Context, cottageID string) (cottageModel.Cottage, error) {
	cottage, err := s.cottageRepo.Get(ctx, shared.FilterByID(cottageID, cottageModel.FieldID, cottageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cottage")

		return cottage, fmt.Errorf("failed to get cottage: %w", err)
	}

	if cottage.ID == constant.Empty {
		return cottage, failure.NotFound("cottage not found") // nolint:wrapcheck
	}

	return cottage, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	event := dto.NewBookingEvent(eventType, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
