package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"glade/config"
	"glade/infras/otel"
	"glade/infras/s3"
	amenityModel "glade/internal/domains/amenity/model"
	amenityDto "glade/internal/domains/amenity/model/dto"
	amenityRepository "glade/internal/domains/amenity/repository"
	"glade/internal/domains/cottage/model"
	"glade/internal/domains/cottage/model/dto"
	"glade/internal/domains/cottage/repository"
	"glade/shared"
	"glade/shared/cache"
	"glade/shared/constant"
	gDto "glade/shared/dto"
	"glade/shared/failure"
	"glade/shared/timezone"
)

const (
	cacheGetCottage    = "cottage:get"
	cacheGetAllCottage = "cottage:gets"
	cacheCountCottage  = "cottage:count"
)

type Cottage interface {
	Create(ctx context.Context, req dto.CreateCottageRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCottagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CottageResponse, error)
	Update(ctx context.Context, req dto.UpdateCottageRequest, id string) error
	SetAmenities(ctx context.Context, req dto.SetAmenitiesRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Cottage
	amenityRepo amenityRepository.Amenity
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Cottage, amenityRepo amenityRepository.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Cottage {
	return &serviceImpl{
		repo:        repo,
		amenityRepo: amenityRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCottageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	amenities, err := s.resolveAmenities(ctx, req.AmenityIDs)
	if err != nil {
		return err
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := s.buildObjectName(req.Image.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	cottage := req.ToModel(user, imageURL)
	cottage.RecomputeTotals(amenities)

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.InsertTx(ctx, sqltx, cottage); err != nil {
		_ = sqltx.Rollback()
		s.cleanupUpload(ctx, bucketName, uploadedObjectName)

		return s.mapSlugConflict(err)
	}

	if err = s.repo.ReplaceAmenityLinksTx(ctx, sqltx, cottage.ID, req.AmenityIDs); err != nil {
		_ = sqltx.Rollback()
		s.cleanupUpload(ctx, bucketName, uploadedObjectName)

		return err
	}

	if err = sqltx.Commit(); err != nil {
		s.cleanupUpload(ctx, bucketName, uploadedObjectName)

		return fmt.Errorf("failed to commit cottage creation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCottage)
		shared.InvalidateCaches(c, s.cache, cacheCountCottage)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCottagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCottage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cottages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cottages")

		return res, fmt.Errorf("failed to count cottages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cottages")

		return res, fmt.Errorf("failed to get cottages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cottages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCottage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cottage count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cottages")

		return res, fmt.Errorf("failed to count cottages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cottage count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CottageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCottage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cottage")

		return res, nil
	}

	cottage, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cottage")

		return res, fmt.Errorf("failed to get cottage: %w", err)
	}

	if cottage.ID == constant.Empty {
		return res, failure.NotFound("cottage not found") // nolint:wrapcheck
	}

	amenities, err := s.repo.ListAmenities(ctx, cottage.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list cottage amenities")

		return res, err
	}

	res.FromModel(cottage)

	res.Amenities = make([]amenityDto.AmenityResponse, len(amenities))
	for i, amenity := range amenities {
		res.Amenities[i].FromModel(amenity)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cottage to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCottageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentCottage, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check cottage existence")

		return err
	}

	if currentCottage.ID == constant.Empty {
		log.Error().Msg("cottage not found")

		return failure.NotFound("cottage not found")
	}

	return s.updateInternal(ctx, req, currentCottage, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateCottageRequest, currentCottage model.Cottage, user string, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := s.buildObjectName(req.Image.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if req.Name != constant.Empty {
		updatedFields[model.FieldSlug] = shared.Slugify(req.Name)
	}

	// Base-value edits shift the derived totals, so refresh them against
	// the current amenity set before persisting.
	if req.BaseCapacity != nil || req.BasePrice != nil || req.BaseExpenses != nil {
		next := currentCottage
		if req.BaseCapacity != nil {
			next.BaseCapacity = *req.BaseCapacity
		}
		if req.BasePrice != nil {
			next.BasePrice = *req.BasePrice
		}
		if req.BaseExpenses != nil {
			next.BaseExpenses = *req.BaseExpenses
		}

		amenities, err := s.repo.ListAmenities(ctx, currentCottage.ID)
		if err != nil {
			return err
		}

		next.RecomputeTotals(amenities)

		updatedFields[model.FieldCapacity] = next.Capacity
		updatedFields[model.FieldPricePerNight] = next.PricePerNight
		updatedFields[model.FieldExpenses] = next.Expenses
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update cottage")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return s.mapSlugConflict(err)
	}

	if imageURL != constant.Empty && currentCottage.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentCottage.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.invalidate(ctx, currentCottage.ID)

	return nil
}

// SetAmenities replaces the cottage's amenity link set and synchronously
// recomputes the derived totals in the same transaction.
func (s *serviceImpl) SetAmenities(ctx context.Context, req dto.SetAmenitiesRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	cottage, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cottage")

		return err
	}

	if cottage.ID == constant.Empty {
		log.Error().Msg("cottage not found")

		return failure.NotFound("cottage not found")
	}

	amenities, err := s.resolveAmenities(ctx, req.AmenityIDs)
	if err != nil {
		return err
	}

	cottage.RecomputeTotals(amenities)

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.ReplaceAmenityLinksTx(ctx, sqltx, cottage.ID, req.AmenityIDs); err != nil {
		_ = sqltx.Rollback()

		return err
	}

	updatedFields := map[string]any{
		model.FieldCapacity:      cottage.Capacity,
		model.FieldPricePerNight: cottage.PricePerNight,
		model.FieldExpenses:      cottage.Expenses,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, filter); err != nil {
		_ = sqltx.Rollback()

		return err
	}

	if err = sqltx.Commit(); err != nil {
		return fmt.Errorf("failed to commit amenity set change: %w", err)
	}

	s.invalidate(ctx, cottage.ID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cottage exists")

		return fmt.Errorf("failed to check if cottage exists: %w", err)
	}

	if !exist {
		log.Error().Msg("cottage not found")

		return failure.NotFound("cottage not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete cottage")

		return fmt.Errorf("failed to delete cottage: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// resolveAmenities loads every referenced amenity and rejects the request
// when any id does not exist.
func (s *serviceImpl) resolveAmenities(ctx context.Context, amenityIDs []string) ([]amenityModel.Amenity, error) {
	if len(amenityIDs) == 0 {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    amenityModel.FieldID,
				Value:    amenityIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    amenityModel.TableName,
			},
		},
	}

	amenities, err := s.amenityRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve amenities")

		return nil, fmt.Errorf("failed to resolve amenities: %w", err)
	}

	if len(amenities) != len(amenityIDs) {
		return nil, failure.BadRequestFromString("one or more amenities do not exist") // nolint:wrapcheck
	}

	return amenities, nil
}

func (s *serviceImpl) mapSlugConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict("cottage with the same slug already exists") // nolint:wrapcheck
	}

	return err
}

func (s *serviceImpl) buildObjectName(originalName string) string {
	filename := uuid.NewString()

	parts := strings.Split(originalName, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	return filename
}

func (s *serviceImpl) cleanupUpload(ctx context.Context, bucketName, objectName string) {
	if objectName != constant.Empty {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCottage, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete cottage cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCottage)
		shared.InvalidateCaches(c, s.cache, cacheCountCottage)
	}()
}
