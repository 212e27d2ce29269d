package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"glade/config"
	"glade/infras/otel/mocks"
	s3Mocks "glade/infras/s3/mocks"
	amenityMocks "glade/internal/domains/amenity/mocks"
	amenityModel "glade/internal/domains/amenity/model"
	cottageMocks "glade/internal/domains/cottage/mocks"
	"glade/internal/domains/cottage/model"
	"glade/internal/domains/cottage/model/dto"
	"glade/internal/domains/cottage/service"
	cacheMocks "glade/shared/cache/mocks"
	gDto "glade/shared/dto"
	"glade/shared/failure"
)

type cottageServiceMocks struct {
	repo        *cottageMocks.MockCottage
	amenityRepo *amenityMocks.MockAmenity
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
}

func newCottageService(t *testing.T) (service.Cottage, cottageServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := cottageServiceMocks{
		repo:        cottageMocks.NewMockCottage(ctrl),
		amenityRepo: amenityMocks.NewMockAmenity(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.amenityRepo, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func TestCottageService_Get(t *testing.T) {
	cottage := model.Cottage{
		ID:            "cottage-id",
		Name:          "Lakeside Cabin",
		Slug:          "lakeside-cabin",
		Capacity:      4,
		PricePerNight: 150,
	}

	amenities := []amenityModel.Amenity{
		{ID: "amenity-id", Name: "Sauna", AdditionalCapacity: 2},
	}

	t.Run("cache miss loads the cottage with its amenities", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cottage, nil)

		m.repo.EXPECT().
			ListAmenities(gomock.Any(), "cottage-id").
			Return(amenities, nil)

		res, err := svc.Get(context.Background(), "cottage-id")

		assert.NoError(t, err)
		assert.Equal(t, "lakeside-cabin", res.Slug)
		assert.Len(t, res.Amenities, 1)
		assert.Equal(t, "Sauna", res.Amenities[0].Name)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				res, _ := dest.(*dto.CottageResponse)
				res.ID = "cottage-id"
				res.Name = "Lakeside Cabin"

				return nil
			})

		res, err := svc.Get(context.Background(), "cottage-id")

		assert.NoError(t, err)
		assert.Equal(t, "Lakeside Cabin", res.Name)
	})

	t.Run("cottage not found", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Cottage{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)

		var fail *failure.Failure
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, 404, fail.Code)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Cottage{}, errors.New("database error"))

		_, err := svc.Get(context.Background(), "cottage-id")

		assert.Error(t, err)
	})
}

func TestCottageService_GetAll(t *testing.T) {
	svc, m := newCottageService(t)

	cottages := []model.Cottage{
		{ID: "c1", Name: "Lakeside Cabin"},
		{ID: "c2", Name: "Forest Hut"},
	}

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cottages, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Cottages, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestCottageService_Update(t *testing.T) {
	current := model.Cottage{
		ID:           "cottage-id",
		Name:         "Lakeside Cabin",
		BaseCapacity: 4,
		BasePrice:    100,
		BaseExpenses: 20,
	}

	t.Run("base price change refreshes the derived totals", func(t *testing.T) {
		svc, m := newCottageService(t)

		newBasePrice := 150.0

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		m.repo.EXPECT().
			ListAmenities(gomock.Any(), "cottage-id").
			Return([]amenityModel.Amenity{
				{ID: "amenity-id", AdditionalCapacity: 2, Price: 25, Expenses: 5},
			}, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 6, fields[model.FieldCapacity])
				assert.Equal(t, 175.0, fields[model.FieldPricePerNight])
				assert.Equal(t, 25.0, fields[model.FieldExpenses])

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateCottageRequest{BasePrice: &newBasePrice}, "cottage-id")

		assert.NoError(t, err)
	})

	t.Run("name change refreshes the slug without touching totals", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "forest-hut", fields[model.FieldSlug])

				_, hasCapacity := fields[model.FieldCapacity]
				assert.False(t, hasCapacity)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateCottageRequest{Name: "Forest Hut"}, "cottage-id")

		assert.NoError(t, err)
	})

	t.Run("cottage not found", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Cottage{}, nil)

		err := svc.Update(context.Background(), dto.UpdateCottageRequest{Name: "Forest Hut"}, "missing-id")

		assert.Error(t, err)
	})
}

func TestCottageService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "cottage-id")

		assert.NoError(t, err)
	})

	t.Run("cottage not found", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

func TestCottageService_SetAmenities(t *testing.T) {
	t.Run("cottage not found", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Cottage{}, nil)

		err := svc.SetAmenities(context.Background(), dto.SetAmenitiesRequest{}, "missing-id")

		assert.Error(t, err)
	})

	t.Run("unknown amenity id is rejected", func(t *testing.T) {
		svc, m := newCottageService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Cottage{ID: "cottage-id"}, nil)

		m.amenityRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]amenityModel.Amenity{}, nil)

		req := dto.SetAmenitiesRequest{AmenityIDs: []string{"missing-amenity-id"}}
		err := svc.SetAmenities(context.Background(), req, "cottage-id")

		assert.Error(t, err)

		var fail *failure.Failure
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, 400, fail.Code)
	})
}
