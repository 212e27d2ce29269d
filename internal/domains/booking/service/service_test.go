package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"glade/config"
	kafkaMocks "glade/infras/kafka/mocks"
	"glade/infras/otel/mocks"
	bookingMocks "glade/internal/domains/booking/mocks"
	"glade/internal/domains/booking/model"
	"glade/internal/domains/booking/model/dto"
	"glade/internal/domains/booking/service"
	cottageMocks "glade/internal/domains/cottage/mocks"
	cottageModel "glade/internal/domains/cottage/model"
	cacheMocks "glade/shared/cache/mocks"
	"glade/shared/constant"
	"glade/shared/failure"
)

type bookingServiceMocks struct {
	repo        *bookingMocks.MockBooking
	cottageRepo *cottageMocks.MockCottage
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingServiceMocks{
		repo:        bookingMocks.NewMockBooking(ctrl),
		cottageRepo: cottageMocks.NewMockCottage(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "bookings"

	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.cottageRepo, cfg, m.cache, mocks.NewOtel(), m.kafka)

	return svc, m
}

func TestBookingService_Create(t *testing.T) {
	cottage := cottageModel.Cottage{
		ID:            "cottage-id",
		Name:          "Lakeside Cabin",
		PricePerNight: 100,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantPrice float64
	}{
		{
			name: "successful creation computes the price",
			req: dto.CreateBookingRequest{
				CottageID:     "cottage-id",
				CheckIn:       "2024-06-01",
				CheckOut:      "2024-06-03",
				CustomerName:  "Alice Smith",
				CustomerEmail: "alice@example.com",
			},
			setupMock: func(m bookingServiceMocks) {
				m.cottageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cottage, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 200.0, booking.Price)
						assert.Equal(t, "cottage-id", booking.CottageID)
						assert.False(t, booking.IsConfirmed)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "off-season dates are discounted",
			req: dto.CreateBookingRequest{
				CottageID:     "cottage-id",
				CheckIn:       "2024-11-01",
				CheckOut:      "2024-11-03",
				CustomerName:  "Alice Smith",
				CustomerEmail: "alice@example.com",
			},
			setupMock: func(m bookingServiceMocks) {
				m.cottageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cottage, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 160.0, booking.Price)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown cottage is rejected",
			req: dto.CreateBookingRequest{
				CottageID:     "missing-id",
				CheckIn:       "2024-06-01",
				CheckOut:      "2024-06-03",
				CustomerName:  "Alice Smith",
				CustomerEmail: "alice@example.com",
			},
			setupMock: func(m bookingServiceMocks) {
				m.cottageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cottageModel.Cottage{}, nil)
			},
			wantErr: true,
		},
		{
			name: "check-out before check-in is rejected before any lookup",
			req: dto.CreateBookingRequest{
				CottageID:     "cottage-id",
				CheckIn:       "2024-06-03",
				CheckOut:      "2024-06-01",
				CustomerName:  "Alice Smith",
				CustomerEmail: "alice@example.com",
			},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "unparseable date is rejected before any lookup",
			req: dto.CreateBookingRequest{
				CottageID:     "cottage-id",
				CheckIn:       "not-a-date",
				CheckOut:      "2024-06-03",
				CustomerName:  "Alice Smith",
				CustomerEmail: "alice@example.com",
			},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				CottageID:     "cottage-id",
				CheckIn:       "2024-06-01",
				CheckOut:      "2024-06-03",
				CustomerName:  "Alice Smith",
				CustomerEmail: "alice@example.com",
			},
			setupMock: func(m bookingServiceMocks) {
				m.cottageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cottage, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	current := model.Booking{
		ID:        "booking-id",
		CottageID: "cottage-id",
		CheckIn:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		Price:     200,
	}

	cottage := cottageModel.Cottage{
		ID:            "cottage-id",
		PricePerNight: 150,
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
	}{
		{
			name: "price is recomputed even when dates are unchanged",
			req: dto.UpdateBookingRequest{
				CustomerName: "Bob Jones",
			},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				m.cottageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cottage, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 300.0, fields[model.FieldPrice])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "new dates change the number of nights",
			req: dto.UpdateBookingRequest{
				CheckOut: "2024-06-05",
			},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				m.cottageRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cottage, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 600.0, fields[model.FieldPrice])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{CustomerName: "Bob Jones"},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "dates collapsing to zero nights are rejected",
			req: dto.UpdateBookingRequest{
				CheckOut: "2024-06-01",
			},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	booking := model.Booking{
		ID:        "booking-id",
		CottageID: "cottage-id",
	}

	tests := []struct {
		name      string
		setupMock func(m bookingServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")

	assert.Error(t, err)

	var fail *failure.Failure
	assert.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}
