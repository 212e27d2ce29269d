package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"glade/config"
	"glade/infras/otel/mocks"
	bookingMocks "glade/internal/domains/booking/mocks"
	bookingModel "glade/internal/domains/booking/model"
	cottageMocks "glade/internal/domains/cottage/mocks"
	cottageModel "glade/internal/domains/cottage/model"
	"glade/internal/domains/report/model/dto"
	"glade/internal/domains/report/service"
	"glade/shared/failure"
	"glade/shared/timezone"
)

type reportServiceMocks struct {
	bookingRepo *bookingMocks.MockBooking
	cottageRepo *cottageMocks.MockCottage
}

func newReportService(t *testing.T) (service.Report, reportServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := reportServiceMocks{
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cottageRepo: cottageMocks.NewMockCottage(ctrl),
	}

	svc := service.New(m.bookingRepo, m.cottageRepo, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func TestReportService_CheckAvailability(t *testing.T) {
	req := dto.CheckAvailabilityRequest{
		CottageID: "cottage-id",
		CheckIn:   "2024-06-01",
		CheckOut:  "2024-06-05",
	}

	tests := []struct {
		name          string
		req           dto.CheckAvailabilityRequest
		setupMock     func(m reportServiceMocks)
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "no overlapping booking means available",
			req:  req,
			setupMock: func(m reportServiceMocks) {
				m.cottageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantAvailable: true,
		},
		{
			name: "overlapping booking means unavailable",
			req:  req,
			setupMock: func(m reportServiceMocks) {
				m.cottageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantAvailable: false,
		},
		{
			name: "unknown cottage",
			req:  req,
			setupMock: func(m reportServiceMocks) {
				m.cottageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "unparseable date is rejected before any lookup",
			req: dto.CheckAvailabilityRequest{
				CottageID: "cottage-id",
				CheckIn:   "not-a-date",
				CheckOut:  "2024-06-05",
			},
			setupMock: func(m reportServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "check-out not after check-in is rejected",
			req: dto.CheckAvailabilityRequest{
				CottageID: "cottage-id",
				CheckIn:   "2024-06-05",
				CheckOut:  "2024-06-05",
			},
			setupMock: func(m reportServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "overlap query error",
			req:  req,
			setupMock: func(m reportServiceMocks) {
				m.cottageRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReportService(t)
			tt.setupMock(m)

			res, err := svc.CheckAvailability(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.CottageID, res.CottageID)
			assert.Equal(t, tt.wantAvailable, res.Available)
		})
	}
}

func TestReportService_AvailableUntilYearEnd(t *testing.T) {
	t.Run("no bookings leaves a single range to year end", func(t *testing.T) {
		svc, m := newReportService(t)

		m.cottageRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.AvailableUntilYearEnd(context.Background(), "cottage-id")

		assert.NoError(t, err)
		assert.Equal(t, "cottage-id", res.CottageID)
		assert.Len(t, res.Ranges, 1)

		today := timezone.Today()
		assert.Equal(t, today.Format("2006-01-02"), res.Ranges[0].From)
		assert.Equal(t, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location()).Format("2006-01-02"), res.Ranges[0].To)
	})

	t.Run("a future booking splits the year into gaps", func(t *testing.T) {
		svc, m := newReportService(t)

		today := timezone.Today()
		yearEnd := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())

		if today.AddDate(0, 0, 12).After(yearEnd) {
			t.Skip("booking window does not fit in the current year")
		}

		bookings := []bookingModel.Booking{
			{
				ID:       "booking-id",
				CheckIn:  today.AddDate(0, 0, 10),
				CheckOut: today.AddDate(0, 0, 12),
			},
		}

		m.cottageRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		res, err := svc.AvailableUntilYearEnd(context.Background(), "cottage-id")

		assert.NoError(t, err)
		assert.Len(t, res.Ranges, 2)
		assert.Equal(t, today.Format("2006-01-02"), res.Ranges[0].From)
		assert.Equal(t, today.AddDate(0, 0, 10).Format("2006-01-02"), res.Ranges[0].To)
		assert.Equal(t, today.AddDate(0, 0, 12).Format("2006-01-02"), res.Ranges[1].From)
	})

	t.Run("unknown cottage", func(t *testing.T) {
		svc, m := newReportService(t)

		m.cottageRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.AvailableUntilYearEnd(context.Background(), "missing-id")

		assert.Error(t, err)

		var fail *failure.Failure
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, 404, fail.Code)
	})
}

func TestReportService_Statistics(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m reportServiceMocks)
		wantErr   bool
		want      dto.StatisticsResponse
	}{
		{
			name: "aggregates all bookings and cottages",
			setupMock: func(m reportServiceMocks) {
				m.bookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						{ID: "b1", Price: 100},
						{ID: "b2", Price: 250.50},
					}, nil)

				m.cottageRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cottageModel.Cottage{
						{ID: "c1", Expenses: 40},
						{ID: "c2", Expenses: 10.25},
					}, nil)
			},
			want: dto.StatisticsResponse{
				TotalIncome:   350.50,
				TotalExpenses: 50.25,
				NetProfit:     300.25,
			},
		},
		{
			name: "empty store reports zeroes",
			setupMock: func(m reportServiceMocks) {
				m.bookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)

				m.cottageRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cottageModel.Cottage{}, nil)
			},
			want: dto.StatisticsResponse{},
		},
		{
			name: "booking query error",
			setupMock: func(m reportServiceMocks) {
				m.bookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "cottage query error",
			setupMock: func(m reportServiceMocks) {
				m.bookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)

				m.cottageRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReportService(t)
			tt.setupMock(m)

			res, err := svc.Statistics(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
