package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"glade/internal/domains/booking/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name          string
		checkIn       time.Time
		checkOut      time.Time
		pricePerNight float64
		want          float64
		wantErr       error
	}{
		{
			name:          "two nights at full price",
			checkIn:       date(2024, time.June, 1),
			checkOut:      date(2024, time.June, 3),
			pricePerNight: 500.50,
			want:          1001.00,
		},
		{
			name:          "single night",
			checkIn:       date(2024, time.July, 10),
			checkOut:      date(2024, time.July, 11),
			pricePerNight: 120,
			want:          120,
		},
		{
			name:          "november check-in gets the off-season discount",
			checkIn:       date(2024, time.November, 1),
			checkOut:      date(2024, time.November, 3),
			pricePerNight: 100,
			want:          160,
		},
		{
			name:          "march check-out gets the off-season discount",
			checkIn:       date(2024, time.February, 27),
			checkOut:      date(2024, time.March, 2),
			pricePerNight: 100,
			want:          320,
		},
		{
			name:          "stay ending in november is discounted even when it starts earlier",
			checkIn:       date(2024, time.October, 30),
			checkOut:      date(2024, time.November, 2),
			pricePerNight: 200,
			want:          480,
		},
		{
			name:          "april to may stays at full price",
			checkIn:       date(2024, time.April, 28),
			checkOut:      date(2024, time.May, 2),
			pricePerNight: 100,
			want:          400,
		},
		{
			name:          "discounted total rounds to cents",
			checkIn:       date(2024, time.November, 1),
			checkOut:      date(2024, time.November, 2),
			pricePerNight: 500.50,
			want:          400.40,
		},
		{
			name:          "check-out equal to check-in is rejected",
			checkIn:       date(2024, time.June, 1),
			checkOut:      date(2024, time.June, 1),
			pricePerNight: 100,
			wantErr:       model.ErrCheckOutNotAfterCheckIn,
		},
		{
			name:          "check-out before check-in is rejected",
			checkIn:       date(2024, time.June, 5),
			checkOut:      date(2024, time.June, 1),
			pricePerNight: 100,
			wantErr:       model.ErrCheckOutNotAfterCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.CalculatePrice(tt.checkIn, tt.checkOut, tt.pricePerNight)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePriceCountsCalendarDays(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	assert.NoError(t, err)

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	t.Run("one night across the spring DST transition is still one night", func(t *testing.T) {
		checkIn := time.Date(2024, time.March, 31, 0, 0, 0, 0, warsaw)
		checkOut := time.Date(2024, time.April, 1, 0, 0, 0, 0, warsaw)

		got, err := model.CalculatePrice(checkIn, checkOut, 100)

		assert.NoError(t, err)
		assert.Equal(t, 80.0, got)
	})

	t.Run("endpoints in different locations count whole days", func(t *testing.T) {
		checkIn := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2024, time.November, 3, 0, 0, 0, 0, jakarta)

		got, err := model.CalculatePrice(checkIn, checkOut, 100)

		assert.NoError(t, err)
		assert.Equal(t, 160.0, got)
	})

	t.Run("same calendar date in different locations is rejected", func(t *testing.T) {
		checkIn := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2024, time.June, 1, 0, 0, 0, 0, jakarta)

		_, err := model.CalculatePrice(checkIn, checkOut, 100)

		assert.ErrorIs(t, err, model.ErrCheckOutNotAfterCheckIn)
	})
}
