package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"glade/internal/domains/booking/model"
)

func TestAvailableRanges(t *testing.T) {
	today := date(2024, time.January, 1)
	yearEnd := date(2024, time.December, 31)

	tests := []struct {
		name     string
		bookings []model.Booking
		want     []model.DateRange
	}{
		{
			name:     "no bookings leaves the whole year open",
			bookings: []model.Booking{},
			want: []model.DateRange{
				{From: today, To: yearEnd},
			},
		},
		{
			name: "single booking splits the year in two gaps",
			bookings: []model.Booking{
				{CheckIn: date(2024, time.March, 1), CheckOut: date(2024, time.March, 10)},
			},
			want: []model.DateRange{
				{From: today, To: date(2024, time.March, 1)},
				{From: date(2024, time.March, 10), To: yearEnd},
			},
		},
		{
			name: "back to back bookings produce no gap between them",
			bookings: []model.Booking{
				{CheckIn: date(2024, time.March, 1), CheckOut: date(2024, time.March, 10)},
				{CheckIn: date(2024, time.March, 10), CheckOut: date(2024, time.March, 20)},
			},
			want: []model.DateRange{
				{From: today, To: date(2024, time.March, 1)},
				{From: date(2024, time.March, 20), To: yearEnd},
			},
		},
		{
			name: "overlapping bookings only advance the cursor",
			bookings: []model.Booking{
				{CheckIn: date(2024, time.March, 1), CheckOut: date(2024, time.March, 15)},
				{CheckIn: date(2024, time.March, 10), CheckOut: date(2024, time.March, 12)},
			},
			want: []model.DateRange{
				{From: today, To: date(2024, time.March, 1)},
				{From: date(2024, time.March, 15), To: yearEnd},
			},
		},
		{
			name: "booking already in progress eats the leading gap",
			bookings: []model.Booking{
				{CheckIn: date(2023, time.December, 20), CheckOut: date(2024, time.February, 1)},
			},
			want: []model.DateRange{
				{From: date(2024, time.February, 1), To: yearEnd},
			},
		},
		{
			name: "booking running past year end leaves no trailing gap",
			bookings: []model.Booking{
				{CheckIn: date(2024, time.December, 1), CheckOut: date(2025, time.January, 5)},
			},
			want: []model.DateRange{
				{From: today, To: date(2024, time.December, 1)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.AvailableRanges(today, tt.bookings, yearEnd)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableRangesNormalizesLocations(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	today := time.Date(2024, time.January, 1, 0, 0, 0, 0, jakarta)
	yearEnd := time.Date(2024, time.December, 31, 0, 0, 0, 0, jakarta)

	t.Run("booking checking in today leaves no degenerate leading gap", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2024, time.January, 1), CheckOut: date(2024, time.January, 5)},
		}

		got := model.AvailableRanges(today, bookings, yearEnd)

		want := []model.DateRange{
			{From: date(2024, time.January, 5), To: date(2024, time.December, 31)},
		}
		assert.Equal(t, want, got)
	})

	t.Run("booking checking out on the last day suppresses the trailing gap edge", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2024, time.December, 20), CheckOut: date(2024, time.December, 31)},
		}

		got := model.AvailableRanges(today, bookings, yearEnd)

		want := []model.DateRange{
			{From: date(2024, time.January, 1), To: date(2024, time.December, 20)},
			{From: date(2024, time.December, 31), To: date(2024, time.December, 31)},
		}
		assert.Equal(t, want, got)
	})
}
