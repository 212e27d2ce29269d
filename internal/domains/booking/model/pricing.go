package model

import (
	"time"

	"glade/shared"
	"glade/shared/failure"
	"glade/shared/timezone"
)

const offSeasonDiscountRate = 0.20

var ErrCheckOutNotAfterCheckIn = failure.BadRequestFromString("check-out date must be strictly after check-in date")

// offSeason reports whether the month carries the 20% discount.
func offSeason(month time.Month) bool {
	return month == time.November || month == time.March
}

// CalculatePrice derives a booking price from the stay length and the
// cottage's current nightly price. The discount looks only at the
// calendar month of each endpoint date: a stay that merely passes
// through November or March without starting or ending there pays full
// price.
//
// Nights is the calendar-day difference between the endpoints. Both are
// normalized to date-only first so the count stays correct when the
// inputs carry different locations or a DST transition sits inside the
// stay.
func CalculatePrice(checkIn, checkOut time.Time, pricePerNight float64) (float64, error) {
	checkIn = timezone.DateOnly(checkIn)
	checkOut = timezone.DateOnly(checkOut)

	nights := int(checkOut.Sub(checkIn) / (24 * time.Hour))
	if nights <= 0 {
		return 0, ErrCheckOutNotAfterCheckIn
	}

	price := pricePerNight * float64(nights)

	if offSeason(checkIn.Month()) || offSeason(checkOut.Month()) {
		price -= price * offSeasonDiscountRate
	}

	return shared.Round2(price), nil
}
