package model

import (
	"time"

	"glade/shared/timezone"
)

// DateRange is a half-open interval during which a cottage has no booking.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// AvailableRanges walks bookings in ascending check-in order and emits
// every free gap between today and yearEnd. The cursor only ever moves
// forward, so overlapping bookings collapse into a single occupied
// stretch. Input not sorted by check-in can produce a wrong gap list;
// callers are expected to sort before calling.
//
// Every endpoint is normalized to date-only before comparison: today and
// yearEnd come in at app-location midnight while booking dates loaded
// from postgres sit at UTC midnight, and the cursor must not shift by
// the UTC offset between them.
func AvailableRanges(today time.Time, bookings []Booking, yearEnd time.Time) []DateRange {
	cursor := timezone.DateOnly(today)
	yearEnd = timezone.DateOnly(yearEnd)
	gaps := []DateRange{}

	for _, booking := range bookings {
		checkIn := timezone.DateOnly(booking.CheckIn)
		checkOut := timezone.DateOnly(booking.CheckOut)

		if cursor.Before(checkIn) {
			gaps = append(gaps, DateRange{From: cursor, To: checkIn})
		}

		if checkOut.After(cursor) {
			cursor = checkOut
		}
	}

	if !cursor.After(yearEnd) {
		gaps = append(gaps, DateRange{From: cursor, To: yearEnd})
	}

	return gaps
}
