package model

import (
	bookingModel "glade/internal/domains/booking/model"
	cottageModel "glade/internal/domains/cottage/model"
	"glade/shared"
)

type Statistics struct {
	TotalIncome   float64
	TotalExpenses float64
	NetProfit     float64
}

// Aggregate sums income over every booking and expenses over every
// cottage in the fleet, whether booked or not.
func Aggregate(bookings []bookingModel.Booking, cottages []cottageModel.Cottage) Statistics {
	var income, expenses float64

	for _, booking := range bookings {
		income += booking.Price
	}

	for _, cottage := range cottages {
		expenses += cottage.Expenses
	}

	return Statistics{
		TotalIncome:   shared.Round2(income),
		TotalExpenses: shared.Round2(expenses),
		NetProfit:     shared.Round2(income - expenses),
	}
}
