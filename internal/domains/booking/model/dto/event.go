package dto

import (
	"glade/internal/domains/booking/model"
	"glade/shared/constant"
	"glade/shared/timezone"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// BookingEvent is the payload published to the booking topic on every
// booking mutation.
type BookingEvent struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"booking_id"`
	CottageID  string  `json:"cottage_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Price      float64 `json:"price"`
	OccurredAt string  `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		CottageID:  booking.CottageID,
		CheckIn:    booking.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:   booking.CheckOut.Format(constant.DateOnlyFormat),
		Price:      booking.Price,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}
}
