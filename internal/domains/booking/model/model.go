package model

import (
	"time"

	"glade/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCottageID     = "cottage_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldPrice         = "price"
	FieldIsConfirmed   = "is_confirmed"
)

type Booking struct {
	ID            string    `db:"id"`
	CottageID     string    `db:"cottage_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	Price         float64   `db:"price"`
	IsConfirmed   bool      `db:"is_confirmed"`
	model.Metadata
}
