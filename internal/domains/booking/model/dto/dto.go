package dto

import (
	"time"

	"github.com/google/uuid"

	"glade/internal/domains/booking/model"
	"glade/shared"
	"glade/shared/constant"
	gDto "glade/shared/dto"
	"glade/shared/failure"
	gModel "glade/shared/model"
	"glade/shared/timezone"
)

type CreateBookingRequest struct {
	CottageID     string `json:"cottage_id"     validate:"required,uuid"`
	CheckIn       string `json:"check_in"       validate:"required,datetime=2006-01-02"`
	CheckOut      string `json:"check_out"      validate:"required,datetime=2006-01-02"`
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=100"`
	IsConfirmed   *bool  `json:"is_confirmed"   validate:"omitempty"`
}

func (c *CreateBookingRequest) DateRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a valid date") //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a valid date") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, model.ErrCheckOutNotAfterCheckIn //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, price float64) model.Booking {
	isConfirmed := false
	if c.IsConfirmed != nil {
		isConfirmed = *c.IsConfirmed
	}

	return model.Booking{
		ID:            uuid.NewString(),
		CottageID:     c.CottageID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		Price:         price,
		IsConfirmed:   isConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CheckIn       string `json:"check_in"       validate:"omitempty,datetime=2006-01-02"`
	CheckOut      string `json:"check_out"      validate:"omitempty,datetime=2006-01-02"`
	CustomerName  string `db:"customer_name"    json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `db:"customer_email"   json:"customer_email" validate:"omitempty,email,max=100"`
	IsConfirmed   *bool  `db:"is_confirmed"     json:"is_confirmed"   validate:"omitempty"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CottageID     string  `json:"cottage_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	Price         float64 `json:"price"`
	IsConfirmed   bool    `json:"is_confirmed"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CottageID = model.CottageID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.Price = model.Price
	r.IsConfirmed = model.IsConfirmed
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
