package dto

import (
	"time"

	bookingModel "glade/internal/domains/booking/model"
	"glade/internal/domains/report/model"
	"glade/shared/constant"
	"glade/shared/failure"
	"glade/shared/timezone"
)

type CheckAvailabilityRequest struct {
	CottageID string `json:"cottage_id" validate:"required,uuid"`
	CheckIn   string `json:"check_in"   validate:"required,datetime=2006-01-02"`
	CheckOut  string `json:"check_out"  validate:"required,datetime=2006-01-02"`
}

func (c *CheckAvailabilityRequest) DateRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a valid date") //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a valid date") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, bookingModel.ErrCheckOutNotAfterCheckIn //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type CheckAvailabilityResponse struct {
	CottageID string `json:"cottage_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type DateRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type AvailabilityResponse struct {
	CottageID string              `json:"cottage_id"`
	Ranges    []DateRangeResponse `json:"available_ranges"`
}

func (r *AvailabilityResponse) FromRanges(cottageID string, ranges []bookingModel.DateRange) {
	r.CottageID = cottageID

	r.Ranges = make([]DateRangeResponse, len(ranges))
	for i, gap := range ranges {
		r.Ranges[i] = DateRangeResponse{
			From: gap.From.Format(constant.DateOnlyFormat),
			To:   gap.To.Format(constant.DateOnlyFormat),
		}
	}
}

type StatisticsResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

func (r *StatisticsResponse) FromModel(stats model.Statistics) {
	r.TotalIncome = stats.TotalIncome
	r.TotalExpenses = stats.TotalExpenses
	r.NetProfit = stats.NetProfit
}
