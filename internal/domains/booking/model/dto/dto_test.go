package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"glade/internal/domains/booking/model"
	"glade/internal/domains/booking/model/dto"
	"glade/shared/failure"
)

func TestCreateBookingRequestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{
			name:     "valid range",
			checkIn:  "2024-06-01",
			checkOut: "2024-06-03",
		},
		{
			name:     "check-out before check-in",
			checkIn:  "2024-06-03",
			checkOut: "2024-06-01",
			wantErr:  model.ErrCheckOutNotAfterCheckIn,
		},
		{
			name:     "check-out equal to check-in",
			checkIn:  "2024-06-01",
			checkOut: "2024-06-01",
			wantErr:  model.ErrCheckOutNotAfterCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{CheckIn: tt.checkIn, CheckOut: tt.checkOut}

			checkIn, checkOut, err := req.DateRange()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, time.June, checkIn.Month())
			assert.True(t, checkOut.After(checkIn))
		})
	}

	t.Run("unparseable check-in", func(t *testing.T) {
		req := dto.CreateBookingRequest{CheckIn: "not-a-date", CheckOut: "2024-06-03"}

		_, _, err := req.DateRange()

		assert.Error(t, err)

		var fail *failure.Failure
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, 400, fail.Code)
	})
}
