package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glade/internal/domains/cottage/model/dto"
	"glade/shared/validator"
)

func TestSetAmenitiesRequestValidation(t *testing.T) {
	tests := []struct {
		name       string
		amenityIDs []string
		wantErr    bool
		wantMsg    string
	}{
		{
			name:       "distinct ids pass",
			amenityIDs: []string{"0b9171a8-7b37-4a14-8c29-2f8e9a1d5c11", "4f3f0a02-6f56-43a0-9c07-d6a3c2b9e822"},
		},
		{
			name:       "empty set passes",
			amenityIDs: []string{},
		},
		{
			name:       "duplicate ids are rejected as duplicates",
			amenityIDs: []string{"0b9171a8-7b37-4a14-8c29-2f8e9a1d5c11", "0b9171a8-7b37-4a14-8c29-2f8e9a1d5c11"},
			wantErr:    true,
			wantMsg:    "must not contain duplicate values",
		},
		{
			name:       "non-uuid id is rejected",
			amenityIDs: []string{"not-a-uuid"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SetAmenitiesRequest{AmenityIDs: tt.amenityIDs}

			err := validator.ValidateStruct(&req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
