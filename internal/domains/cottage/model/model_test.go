package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	amenityModel "glade/internal/domains/amenity/model"
	"glade/internal/domains/cottage/model"
)

func TestCottageRecomputeTotals(t *testing.T) {
	tests := []struct {
		name              string
		cottage           model.Cottage
		amenities         []amenityModel.Amenity
		wantCapacity      int
		wantPricePerNight float64
		wantExpenses      float64
	}{
		{
			name: "no amenities keeps the base values",
			cottage: model.Cottage{
				BaseCapacity: 4,
				BasePrice:    150,
				BaseExpenses: 40,
			},
			amenities:         []amenityModel.Amenity{},
			wantCapacity:      4,
			wantPricePerNight: 150,
			wantExpenses:      40,
		},
		{
			name: "amenity contributions stack on top of the base",
			cottage: model.Cottage{
				BaseCapacity: 4,
				BasePrice:    150,
				BaseExpenses: 40,
			},
			amenities: []amenityModel.Amenity{
				{AdditionalCapacity: 2, Price: 25.50, Expenses: 5.25},
				{AdditionalCapacity: 0, Price: 10, Expenses: 2},
			},
			wantCapacity:      6,
			wantPricePerNight: 185.50,
			wantExpenses:      47.25,
		},
		{
			name: "fractional contributions round to cents",
			cottage: model.Cottage{
				BaseCapacity: 2,
				BasePrice:    99.99,
				BaseExpenses: 10.004,
			},
			amenities: []amenityModel.Amenity{
				{Price: 0.016, Expenses: 0.002},
			},
			wantCapacity:      2,
			wantPricePerNight: 100.01,
			wantExpenses:      10.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cottage := tt.cottage
			cottage.RecomputeTotals(tt.amenities)

			assert.Equal(t, tt.wantCapacity, cottage.Capacity)
			assert.Equal(t, tt.wantPricePerNight, cottage.PricePerNight)
			assert.Equal(t, tt.wantExpenses, cottage.Expenses)
		})
	}
}

func TestCottageRecomputeTotalsIsIdempotent(t *testing.T) {
	cottage := model.Cottage{
		BaseCapacity: 4,
		BasePrice:    150,
		BaseExpenses: 40,
	}
	amenities := []amenityModel.Amenity{
		{AdditionalCapacity: 2, Price: 30, Expenses: 5},
	}

	cottage.RecomputeTotals(amenities)
	first := cottage

	cottage.RecomputeTotals(amenities)

	assert.Equal(t, first, cottage)
}
