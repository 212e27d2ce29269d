package model

import (
	amenityModel "glade/internal/domains/amenity/model"
	"glade/shared"
	"glade/shared/model"
)

const (
	TableName      = "cottages"
	EntityName     = "cottage"
	LinkTableName  = "cottage_amenities"
	LinkEntityName = "cottage_amenity"

	FieldID            = "id"
	FieldName          = "name"
	FieldSlug          = "slug"
	FieldCategory      = "category"
	FieldImage         = "image"
	FieldBaseCapacity  = "base_capacity"
	FieldBasePrice     = "base_price"
	FieldBaseExpenses  = "base_expenses"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldExpenses      = "expenses"

	FieldCottageID = "cottage_id"
	FieldAmenityID = "amenity_id"

	CategoryStandard = "standard"
	CategoryLuxury   = "luxury"
)

type Cottage struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Slug          string  `db:"slug"`
	Category      string  `db:"category"`
	Image         string  `db:"image"`
	BaseCapacity  int     `db:"base_capacity"`
	BasePrice     float64 `db:"base_price"`
	BaseExpenses  float64 `db:"base_expenses"`
	Capacity      int     `db:"capacity"`
	PricePerNight float64 `db:"price_per_night"`
	Expenses      float64 `db:"expenses"`
	model.Metadata
}

// CottageAmenity is a row of the cottage-to-amenity link table.
type CottageAmenity struct {
	CottageID string `db:"cottage_id"`
	AmenityID string `db:"amenity_id"`
}

// RecomputeTotals refreshes the derived capacity, nightly price and expenses
// by summing every linked amenity's contribution onto the base values.
// Callers must persist the result whenever the amenity set changes.
func (c *Cottage) RecomputeTotals(amenities []amenityModel.Amenity) {
	capacity := c.BaseCapacity
	price := c.BasePrice
	expenses := c.BaseExpenses

	for _, amenity := range amenities {
		capacity += amenity.AdditionalCapacity
		price += amenity.Price
		expenses += amenity.Expenses
	}

	c.Capacity = capacity
	c.PricePerNight = shared.Round2(price)
	c.Expenses = shared.Round2(expenses)
}
