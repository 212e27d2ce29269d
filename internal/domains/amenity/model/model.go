package model

import "glade/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID                 = "id"
	FieldName               = "name"
	FieldAdditionalCapacity = "additional_capacity"
	FieldPrice              = "price"
	FieldExpenses           = "expenses"
)

type Amenity struct {
	ID                 string  `db:"id"`
	Name               string  `db:"name"`
	AdditionalCapacity int     `db:"additional_capacity"`
	Price              float64 `db:"price"`
	Expenses           float64 `db:"expenses"`
	model.Metadata
}
