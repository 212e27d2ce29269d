package dto

import (
	"github.com/google/uuid"

	"glade/internal/domains/amenity/model"
	"glade/shared"
	gDto "glade/shared/dto"
	gModel "glade/shared/model"
	"glade/shared/timezone"
)

type CreateAmenityRequest struct {
	Name               string  `json:"name"                validate:"required,max=100"`
	AdditionalCapacity int     `json:"additional_capacity" validate:"omitempty,min=0"`
	Price              float64 `json:"price"               validate:"omitempty,min=0"`
	Expenses           float64 `json:"expenses"            validate:"omitempty,min=0"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:                 uuid.NewString(),
		Name:               c.Name,
		AdditionalCapacity: c.AdditionalCapacity,
		Price:              c.Price,
		Expenses:           c.Expenses,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name               string   `db:"name"                json:"name"                validate:"omitempty,max=100"`
	AdditionalCapacity *int     `db:"additional_capacity" json:"additional_capacity" validate:"omitempty,min=0"`
	Price              *float64 `db:"price"               json:"price"               validate:"omitempty,min=0"`
	Expenses           *float64 `db:"expenses"            json:"expenses"            validate:"omitempty,min=0"`
}

type AmenityResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	AdditionalCapacity int     `json:"additional_capacity"`
	Price              float64 `json:"price"`
	Expenses           float64 `json:"expenses"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.AdditionalCapacity = model.AdditionalCapacity
	r.Price = model.Price
	r.Expenses = model.Expenses
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
