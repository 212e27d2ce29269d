package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	amenityDto "glade/internal/domains/amenity/model/dto"
	"glade/internal/domains/cottage/model"
	"glade/shared"
	gDto "glade/shared/dto"
	gModel "glade/shared/model"
	"glade/shared/timezone"
)

type CreateCottageRequest struct {
	Name         string                `json:"name"          validate:"required,max=100"`
	Category     string                `json:"category"      validate:"omitempty,oneof=standard luxury"`
	BaseCapacity int                   `json:"base_capacity" validate:"omitempty,min=0"`
	BasePrice    float64               `json:"base_price"    validate:"omitempty,min=0"`
	BaseExpenses float64               `json:"base_expenses" validate:"omitempty,min=0"`
	AmenityIDs   []string              `json:"amenity_ids"   validate:"omitempty,unique,dive,uuid"`
	Image        *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateCottageRequest) ToModel(user string, imageURL string) model.Cottage {
	category := c.Category
	if category == "" {
		category = model.CategoryStandard
	}

	return model.Cottage{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Slug:         shared.Slugify(c.Name),
		Category:     category,
		Image:        imageURL,
		BaseCapacity: c.BaseCapacity,
		BasePrice:    c.BasePrice,
		BaseExpenses: c.BaseExpenses,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCottageRequest struct {
	Name         string                `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Category     string                `db:"category"      json:"category"      validate:"omitempty,oneof=standard luxury"`
	BaseCapacity *int                  `db:"base_capacity" json:"base_capacity" validate:"omitempty,min=0"`
	BasePrice    *float64              `db:"base_price"    json:"base_price"    validate:"omitempty,min=0"`
	BaseExpenses *float64              `db:"base_expenses" json:"base_expenses" validate:"omitempty,min=0"`
	Image        *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

type SetAmenitiesRequest struct {
	AmenityIDs []string `json:"amenity_ids" validate:"omitempty,unique,dive,uuid"`
}

type CottageResponse struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	Slug          string                       `json:"slug"`
	Category      string                       `json:"category"`
	Image         string                       `json:"image"`
	BaseCapacity  int                          `json:"base_capacity"`
	BasePrice     float64                      `json:"base_price"`
	BaseExpenses  float64                      `json:"base_expenses"`
	Capacity      int                          `json:"capacity"`
	PricePerNight float64                      `json:"price_per_night"`
	Expenses      float64                      `json:"expenses"`
	Amenities     []amenityDto.AmenityResponse `json:"amenities"`
	gDto.Metadata
}

func (r *CottageResponse) FromModel(model model.Cottage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Category = model.Category
	r.Image = model.Image
	r.BaseCapacity = model.BaseCapacity
	r.BasePrice = model.BasePrice
	r.BaseExpenses = model.BaseExpenses
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Expenses = model.Expenses
	r.Amenities = []amenityDto.AmenityResponse{}
	r.Metadata.FromModel(model.Metadata)
}

type GetCottagesResponse struct {
	Cottages  []CottageResponse `json:"cottages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCottagesResponse) FromModels(models []model.Cottage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cottages = make([]CottageResponse, len(models))
	for i, mod := range models {
		r.Cottages[i].FromModel(mod)
	}
}
