package cottage

import (
	"net/http"

	"glade/infras/otel"
	"glade/internal/domains/cottage/model"
	"glade/internal/domains/cottage/model/dto"
	"glade/internal/domains/cottage/service"
	"glade/shared"
	"glade/shared/constant"
	gDto "glade/shared/dto"
	"glade/shared/validator"
	"glade/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cottage
	otel    otel.Otel
}

func New(service service.Cottage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cottages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCottage)
		routerGroup.Get("/", handler.GetCottages)
		routerGroup.Get("/{id}", handler.GetCottageByID)
		routerGroup.Patch("/{id}", handler.UpdateCottage)
		routerGroup.Put("/{id}/amenities", handler.SetCottageAmenities)
		routerGroup.Delete("/{id}", handler.DeleteCottage)
	})
}

// CreateCottage handles the creation of a new cottage.
// @Summary Create a new cottage
// @Description Create a new cottage with the provided details.
// @Tags Cottage
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Cottage name"
// @Param category formData string false "Cottage category (standard or luxury)"
// @Param base_capacity formData integer false "Base guest capacity"
// @Param base_price formData number false "Base price per night"
// @Param base_expenses formData number false "Base running expenses"
// @Param amenity_ids formData []string false "Attached amenity IDs"
// @Param image formData file false "Cottage image"
// @Success 201 {object} response.Message "Cottage created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cottages [post]
// @Security BearerAuth
func (handler *Handler) CreateCottage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCottage")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateCottageRequest{
		Name:       request.FormValue("name"),
		Category:   request.FormValue("category"),
		AmenityIDs: request.Form["amenity_ids"],
	}

	if capStr := request.FormValue("base_capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.BaseCapacity = c
		}
	}

	if priceStr := request.FormValue("base_price"); priceStr != "" {
		if p, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.BasePrice = p
		}
	}

	if expensesStr := request.FormValue("base_expenses"); expensesStr != "" {
		if e, err := shared.ConvertStringToFloat(expensesStr); err == nil {
			req.BaseExpenses = e
		}
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cottage")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cottage created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Cottage created successfully")
}

// GetCottages retrieves all cottages based on query parameters.
// @Summary Get all cottages
// @Description Retrieve all cottages with optional filtering and pagination.
// @Tags Cottage
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param slug query string false "Filter by slug"
// @Param category query string false "Filter by category (standard, luxury)"
// @Success 200 {object} response.Data[dto.CottageResponse] "List of cottages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cottages [get]
func (handler *Handler) GetCottages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCottages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if slug := r.URL.Query().Get(model.FieldSlug); slug != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSlug,
			Operator: gDto.FilterOperatorEq,
			Value:    slug,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	cottages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cottages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cottages retrieved successfully")

	response.WithJSON(w, http.StatusOK, cottages)
}

// GetCottageByID retrieves a cottage by its ID.
// @Summary Get a cottage by ID
// @Description Retrieve a cottage with its amenities by its unique identifier.
// @Tags Cottage
// @Accept json
// @Produce json
// @Param id path string true "Cottage ID"
// @Success 200 {object} response.Data[dto.CottageResponse] "Cottage details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cottages/{id} [get]
func (handler *Handler) GetCottageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCottageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	cottage, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cottage by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cottage retrieved successfully")

	response.WithJSON(w, http.StatusOK, cottage)
}

// UpdateCottage updates an existing cottage by its ID.
// @Summary Update a cottage by ID
// @Description Update the details of an existing cottage. Derived capacity, price and expenses are recomputed when a base field changes.
// @Tags Cottage
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Cottage ID"
// @Param name formData string false "Cottage name"
// @Param category formData string false "Cottage category (standard or luxury)"
// @Param base_capacity formData integer false "Base guest capacity"
// @Param base_price formData number false "Base price per night"
// @Param base_expenses formData number false "Base running expenses"
// @Param image formData file false "Cottage image"
// @Success 200 {object} response.Message "Cottage updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cottages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCottage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCottage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateCottageRequest{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
	}

	if capStr := r.FormValue("base_capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.BaseCapacity = &c
		}
	}

	if priceStr := r.FormValue("base_price"); priceStr != "" {
		if p, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.BasePrice = &p
		}
	}

	if expensesStr := r.FormValue("base_expenses"); expensesStr != "" {
		if e, err := shared.ConvertStringToFloat(expensesStr); err == nil {
			req.BaseExpenses = &e
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cottage")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cottage updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Cottage updated successfully")
}

// SetCottageAmenities replaces the amenity set attached to a cottage.
// @Summary Replace cottage amenities
// @Description Replace the full amenity set of a cottage and recompute its derived capacity, price and expenses.
// @Tags Cottage
// @Accept json
// @Produce json
// @Param id path string true "Cottage ID"
// @Param request body dto.SetAmenitiesRequest true "Set Amenities Request"
// @Success 200 {object} response.Message "Cottage amenities updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cottages/{id}/amenities [put]
// @Security BearerAuth
func (handler *Handler) SetCottageAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetCottageAmenities")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetAmenitiesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetAmenities(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set cottage amenities")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cottage amenities updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Cottage amenities updated successfully")
}

// DeleteCottage deletes a cottage by its ID.
// @Summary Delete a cottage by ID
// @Description Delete a cottage using its unique identifier.
// @Tags Cottage
// @Accept json
// @Produce json
// @Param id path string true "Cottage ID"
// @Success 200 {object} response.Message "Cottage deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cottages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCottage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCottage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete cottage")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cottage deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Cottage deleted successfully")
}
