package report

import (
	"net/http"

	"glade/infras/otel"
	"glade/internal/domains/report/model/dto"
	"glade/internal/domains/report/service"
	"glade/shared/constant"
	"glade/shared/validator"
	"glade/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetCottageAvailability)
	})
	router.Get("/statistics", handler.GetStatistics)
}

// CheckAvailability checks whether a cottage is free for a date range.
// @Summary Check cottage availability
// @Description Check whether a cottage has no overlapping booking for the requested date range.
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [post]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(writer, http.StatusOK, availability)
}

// GetCottageAvailability lists the free date ranges of a cottage until year end.
// @Summary Get cottage availability until year end
// @Description List the free date ranges of a cottage from today until December 31 of the current year.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Cottage ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available date ranges"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{id} [get]
func (handler *Handler) GetCottageAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCottageAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	availability, err := handler.service.AvailableUntilYearEnd(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cottage availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cottage availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetStatistics aggregates income, expenses and profit across the fleet.
// @Summary Get aggregate statistics
// @Description Aggregate total booking income, total cottage expenses and net profit across all cottages.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatisticsResponse] "Aggregate statistics"
// @Failure 500 {object} response.Error
// @Router /v1/statistics [get]
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	statistics, err := handler.service.Statistics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get statistics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Statistics retrieved successfully")

	response.WithJSON(w, http.StatusOK, statistics)
}
