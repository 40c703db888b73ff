// Package integration serves the endpoints the guest reservation flow calls with the service API key.
package integration

import (
	"net/http"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/booking/model/dto"
	"stayadmin/internal/domains/booking/service"
	slipDto "stayadmin/internal/domains/slip/model/dto"
	"stayadmin/shared/constant"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/validator"
	"stayadmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/internal/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterBooking)
		routerGroup.Post("/{id}/slips", handler.AttachSlip)
	})
}

// RegisterBooking records a booking created by the guest reservation flow.
// @Summary Register booking
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body dto.RegisterBookingRequest true "Register Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Registered booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/internal/bookings [post]
// @Security ApiKeyAuth
func (handler *Handler) RegisterBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterBooking")
	defer scope.End()

	req := dto.RegisterBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	actor := gModel.Actor{ID: req.GuestID, Name: req.GuestName}

	res, err := handler.service.Register(ctx, req, actor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking registered with reference " + res.Reference)

	response.WithJSON(w, http.StatusCreated, res)
}

// AttachSlip adds a slip uploaded by the guest to a booking.
// @Summary Attach slip
// @Tags Internal
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body slipDto.AttachSlipRequest true "Attach Slip Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/internal/bookings/{id}/slips [post]
// @Security ApiKeyAuth
func (handler *Handler) AttachSlip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachSlip")
	defer scope.End()

	req := slipDto.AttachSlipRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AttachSlip(ctx, chi.URLParam(r, constant.RequestParamID), req, gModel.Actor{ID: req.UploadedBy})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach slip")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
