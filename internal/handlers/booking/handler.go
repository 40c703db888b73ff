package booking

import (
	"net/http"
	"stayadmin/infras/otel"
	auditDto "stayadmin/internal/domains/audit/model/dto"
	"stayadmin/internal/domains/booking/model/dto"
	"stayadmin/internal/domains/booking/service"
	slipDto "stayadmin/internal/domains/slip/model/dto"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchBookings)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Patch("/{id}", handler.UpdateDetails)
		routerGroup.Post("/{id}/discount", handler.ApplyDiscount)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)

		routerGroup.Post("/{id}/slip/verify", handler.MarkVerified)
		routerGroup.Post("/{id}/slip/needs-action", handler.MarkNeedsAction)
		routerGroup.Post("/{id}/slip/replace", handler.ReplaceSlip)

		routerGroup.Post("/{id}/slips/{slipID}/verify", handler.MarkVerified)
		routerGroup.Post("/{id}/slips/{slipID}/needs-action", handler.MarkNeedsAction)
		routerGroup.Post("/{id}/slips/{slipID}/replace", handler.ReplaceSlip)
		routerGroup.Post("/{id}/slips/{slipID}/primary", handler.SetPrimarySlip)

		routerGroup.Get("/{id}/audit", handler.ListAudit)
		routerGroup.Get("/{id}/audit/verify", handler.VerifyAudit)
		routerGroup.Get("/{id}/audit/export", handler.ExportAudit)
	})
}

// SearchBookings lists bookings for the admin list view.
// @Summary Search bookings
// @Description Search bookings by reference, guest name or email with optional status filter and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.SearchResponse] "Matching bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.Search(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBooking returns the booking detail projection.
// @Summary Get booking detail
// @Description Booking details with every slip and the most recent audit entries.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateDetails edits stay details and pricing.
// @Summary Update booking details
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateDetailsRequest true "Update Details Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDetails")
	defer scope.End()

	req := dto.UpdateDetailsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateDetails(ctx, chi.URLParam(r, constant.RequestParamID), req, gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ApplyDiscount replaces the booking discount.
// @Summary Apply discount
// @Description Sets the discount and recomputes the amount due. A zero amount clears it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ApplyDiscountRequest true "Apply Discount Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/discount [post]
// @Security BearerAuth
func (handler *Handler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyDiscount")
	defer scope.End()

	req := dto.ApplyDiscountRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ApplyDiscount(ctx, chi.URLParam(r, constant.RequestParamID), req, gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply discount")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels a booking after explicit confirmation.
// @Summary Cancel booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelRequest true "Cancel Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Cancelled booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID), req, gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CompleteBooking closes the stay of a confirmed booking.
// @Summary Complete booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Completed booking"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBooking")
	defer scope.End()

	res, err := handler.service.Complete(ctx, chi.URLParam(r, constant.RequestParamID), gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MarkVerified confirms a slip. Without a slip id the primary slip is used.
// @Summary Verify slip
// @Tags Slip
// @Produce json
// @Param id path string true "Booking ID"
// @Param slipID path string false "Slip ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/slip/verify [post]
// @Router /v1/bookings/{id}/slips/{slipID}/verify [post]
// @Security BearerAuth
func (handler *Handler) MarkVerified(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkVerified")
	defer scope.End()

	res, err := handler.service.MarkVerified(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamSlipID), gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify slip")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MarkNeedsAction flags a slip for follow-up with a required note.
// @Summary Flag slip for follow-up
// @Tags Slip
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param slipID path string false "Slip ID"
// @Param request body slipDto.NeedsActionRequest true "Needs Action Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/slip/needs-action [post]
// @Router /v1/bookings/{id}/slips/{slipID}/needs-action [post]
// @Security BearerAuth
func (handler *Handler) MarkNeedsAction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNeedsAction")
	defer scope.End()

	req := slipDto.NeedsActionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.MarkNeedsAction(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamSlipID), req, gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to flag slip")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReplaceSlip swaps the slip image and resets both verification states.
// @Summary Replace slip image
// @Tags Slip
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param slipID path string false "Slip ID"
// @Param request body slipDto.ReplaceSlipRequest true "Replace Slip Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/slip/replace [post]
// @Router /v1/bookings/{id}/slips/{slipID}/replace [post]
// @Security BearerAuth
func (handler *Handler) ReplaceSlip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceSlip")
	defer scope.End()

	req := slipDto.ReplaceSlipRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReplaceSlip(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamSlipID), req, gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace slip")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetPrimarySlip makes another slip of the booking the primary one.
// @Summary Set primary slip
// @Tags Slip
// @Produce json
// @Param id path string true "Booking ID"
// @Param slipID path string true "Slip ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/slips/{slipID}/primary [post]
// @Security BearerAuth
func (handler *Handler) SetPrimarySlip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPrimarySlip")
	defer scope.End()

	res, err := handler.service.SetPrimarySlip(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamSlipID), gModel.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set primary slip")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListAudit returns the full audit history, newest first.
// @Summary List audit history
// @Tags Audit
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]auditDto.EntryResponse] "Audit entries"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/audit [get]
// @Security BearerAuth
func (handler *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListAudit")
	defer scope.End()

	res, err := handler.service.ListAudit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list audit entries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyAudit recomputes the hash chain of the booking history.
// @Summary Verify audit chain
// @Tags Audit
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[auditDto.ChainReportResponse] "Chain report"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/audit/verify [get]
// @Security BearerAuth
func (handler *Handler) VerifyAudit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyAudit")
	defer scope.End()

	res, err := handler.service.VerifyAudit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify audit chain")

		response.WithError(w, err)

		return
	}

	if !res.Valid {
		scope.AddEvent("Audit chain broken for booking " + res.BookingID)
		log.Warn().Str("booking_id", res.BookingID).Str("reason", res.Reason).Msg("audit chain verification failed")
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExportAudit downloads the audit history as an xlsx workbook.
// @Summary Export audit history
// @Tags Audit
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Booking ID"
// @Success 200 {file} file "Audit workbook"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/audit/export [get]
// @Security BearerAuth
func (handler *Handler) ExportAudit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportAudit")
	defer scope.End()

	var export auditDto.Export

	export, err := handler.service.ExportAudit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export audit entries")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, constant.ContentTypeXLSX, export.FileName, export.Content)
}
