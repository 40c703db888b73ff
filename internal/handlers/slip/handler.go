package slip

import (
	"net/http"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/slip/model/dto"
	"stayadmin/internal/domains/slip/service"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	"stayadmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Slip
	otel    otel.Otel
}

func New(service service.Slip, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/slips", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.UploadSlip)
	})
}

// UploadSlip stores a slip image and returns its reference for attach or replace.
// @Summary Upload a slip image
// @Description Upload a JPEG or PNG payment slip. The returned image reference is used by the replace action.
// @Tags Slip
// @Accept multipart/form-data
// @Produce json
// @Param slip formData file true "Slip image"
// @Success 200 {object} response.Data[dto.UploadSlipResponse] "Slip uploaded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slips/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadSlip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadSlip")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormSlip)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slip from form")

		response.WithError(w, failure.BadRequestFromString("slip image is required"))

		return
	}
	defer file.Close()

	req := dto.UploadSlipRequest{
		Slip:     fileHeader,
		SlipFile: file,
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload slip")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Slip uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
