package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	otelMocks "stayadmin/infras/otel/mocks"
	"stayadmin/internal/domains/audit/model/dto"
	bookingMocks "stayadmin/internal/domains/booking/mocks"
	bookingDto "stayadmin/internal/domains/booking/model/dto"
	slipDto "stayadmin/internal/domains/slip/model/dto"
	"stayadmin/internal/handlers/booking"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/failure"
	gModel "stayadmin/shared/model"
	"stayadmin/transport/http/response"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var admin = gModel.Actor{ID: "admin-1", Name: "Rina"}

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBookingService) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, admin.ID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserName, admin.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Route("/v1", handler.Router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) failure.Kind {
	t.Helper()

	var body response.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Kind)

	return *body.Kind
}

func TestSearchBookings_PassesQuery(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams) (bookingDto.SearchResponse, error) {
		assert.Equal(t, "BK-1", params.Search)
		assert.Equal(t, "cancelled", params.Status)
		assert.Equal(t, 2, params.Page)

		return bookingDto.SearchResponse{Page: 2}, nil
	})

	rec := serve(router, http.MethodGet, "/v1/bookings?search=BK-1&status=cancelled&page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyDiscount(t *testing.T) {
	t.Run("passes the actor", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ApplyDiscount(gomock.Any(), "b-1", gomock.Any(), admin).
			DoAndReturn(func(_ context.Context, _ string, req bookingDto.ApplyDiscountRequest, _ gModel.Actor) (bookingDto.BookingResponse, error) {
				require.NotNil(t, req.Amount)
				assert.EqualValues(t, 2000, *req.Amount)

				return bookingDto.BookingResponse{ID: "b-1", PaymentAmount: 6000}, nil
			})

		rec := serve(router, http.MethodPost, "/v1/bookings/b-1/discount", `{"amount":2000,"reason":"loyal guest"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body response.Data[bookingDto.BookingResponse]
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.EqualValues(t, 6000, body.Data.PaymentAmount)
	})

	t.Run("blank reason never reaches the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/v1/bookings/b-1/discount", `{"amount":2000,"reason":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, failure.KindValidation, errorKind(t, rec))
	})
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Cancel(gomock.Any(), "b-1", gomock.Any(), admin).Return(bookingDto.BookingResponse{}, failure.AlreadyCancelled)

	rec := serve(router, http.MethodPost, "/v1/bookings/b-1/cancel", `{"reason":"guest request","confirm":true}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, failure.KindAlreadyCancelled, errorKind(t, rec))
}

func TestCompleteBooking(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Complete(gomock.Any(), "b-1", admin).Return(bookingDto.BookingResponse{ID: "b-1", Status: "completed"}, nil)

		rec := serve(router, http.MethodPost, "/v1/bookings/b-1/complete", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"completed"`)
	})

	t.Run("not confirmed", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Complete(gomock.Any(), "b-1", admin).
			Return(bookingDto.BookingResponse{}, failure.InvalidState("cannot complete a cancelled booking"))

		rec := serve(router, http.MethodPost, "/v1/bookings/b-1/complete", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, failure.KindInvalidState, errorKind(t, rec))
	})
}

func TestMarkVerified_ResolvesSlip(t *testing.T) {
	tests := []struct {
		name   string
		target string
		slipID string
	}{
		{name: "primary slip", target: "/v1/bookings/b-1/slip/verify", slipID: ""},
		{name: "explicit slip", target: "/v1/bookings/b-1/slips/s-2/verify", slipID: "s-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().MarkVerified(gomock.Any(), "b-1", tt.slipID, admin).Return(bookingDto.BookingResponse{ID: "b-1"}, nil)

			rec := serve(router, http.MethodPost, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestMarkNeedsAction(t *testing.T) {
	t.Run("note is required", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/v1/bookings/b-1/slip/needs-action", `{"note":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid state maps to conflict", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().MarkNeedsAction(gomock.Any(), "b-1", "s-1", slipDto.NeedsActionRequest{Note: "blurry"}, admin).
			Return(bookingDto.BookingResponse{}, failure.InvalidState("slip is already verified"))

		rec := serve(router, http.MethodPost, "/v1/bookings/b-1/slips/s-1/needs-action", `{"note":"blurry"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, failure.KindInvalidState, errorKind(t, rec))
	})
}

func TestReplaceSlip(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ReplaceSlip(gomock.Any(), "b-1", "", slipDto.ReplaceSlipRequest{ImageReference: "slips/second.jpg"}, admin).
		Return(bookingDto.BookingResponse{ID: "b-1"}, nil)

	rec := serve(router, http.MethodPost, "/v1/bookings/b-1/slip/replace", `{"image_reference":"slips/second.jpg"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetPrimarySlip_StorageError(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().SetPrimarySlip(gomock.Any(), "b-1", "s-2", admin).
		Return(bookingDto.BookingResponse{}, failure.StorageError(assert.AnError))

	rec := serve(router, http.MethodPost, "/v1/bookings/b-1/slips/s-2/primary", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, failure.KindStorage, errorKind(t, rec))
}

func TestGetBooking_NotFound(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(bookingDto.BookingResponse{}, failure.NotFound("booking not found"))

	rec := serve(router, http.MethodGet, "/v1/bookings/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyAudit_ReportsBrokenChain(t *testing.T) {
	router, svc := newRouter(t)

	seq := int64(2)
	svc.EXPECT().VerifyAudit(gomock.Any(), "b-1").Return(dto.ChainReportResponse{BookingID: "b-1", Valid: false, Checked: 2, BrokenSeq: &seq}, nil)

	rec := serve(router, http.MethodGet, "/v1/bookings/b-1/audit/verify", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Data[dto.ChainReportResponse]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Data.Valid)
	assert.EqualValues(t, 2, *body.Data.BrokenSeq)
}

func TestExportAudit_Attachment(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ExportAudit(gomock.Any(), "b-1").Return(dto.Export{FileName: "audit-BK-1.xlsx", Content: []byte("xlsx")}, nil)

	rec := serve(router, http.MethodGet, "/v1/bookings/b-1/audit/export", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="audit-BK-1.xlsx"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "xlsx", rec.Body.String())
}
