package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayadmin/config"
	"stayadmin/infras/otel/mocks"
	s3Mocks "stayadmin/infras/s3/mocks"
	slipMocks "stayadmin/internal/domains/slip/mocks"
	"stayadmin/internal/domains/slip/model"
	"stayadmin/internal/domains/slip/model/dto"
	"stayadmin/internal/domains/slip/reconciler"
	"stayadmin/internal/domains/slip/service"
	"stayadmin/shared/failure"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Slip.Directory = "slips"
	cfg.Slip.MaxSizeMB = 1
	cfg.Slip.PresignExpireMin = 15

	return cfg
}

func newUpload(contentType string, size int64) dto.UploadSlipRequest {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return dto.UploadSlipRequest{
		Slip:     &multipart.FileHeader{Filename: "transfer.jpg", Header: header, Size: size},
		SlipFile: memFile{bytes.NewReader([]byte("image"))},
	}
}

func TestSlipService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := slipMocks.NewMockSlip(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, newConfig(), mocks.NewOtel(), mockS3)

	tests := []struct {
		name      string
		req       dto.UploadSlipRequest
		setupMock func()
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "jpeg upload",
			req:  newUpload("image/jpeg", 512),
			setupMock: func() {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), "slips", gomock.Cond(func(name any) bool {
						s, _ := name.(string)
						return len(s) == 40 && s[36:] == ".jpg"
					}), "image/jpeg", gomock.Any()).
					Return("slips/abc.jpg", nil)

				mockS3.EXPECT().
					PresignGetURL(gomock.Any(), "slips/abc.jpg", 15*time.Minute).
					Return("https://signed.example/slips/abc.jpg", nil)
			},
		},
		{
			name:      "unsupported type",
			req:       newUpload("application/pdf", 512),
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name:      "too large",
			req:       newUpload("image/png", 2<<20),
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "storage failure",
			req:  newUpload("image/png", 512),
			setupMock: func() {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), "image/png", gomock.Any()).
					Return("", errors.New("bucket unavailable"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Upload(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "slips/abc.jpg", res.ImageReference)
			assert.Equal(t, "https://signed.example/slips/abc.jpg", res.ViewURL)
		})
	}
}

func TestSlipService_ViewURL_FallsBackToPublicURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	svc := service.New(slipMocks.NewMockSlip(ctrl), newConfig(), mocks.NewOtel(), mockS3)

	mockS3.EXPECT().PresignGetURL(gomock.Any(), "slips/a.jpg", gomock.Any()).Return("", errors.New("no credentials"))
	mockS3.EXPECT().PublicURL("slips/a.jpg").Return("https://cdn.example/slips/a.jpg")

	assert.Equal(t, "https://cdn.example/slips/a.jpg", svc.ViewURL(context.Background(), "slips/a.jpg"))
	assert.Empty(t, svc.ViewURL(context.Background(), ""))
}

func TestSlipService_ListForBooking_PrimaryFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := slipMocks.NewMockSlip(ctrl)
	svc := service.New(mockRepo, newConfig(), mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Slip{
			{ID: "s0", Position: 0},
			{ID: "s1", Position: 1},
			{ID: "s2", Position: 2, IsPrimary: true},
		}, nil)

	slips, err := svc.ListForBooking(context.Background(), "booking-1")
	require.NoError(t, err)

	ids := []string{}
	for _, s := range slips {
		ids = append(ids, s.ID)
	}

	assert.Equal(t, []string{"s2", "s0", "s1"}, ids)
}

func TestSlipService_ResolveTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := slipMocks.NewMockSlip(ctrl)
	svc := service.New(mockRepo, newConfig(), mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	tests := []struct {
		name      string
		slipID    string
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name:   "primary slip",
			slipID: "",
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), true, gomock.Any()).
					Return(model.Slip{ID: "s1", IsPrimary: true}, true, nil)
			},
		},
		{
			name:   "booking without slips",
			slipID: "",
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), true, gomock.Any()).
					Return(model.Slip{}, false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:   "slip of another booking",
			slipID: "s9",
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), true, gomock.Any()).
					Return(model.Slip{}, false, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:   "storage failure",
			slipID: "s1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), true, gomock.Any()).
					Return(model.Slip{}, false, errors.New("connection reset"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			slip, err := svc.ResolveTx(context.Background(), nil, "booking-1", tt.slipID)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "s1", slip.ID)
		})
	}
}

func TestSlipService_AttachTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := slipMocks.NewMockSlip(ctrl)
	svc := service.New(mockRepo, newConfig(), mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	req := dto.AttachSlipRequest{ImageReference: "slips/a.jpg", UploadedBy: "guest-1"}

	t.Run("first slip is primary", func(t *testing.T) {
		mockRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Slip{}, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		slip, err := svc.AttachTx(context.Background(), nil, "booking-1", req)
		require.NoError(t, err)
		assert.True(t, slip.IsPrimary)
		assert.Equal(t, 0, slip.Position)
		assert.Equal(t, model.AutomatedPending, slip.AutomatedStatus)
		assert.Equal(t, model.AdminPending, slip.AdminStatus)
		assert.NotEmpty(t, slip.ID)
	})

	t.Run("later slips append", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Slip{{ID: "s0"}, {ID: "s1"}}, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		slip, err := svc.AttachTx(context.Background(), nil, "booking-1", req)
		require.NoError(t, err)
		assert.False(t, slip.IsPrimary)
		assert.Equal(t, 2, slip.Position)
	})

	t.Run("insert failure", func(t *testing.T) {
		mockRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

		_, err := svc.AttachTx(context.Background(), nil, "booking-1", req)
		assert.Error(t, err)
	})
}

func TestSlipService_SetPrimaryTx_ClearsBeforeSetting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := slipMocks.NewMockSlip(ctrl)
	svc := service.New(mockRepo, newConfig(), mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	tr := reconciler.Transition{
		Slip:     model.Slip{ID: "s2", IsPrimary: true},
		Updates:  map[string]any{model.FieldIsPrimary: true},
		OldValue: "s1",
		NewValue: "s2",
	}

	gomock.InOrder(
		mockRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), map[string]any{model.FieldIsPrimary: false}, gomock.Any()).Return(nil),
		mockRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), tr.Updates, gomock.Any()).Return(nil),
	)

	require.NoError(t, svc.SetPrimaryTx(context.Background(), nil, tr))
}
