package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"stayadmin/config"
	"stayadmin/infras/kafka"
	kafkaMocks "stayadmin/infras/kafka/mocks"
	"stayadmin/infras/otel/mocks"
	"stayadmin/internal/domains/audit/chain"
	auditMocks "stayadmin/internal/domains/audit/mocks"
	"stayadmin/internal/domains/audit/model"
	"stayadmin/internal/domains/audit/service"
	"stayadmin/shared/failure"
	gModel "stayadmin/shared/model"
)

var admin = gModel.Actor{ID: "admin-1", Name: "Nok"}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Audit.RecentLimit = 3
	cfg.Kafka.Topics.Audit = "booking.audit"

	return cfg
}

func newService(ctrl *gomock.Controller) (service.Audit, *auditMocks.MockAudit, *kafkaMocks.MockClient) {
	mockRepo := auditMocks.NewMockAudit(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	return service.New(mockRepo, newConfig(), mocks.NewOtel(), mockKafka), mockRepo, mockKafka
}

func discountRecord() model.Record {
	return model.Record{
		BookingID: "booking-1",
		Action:    model.ActionDiscountApplied,
		Actor:     admin,
		OldValue:  model.Text("0"),
		NewValue:  model.Text("2000"),
		Note:      model.Text("loyalty adjustment"),
	}
}

func TestAuditService_AppendTx(t *testing.T) {
	t.Run("first entry links to genesis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockRepo, _ := newService(ctrl)

		mockRepo.EXPECT().LastForBookingTx(gomock.Any(), gomock.Any(), "booking-1").Return(model.Entry{}, false, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		entry, err := svc.AppendTx(context.Background(), nil, discountRecord())
		require.NoError(t, err)

		assert.Equal(t, chain.Genesis, entry.PreviousHash)
		assert.Equal(t, chain.Hash(chain.Genesis, entry), entry.Hash)
		assert.Equal(t, "Nok", entry.AdminName)
		assert.Equal(t, "0", *entry.OldValue)
		assert.Equal(t, "2000", *entry.NewValue)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("links to chain head and never goes back in time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockRepo, _ := newService(ctrl)

		head := model.Entry{ID: "head", Hash: "abc123", CreatedAt: time.Now().Add(time.Hour)}

		mockRepo.EXPECT().LastForBookingTx(gomock.Any(), gomock.Any(), "booking-1").Return(head, true, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		entry, err := svc.AppendTx(context.Background(), nil, discountRecord())
		require.NoError(t, err)
		assert.Equal(t, "abc123", entry.PreviousHash)
		assert.False(t, entry.CreatedAt.Before(head.CreatedAt.Truncate(time.Microsecond)))
	})

	t.Run("insert failure is a storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockRepo, _ := newService(ctrl)

		mockRepo.EXPECT().LastForBookingTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Entry{}, false, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := svc.AppendTx(context.Background(), nil, discountRecord())
		require.Error(t, err)
		assert.Equal(t, failure.KindStorage, failure.GetKind(err))
	})

	t.Run("head read failure is a storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockRepo, _ := newService(ctrl)

		mockRepo.EXPECT().LastForBookingTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Entry{}, false, errors.New("timeout"))

		_, err := svc.AppendTx(context.Background(), nil, discountRecord())
		assert.True(t, failure.IsKind(err, failure.KindStorage))
	})

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newService(ctrl)

		rec := discountRecord()
		rec.Action = "slip_deleted"

		_, err := svc.AppendTx(context.Background(), nil, rec)
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newService(ctrl)

		rec := discountRecord()
		rec.Actor = gModel.Actor{}

		_, err := svc.AppendTx(context.Background(), nil, rec)
		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})
}

func TestAuditService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, _ := newService(ctrl)

	mockRepo.EXPECT().
		ListForBooking(gomock.Any(), "booking-1", 3).
		Return([]model.Entry{{ID: "c", Action: model.ActionSlipVerified}, {ID: "b"}, {ID: "a"}}, nil)

	res, err := svc.Recent(context.Background(), "booking-1")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "c", res[0].ID)
	assert.Equal(t, "Slip verified", res[0].ActionBadge.Label)
}

func TestAuditService_ListForBooking_Unbounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, _ := newService(ctrl)

	mockRepo.EXPECT().ListForBooking(gomock.Any(), "booking-1", 0).Return(nil, errors.New("read replica down"))

	_, err := svc.ListForBooking(context.Background(), "booking-1")
	assert.True(t, failure.IsKind(err, failure.KindStorage))
}

func sealedHistory() []model.Entry {
	first := chain.Seal(chain.Genesis, model.Entry{ID: "a", Seq: 1, BookingID: "booking-1", Action: model.ActionBookingCreated, AdminID: "system", CreatedAt: time.Unix(1700000000, 0)})
	second := chain.Seal(first.Hash, model.Entry{ID: "b", Seq: 2, BookingID: "booking-1", Action: model.ActionDiscountApplied, AdminID: "admin-1", AdminName: "Nok", OldValue: model.Text("0"), NewValue: model.Text("2000"), CreatedAt: time.Unix(1700000100, 0)})

	return []model.Entry{first, second}
}

func TestAuditService_VerifyChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, _ := newService(ctrl)

	intact := sealedHistory()
	tampered := sealedHistory()
	tampered[1].NewValue = model.Text("14000")

	mockRepo.EXPECT().ListChain(gomock.Any(), "booking-1").Return(intact, nil)
	mockRepo.EXPECT().ListChain(gomock.Any(), "booking-1").Return(tampered, nil)

	res, err := svc.VerifyChain(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 2, res.Checked)
	assert.Nil(t, res.BrokenID)

	res, err = svc.VerifyChain(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotNil(t, res.BrokenID)
	assert.Equal(t, "b", *res.BrokenID)
}

func TestAuditService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, _ := newService(ctrl)

	mockRepo.EXPECT().ListChain(gomock.Any(), "booking-1").Return(sealedHistory(), nil)

	res, err := svc.Export(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Contains(t, res.FileName, "audit-booking-1-")

	book, err := excelize.OpenReader(bytes.NewReader(res.Content))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Audit")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Seq", rows[0][0])
	assert.Equal(t, "Booking created", rows[1][2])
	assert.Equal(t, "Discount applied", rows[2][2])
	assert.Equal(t, "2000", rows[2][6])
}

func TestAuditService_Publish(t *testing.T) {
	t.Run("sends one message per entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockKafka := newService(ctrl)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "booking.audit", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 2)
				assert.Equal(t, "booking-1", messages[0].Key)
				assert.Equal(t, "booking_created", messages[0].Headers["action"])

				return nil
			})

		svc.Publish(context.Background(), sealedHistory()...)
	})

	t.Run("failures are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockKafka := newService(ctrl)

		mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			svc.Publish(context.Background(), sealedHistory()[0])
		})
	})

	t.Run("nothing to send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newService(ctrl)

		svc.Publish(context.Background())
	})
}
