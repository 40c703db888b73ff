package verification_test

import (
	"context"
	"encoding/json"
	"stayadmin/config"
	kafkaMocks "stayadmin/infras/kafka/mocks"
	otelMocks "stayadmin/infras/otel/mocks"
	"stayadmin/internal/consumers/verification"
	bookingMocks "stayadmin/internal/domains/booking/mocks"
	"stayadmin/internal/domains/slip/model"
	"stayadmin/internal/domains/slip/model/dto"
	"stayadmin/shared/failure"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const slipID = "5b0c0f5e-8a4a-4d8b-9a53-2f3c8d1e6b11"

func newConsumer(t *testing.T) (*verification.Consumer, *bookingMocks.MockBookingService, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	booking := bookingMocks.NewMockBookingService(ctrl)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "stayadmin"
	cfg.Kafka.Topics.VerificationResults = "slip.verification.results"

	return verification.New(cfg, client, booking, otelMocks.NewOtel()), booking, client
}

func message(t *testing.T, value any) kafkaGo.Message {
	t.Helper()

	raw, err := json.Marshal(value)
	require.NoError(t, err)

	return kafkaGo.Message{Topic: "slip.verification.results", Value: raw}
}

func TestHandle_RecordsResult(t *testing.T) {
	consumer, booking, _ := newConsumer(t)
	checkedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	booking.EXPECT().RecordAutomatedResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event dto.VerificationResultEvent) error {
			assert.Equal(t, slipID, event.SlipID)
			assert.Equal(t, model.AutomatedVerified, event.AutomatedStatus())
			assert.True(t, checkedAt.Equal(event.CheckedAt))

			return nil
		})

	err := consumer.Handle(context.Background(), message(t, map[string]any{
		"slip_id":    slipID,
		"status":     "verified",
		"checked_at": checkedAt,
	}))

	assert.NoError(t, err)
}

func TestHandle_DefaultsCheckedAt(t *testing.T) {
	consumer, booking, _ := newConsumer(t)

	booking.EXPECT().RecordAutomatedResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event dto.VerificationResultEvent) error {
			assert.False(t, event.CheckedAt.IsZero())

			return nil
		})

	err := consumer.Handle(context.Background(), message(t, map[string]any{"slip_id": slipID, "status": "failed"}))

	assert.NoError(t, err)
}

func TestHandle_DropsMalformedPayloads(t *testing.T) {
	consumer, _, _ := newConsumer(t)

	t.Run("not json", func(t *testing.T) {
		err := consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("{")})

		assert.NoError(t, err)
	})

	t.Run("missing slip id", func(t *testing.T) {
		err := consumer.Handle(context.Background(), message(t, map[string]any{"status": "verified"}))

		assert.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		err := consumer.Handle(context.Background(), message(t, map[string]any{"slip_id": slipID, "status": "bogus"}))

		assert.NoError(t, err)
	})

	t.Run("pending is not a result", func(t *testing.T) {
		err := consumer.Handle(context.Background(), message(t, map[string]any{"slip_id": slipID, "status": "pending"}))

		assert.NoError(t, err)
	})
}

func TestHandle_StorageErrorIsRetried(t *testing.T) {
	consumer, booking, _ := newConsumer(t)

	booking.EXPECT().RecordAutomatedResult(gomock.Any(), gomock.Any()).Return(failure.StorageError(assert.AnError))

	err := consumer.Handle(context.Background(), message(t, map[string]any{"slip_id": slipID, "status": "verified"}))

	assert.True(t, failure.IsKind(err, failure.KindStorage))
}

func TestRun_ConsumesConfiguredTopic(t *testing.T) {
	consumer, _, client := newConsumer(t)

	client.EXPECT().Consume(gomock.Any(), "stayadmin", "slip.verification.results", gomock.Any())

	consumer.Run(context.Background())
}
