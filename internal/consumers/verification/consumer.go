// Package verification feeds automated slip check results into the booking workflow.
package verification

import (
	"context"
	"stayadmin/config"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/booking/service"
	"stayadmin/internal/domains/slip/model/dto"
	"stayadmin/shared/constant"
	"stayadmin/shared/timezone"
	"stayadmin/shared/validator"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Consumer struct {
	cfg     *config.Config
	kafka   kafka.Client
	booking service.Booking
	otel    otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, booking service.Booking, otel otel.Otel) *Consumer {
	return &Consumer{
		cfg:     cfg,
		kafka:   kafka,
		booking: booking,
		otel:    otel,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) {
	topic := c.cfg.Kafka.Topics.VerificationResults

	log.Info().Str("topic", topic).Msg("Starting verification result consumer.")

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, c.Handle)
}

// Handle records one checker result. Malformed payloads are dropped since a retry cannot fix them.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleVerificationResult")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"topic":  message.Topic,
		"offset": message.Offset,
	})

	event, err := kafka.DecodeKafkaMessage[dto.VerificationResultEvent](message)
	if err != nil {
		log.Warn().Err(err).Int64("offset", message.Offset).Msg("dropping undecodable verification result")

		return nil
	}

	if err := validator.ValidateStruct(&event); err != nil {
		log.Warn().Err(err).Str("slip_id", event.SlipID).Msg("dropping invalid verification result")

		return nil
	}

	if event.CheckedAt.IsZero() {
		event.CheckedAt = timezone.Now()
	}

	return c.booking.RecordAutomatedResult(ctx, event) // nolint:wrapcheck
}
