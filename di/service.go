package di

import (
	"context"
	"errors"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/internal/consumers/verification"
	"stayadmin/shared/timezone"
	"stayadmin/transport/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Service is everything the app binary runs and tears down.
type Service struct {
	HTTP     *http.HTTP
	Consumer *verification.Consumer
	Kafka    kafka.Client
	Otel     otel.Otel
	DB       *postgres.Connection
}

func provideClock() func() time.Time {
	return timezone.Now
}

// Close releases the long lived clients once the server and consumer have stopped.
func (s *Service) Close(ctx context.Context) error {
	err := errors.Join(
		s.Kafka.Close(),
		s.DB.Close(),
		s.Otel.Shutdown(ctx),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to release service resources")
	}

	return err
}
