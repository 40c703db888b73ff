package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"stayadmin/config"
	"stayadmin/shared/constant"
	"stayadmin/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("slip lookup failed"))

	assert.Contains(t, buf.String(), "slip lookup failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"invalid_level", zerolog.TraceLevel},
		{"", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure(t *testing.T) {
	t.Run("production writes json lines", func(t *testing.T) {
		restore(t)

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.Server.LogLevel = "info"
		cfg.App.Name = "stayadmin"

		var buf bytes.Buffer
		logger.Configure(cfg, &buf)
		log.Info().Str("booking_id", "b-1").Msg("slip verified")

		var line map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "stayadmin", line["service"])
		assert.Equal(t, "b-1", line["booking_id"])
		assert.Equal(t, "slip verified", line["message"])
	})

	t.Run("development keeps current writer", func(t *testing.T) {
		restore(t)

		var console bytes.Buffer
		log.Logger = log.Output(&console)

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvDevelopment
		cfg.Server.LogLevel = "debug"

		var buf bytes.Buffer
		logger.Configure(cfg, &buf)
		log.Debug().Msg("hello")

		assert.Empty(t, buf.String())
		assert.Contains(t, console.String(), "hello")
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})
}
