package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Audit=MockAuditService

import (
	"context"
	"fmt"
	"stayadmin/config"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/audit/chain"
	"stayadmin/internal/domains/audit/model"
	"stayadmin/internal/domains/audit/model/dto"
	"stayadmin/internal/domains/audit/repository"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	"stayadmin/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet          = "Audit"
	exportDefaultSheet   = "Sheet1"
	eventHeaderAction    = "action"
	eventHeaderBookingID = "booking_id"
)

var exportHeaders = []string{
	"Seq", "Created At", "Action", "Admin ID", "Admin Name", "Old Value", "New Value", "Note", "Previous Hash", "Hash",
}

type Audit interface {
	AppendTx(ctx context.Context, tx *sqlx.Tx, rec model.Record) (model.Entry, error)
	ListForBooking(ctx context.Context, bookingID string) ([]dto.EntryResponse, error)
	Recent(ctx context.Context, bookingID string) ([]dto.EntryResponse, error)
	VerifyChain(ctx context.Context, bookingID string) (dto.ChainReportResponse, error)
	Export(ctx context.Context, bookingID string) (dto.Export, error)
	Publish(ctx context.Context, entries ...model.Entry)
}

type serviceImpl struct {
	repo  repository.Audit
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Audit, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Audit {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafka,
	}
}

// AppendTx seals rec onto the booking's chain inside tx. Storage failures surface as
// StorageError and the caller's transaction rolls back with them.
func (s *serviceImpl) AppendTx(ctx context.Context, tx *sqlx.Tx, rec model.Record) (entry model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AppendAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = rec.Action.Validate(); err != nil {
		return entry, err
	}

	if err = rec.Actor.Validate(); err != nil {
		return entry, err
	}

	last, found, err := s.repo.LastForBookingTx(ctx, tx, rec.BookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", rec.BookingID).Msg("failed to read audit chain head")

		return entry, failure.StorageError(fmt.Errorf("failed to read audit chain head: %w", err))
	}

	previous := chain.Genesis
	now := timezone.Now()

	if found {
		previous = last.Hash

		if now.Before(last.CreatedAt) {
			now = last.CreatedAt
		}
	}

	entry = chain.Seal(previous, model.Entry{
		ID:        uuid.NewString(),
		BookingID: rec.BookingID,
		Action:    rec.Action,
		AdminID:   rec.Actor.ID,
		AdminName: rec.Actor.DisplayName(),
		OldValue:  rec.OldValue,
		NewValue:  rec.NewValue,
		Note:      rec.Note,
		CreatedAt: now,
	})

	if err = s.repo.InsertTx(ctx, tx, entry); err != nil {
		log.Error().Err(err).Str("booking_id", rec.BookingID).Str("action", string(rec.Action)).Msg("failed to append audit entry")

		return entry, failure.StorageError(fmt.Errorf("failed to append audit entry: %w", err))
	}

	return entry, nil
}

func (s *serviceImpl) list(ctx context.Context, bookingID string, limit int) ([]dto.EntryResponse, error) {
	entries, err := s.repo.ListForBooking(ctx, bookingID, limit)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to list audit entries")

		return nil, failure.StorageError(fmt.Errorf("failed to list audit entries: %w", err))
	}

	return dto.FromModels(entries), nil
}

// ListForBooking returns the whole history, newest first.
func (s *serviceImpl) ListForBooking(ctx context.Context, bookingID string) (res []dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, bookingID, 0)
}

func (s *serviceImpl) Recent(ctx context.Context, bookingID string) (res []dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := s.cfg.Audit.RecentLimit
	if limit <= 0 {
		limit = 3
	}

	return s.list(ctx, bookingID, limit)
}

func (s *serviceImpl) VerifyChain(ctx context.Context, bookingID string) (res dto.ChainReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyAuditChain")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entries, err := s.repo.ListChain(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to load audit chain")

		return res, failure.StorageError(fmt.Errorf("failed to load audit chain: %w", err))
	}

	report := chain.Verify(entries)
	if !report.Valid {
		log.Warn().
			Str("booking_id", bookingID).
			Str("entry_id", report.BrokenID).
			Int64("seq", report.BrokenSeq).
			Str("reason", report.Reason).
			Msg("audit chain broken")
	}

	res.FromReport(bookingID, report)

	return res, nil
}

// Export renders the history oldest first as an xlsx workbook.
func (s *serviceImpl) Export(ctx context.Context, bookingID string) (res dto.Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entries, err := s.repo.ListChain(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to load audit entries for export")

		return res, failure.StorageError(fmt.Errorf("failed to load audit entries for export: %w", err))
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close audit workbook")
		}
	}()

	if err = f.SetSheetName(exportDefaultSheet, exportSheet); err != nil {
		return res, fmt.Errorf("failed to prepare audit sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(exportSheet, cell, header); err != nil {
			return res, fmt.Errorf("failed to write audit header: %w", err)
		}
	}

	for i, entry := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)

		row := []any{
			entry.Seq,
			timezone.Format(entry.CreatedAt, constant.DateFormat),
			entry.Action.Badge().Label,
			entry.AdminID,
			entry.AdminName,
			deref(entry.OldValue),
			deref(entry.NewValue),
			deref(entry.Note),
			entry.PreviousHash,
			entry.Hash,
		}

		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return res, fmt.Errorf("failed to write audit row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return res, fmt.Errorf("failed to render audit workbook: %w", err)
	}

	res.FileName = fmt.Sprintf("audit-%s-%s.xlsx", bookingID, timezone.Now().Format("20060102150405"))
	res.Content = buf.Bytes()

	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}

// Publish announces committed entries. Delivery is best effort; the database remains
// the record of truth.
func (s *serviceImpl) Publish(ctx context.Context, entries ...model.Entry) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishAudit")
	defer scope.End()

	if len(entries) == 0 {
		return
	}

	messages := make([]kafka.Message, len(entries))

	for i, entry := range entries {
		var event dto.Event
		event.FromModel(entry)

		messages[i] = kafka.Message{
			Key:   entry.BookingID,
			Value: event,
			Headers: map[string]string{
				eventHeaderAction:    string(entry.Action),
				eventHeaderBookingID: entry.BookingID,
			},
		}
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Audit, messages...); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", s.cfg.Kafka.Topics.Audit).Msg("failed to publish audit events")
	}
}
