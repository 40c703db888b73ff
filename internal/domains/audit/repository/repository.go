package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/internal/domains/audit/model"
	"stayadmin/shared/constant"
	"stayadmin/shared/logger"
	gRepo "stayadmin/shared/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Audit is append only. The table triggers reject UPDATE and DELETE.
type Audit interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, entry model.Entry) error
	LastForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (model.Entry, bool, error)
	ListForBooking(ctx context.Context, bookingID string, limit int) ([]model.Entry, error)
	ListChain(ctx context.Context, bookingID string) ([]model.Entry, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
	db      *postgres.Connection
	otel    otel.Otel
	columns string
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		columns: strings.Join([]string{
			model.FieldID, model.FieldSeq, model.FieldBookingID, model.FieldAction, model.FieldAdminID,
			model.FieldAdminName, model.FieldOldValue, model.FieldNewValue, model.FieldNote,
			model.FieldPreviousHash, model.FieldHash, model.FieldCreatedAt,
		}, ", "),
	}
}

// LastForBookingTx returns the chain head. The caller holds the booking row lock, so
// no other append for the booking can interleave.
func (r *repositoryImpl) LastForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (model.Entry, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audit.LastForBookingTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT 1",
		r.columns, model.TableName, model.FieldBookingID, model.FieldSeq)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var entry model.Entry

	err := tx.GetContext(ctx, &entry, query, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return entry, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entry, false, fmt.Errorf("failed to get last audit entry: %w", err)
	}

	return entry, true, nil
}

// ListForBooking returns the newest entries first. A limit <= 0 returns the full history.
func (r *repositoryImpl) ListForBooking(ctx context.Context, bookingID string, limit int) ([]model.Entry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audit.ListForBooking")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC",
		r.columns, model.TableName, model.FieldBookingID, model.FieldCreatedAt, model.FieldSeq)
	args := []any{bookingID}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	entries := []model.Entry{}

	if err := r.db.Read.SelectContext(ctx, &entries, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entries, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}

// ListChain returns the entries in append order for chain verification.
func (r *repositoryImpl) ListChain(ctx context.Context, bookingID string) ([]model.Entry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audit.ListChain")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC",
		r.columns, model.TableName, model.FieldBookingID, model.FieldSeq)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	entries := []model.Entry{}

	if err := r.db.Read.SelectContext(ctx, &entries, query, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entries, fmt.Errorf("failed to list audit chain: %w", err)
	}

	return entries, nil
}
