package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/internal/domains/slip/model"
	gDto "stayadmin/shared/dto"
	gRepo "stayadmin/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Slip has no delete; a superseded image is replaced in place.
type Slip interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, slip model.Slip) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Slip, bool, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, lock bool, filter gDto.FilterGroup, columns ...string) (model.Slip, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slip, error)
	GetAllTx(ctx context.Context, tx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slip, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Slip]
}

func New(db *postgres.Connection, otel otel.Otel) Slip {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slip](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
