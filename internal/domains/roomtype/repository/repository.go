package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/internal/domains/roomtype/model"
	gDto "stayadmin/shared/dto"
	gRepo "stayadmin/shared/repository"

	"github.com/jmoiron/sqlx"
)

// RoomType is read only here; the catalogue is maintained by the reservation side.
type RoomType interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, bool, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, lock bool, filter gDto.FilterGroup, columns ...string) (model.RoomType, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
