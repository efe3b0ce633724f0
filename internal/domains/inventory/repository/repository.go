package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/internal/domains/inventory/model"
	gDto "staysync/shared/dto"
	gRepo "staysync/shared/repository"
)

type RoomMapping interface {
	Insert(ctx context.Context, model model.RoomMapping) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomMapping, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomMapping, error)
}

type RatePlan interface {
	Insert(ctx context.Context, model model.RatePlan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RatePlan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RatePlan, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type mappingRepositoryImpl struct {
	gRepo.Repository[model.RoomMapping]
}

type planRepositoryImpl struct {
	gRepo.Repository[model.RatePlan]
}

func NewRoomMapping(db *postgres.Connection, otel otel.Otel) RoomMapping {
	return &mappingRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomMapping](model.MappingEntityName, model.MappingTableName, model.FieldID, db, otel),
	}
}

func NewRatePlan(db *postgres.Connection, otel otel.Otel) RatePlan {
	return &planRepositoryImpl{
		Repository: gRepo.NewRepository[model.RatePlan](model.PlanEntityName, model.PlanTableName, model.FieldID, db, otel),
	}
}
