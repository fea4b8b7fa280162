package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"barber/infras/otel"
	"barber/infras/postgres"
	"barber/internal/domains/hairmodel/model"
	gDto "barber/shared/dto"
	gRepo "barber/shared/repository"
	"context"
)

type HairModel interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HairModel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.HairModel]
}

func New(db *postgres.Connection, otel otel.Otel) HairModel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HairModel](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
