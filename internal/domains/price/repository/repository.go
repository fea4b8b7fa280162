package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"barber/infras/otel"
	"barber/infras/postgres"
	"barber/internal/domains/price/model"
	gDto "barber/shared/dto"
	gRepo "barber/shared/repository"
	"context"
)

type Price interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Price, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Price]
}

func New(db *postgres.Connection, otel otel.Otel) Price {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Price](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
