package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"barber/infras/otel"
	"barber/infras/postgres"
	"barber/internal/domains/capster/model"
	gDto "barber/shared/dto"
	gRepo "barber/shared/repository"
	"context"
)

type Capster interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Capster, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Capster, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Capster]
}

func New(db *postgres.Connection, otel otel.Otel) Capster {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Capster](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
