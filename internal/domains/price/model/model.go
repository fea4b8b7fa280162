package model

import (
	"barber/shared/model"
	"database/sql"
)

const (
	TableName  = "prices"
	EntityName = "price"

	FieldID          = "id"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldDescription = "description"
)

type Price struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Price       int64          `db:"price"`
	Description sql.NullString `db:"description"`
	model.Metadata
}
