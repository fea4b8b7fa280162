package model

import (
	"barber/shared/model"
	"database/sql"
)

const (
	TableName  = "hair_models"
	EntityName = "hair_model"

	FieldID    = "id"
	FieldTitle = "title"
	FieldImage = "image"
)

type HairModel struct {
	ID    int64          `db:"id"`
	Title string         `db:"title"`
	Image sql.NullString `db:"image"`
	model.Metadata
}
