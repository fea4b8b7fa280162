package model

import (
	"barber/shared/constant"
	"barber/shared/dto"
	"barber/shared/model"
	"barber/shared/timezone"
	"database/sql"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCapsterID   = "capster_id"
	FieldModelID     = "model_id"
	FieldPriceID     = "price_id"
	FieldBookingDate = "booking_date"
	FieldStatus      = "status"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldWhatsapp    = "whatsapp"
	FieldNotes       = "notes"
)

const (
	StatusWaiting   = "waiting"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID          string         `db:"id"`
	CapsterID   int64          `db:"capster_id"`
	ModelID     sql.NullInt64  `db:"model_id"`
	PriceID     sql.NullInt64  `db:"price_id"`
	BookingDate time.Time      `db:"booking_date"`
	Status      string         `db:"status"`
	Name        string         `db:"name"`
	Email       string         `db:"email"`
	Whatsapp    string         `db:"whatsapp"`
	Notes       sql.NullString `db:"notes"`
	model.Metadata
}

// DuplicateCriteria identifies a resubmission of the same booking.
type DuplicateCriteria struct {
	CapsterID   int64
	PriceID     int64
	ModelID     sql.NullInt64
	BookingDate time.Time
	Whatsapp    string
	Email       string
	Since       time.Time
}

func (c DuplicateCriteria) ToFilter() dto.FilterGroup {
	modelFilter := dto.Filter{Field: FieldModelID, Operator: dto.FilterIsNull, Table: TableName}
	if c.ModelID.Valid {
		modelFilter = dto.Filter{Field: FieldModelID, Value: c.ModelID.Int64, Operator: dto.FilterOperatorEq, Table: TableName}
	}

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: FieldCapsterID, Value: c.CapsterID, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldPriceID, Value: c.PriceID, Operator: dto.FilterOperatorEq, Table: TableName},
			modelFilter,
			dto.Filter{
				Field:    FieldBookingDate,
				Value:    timezone.FormatDate(c.BookingDate),
				Operator: dto.FilterOperatorEq,
				Table:    TableName,
			},
			dto.Filter{Field: FieldWhatsapp, Value: c.Whatsapp, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldEmail, Value: c.Email, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{
				ArgName:  "created_since",
				Field:    constant.FieldCreatedAt,
				Value:    c.Since,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    TableName,
			},
		},
	}
}
