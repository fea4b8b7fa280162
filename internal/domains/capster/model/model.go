package model

import (
	"barber/shared/model"
	"barber/shared/shift"
	"database/sql"
)

const (
	TableName         = "capsters"
	WorkHourTableName = "work_hours"
	EntityName        = "capster"

	FieldID         = "id"
	FieldName       = "name"
	FieldImage      = "image"
	FieldWhatsapp   = "whatsapp"
	FieldWorkHourID = "work_hour_id"
)

type Capster struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	Image      sql.NullString `db:"image"`
	Whatsapp   sql.NullString `db:"whatsapp"`
	WorkHourID sql.NullInt64  `db:"work_hour_id"`

	WorkHourName sql.NullString `db:"work_hour_name" table:"work_hours" column:"name"`
	DayStart     sql.NullString `db:"day_start"      table:"work_hours"`
	DayEnd       sql.NullString `db:"day_end"        table:"work_hours"`
	TimeStart    sql.NullString `db:"time_start"     table:"work_hours"`
	TimeEnd      sql.NullString `db:"time_end"       table:"work_hours"`

	model.Metadata
}

func (Capster) GetJoinQuery() string {
	return "LEFT JOIN " + WorkHourTableName + " ON " + WorkHourTableName + ".id = " + TableName + "." + FieldWorkHourID
}

// Window returns the capster's shift, or nil when no work hour is linked.
func (c *Capster) Window() *shift.Window {
	if !c.WorkHourID.Valid {
		return nil
	}

	return &shift.Window{
		DayStart:  c.DayStart.String,
		DayEnd:    c.DayEnd.String,
		TimeStart: c.TimeStart.String,
		TimeEnd:   c.TimeEnd.String,
	}
}
