package model_test

import (
	"barber/internal/domains/booking/model"
	"barber/shared/timezone"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateCriteria_ToFilter(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, timezone.GetLocation())
	since := time.Date(2025, 7, 14, 9, 30, 0, 0, timezone.GetLocation())

	tests := []struct {
		name      string
		modelID   sql.NullInt64
		wantWhere string
		wantModel bool
	}{
		{
			name:      "without hair model",
			wantWhere: "(bookings.capster_id = :capster_id AND bookings.price_id = :price_id AND bookings.model_id IS NULL AND bookings.booking_date = :booking_date AND bookings.whatsapp = :whatsapp AND bookings.email = :email AND bookings.created_at >= :created_since)",
		},
		{
			name:      "with hair model",
			modelID:   sql.NullInt64{Int64: 3, Valid: true},
			wantWhere: "(bookings.capster_id = :capster_id AND bookings.price_id = :price_id AND bookings.model_id = :model_id AND bookings.booking_date = :booking_date AND bookings.whatsapp = :whatsapp AND bookings.email = :email AND bookings.created_at >= :created_since)",
			wantModel: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := model.DuplicateCriteria{
				CapsterID:   1,
				PriceID:     2,
				ModelID:     tt.modelID,
				BookingDate: date,
				Whatsapp:    "6281234567890",
				Email:       "budi@x.com",
				Since:       since,
			}

			filter := criteria.ToFilter()
			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, int64(1), args["capster_id"])
			assert.Equal(t, int64(2), args["price_id"])
			assert.Equal(t, "2025-07-15", args["booking_date"])
			assert.Equal(t, since, args["created_since"])

			_, hasModel := args["model_id"]
			assert.Equal(t, tt.wantModel, hasModel)
		})
	}
}
