package dto_test

import (
	bookingModel "barber/internal/domains/booking/model"
	capsterModel "barber/internal/domains/capster/model"
	"barber/internal/domains/publicbooking/model/dto"
	"barber/shared/validator"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() map[string]string {
	return map[string]string{
		dto.FieldCapsterID:     "1",
		dto.FieldPriceID:       "2",
		dto.FieldBookingDate:   "2025-07-15",
		dto.FieldName:          "Budi",
		dto.FieldEmail:         "budi@x.com",
		dto.FieldWhatsapp:      "6281234567890",
		dto.FieldNotes:         "fade",
		dto.FieldCaptchaAnswer: "7",
	}
}

func TestSanitize(t *testing.T) {
	raw := map[string]string{
		dto.FieldCapsterID:     " 1 ",
		dto.FieldName:          "  <b>Budi</b> ",
		dto.FieldEmail:         "<i>budi@x.com</i>",
		dto.FieldNotes:         "<script>alert(1)</script>fade",
		dto.FieldWhatsapp:      "+62 812-3456",
		dto.FieldCaptchaAnswer: " 7 ",
		dto.FieldWebsite:       "  ",
	}

	input := dto.Sanitize(raw)

	assert.Equal(t, " 1 ", input.CapsterID)
	assert.Equal(t, "Budi", input.Name)
	assert.Equal(t, "budi@x.com", input.Email)
	assert.Equal(t, "alert(1)fade", input.Notes)
	assert.Equal(t, "628123456", input.Whatsapp)
	assert.Equal(t, "7", input.CaptchaAnswer)
	assert.Empty(t, input.Website)
	assert.Empty(t, input.BookingDate)
}

func TestSanitize_Idempotent(t *testing.T) {
	raw := map[string]string{
		dto.FieldName:     "<<b>b>Budi</b>  ",
		dto.FieldEmail:    " <a href='x'>budi@x.com</a>",
		dto.FieldNotes:    "<!-- c --> fade <br/> please ",
		dto.FieldWhatsapp: "+62 (812) 3456",
	}

	once := dto.Sanitize(raw)
	twice := dto.Sanitize(once.Echo())

	assert.Equal(t, once.Name, twice.Name)
	assert.Equal(t, once.Email, twice.Email)
	assert.Equal(t, once.Notes, twice.Notes)
	assert.Equal(t, once.Whatsapp, twice.Whatsapp)
}

func TestSanitize_LegacyModelField(t *testing.T) {
	input := dto.Sanitize(map[string]string{dto.FieldLegacyModelID: "4"})
	assert.Equal(t, "4", input.ModelID)

	input = dto.Sanitize(map[string]string{dto.FieldModelID: "5", dto.FieldLegacyModelID: "4"})
	assert.Equal(t, "5", input.ModelID)
}

func TestCleanInput_Echo(t *testing.T) {
	raw := validRaw()
	raw[dto.FieldWebsite] = "http://spam"

	input := dto.Sanitize(raw)
	old := input.Echo()

	assert.NotContains(t, old, dto.FieldCaptchaAnswer)
	assert.NotContains(t, old, dto.FieldWebsite)
	assert.Equal(t, "Budi", old[dto.FieldName])
	assert.Equal(t, "1", old[dto.FieldCapsterID])
}

func TestCleanInput_Validation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(raw map[string]string)
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(map[string]string) {},
		},
		{
			name:   "missing everything",
			mutate: func(raw map[string]string) { clear(raw) },
			wantFields: []string{
				dto.FieldCapsterID, dto.FieldPriceID, dto.FieldBookingDate, dto.FieldName,
				dto.FieldEmail, dto.FieldWhatsapp, dto.FieldNotes, dto.FieldCaptchaAnswer,
			},
		},
		{
			name:       "non numeric ids",
			mutate:     func(raw map[string]string) { raw[dto.FieldCapsterID] = "1a"; raw[dto.FieldModelID] = "x" },
			wantFields: []string{dto.FieldCapsterID, dto.FieldModelID},
		},
		{
			name:       "bad date format",
			mutate:     func(raw map[string]string) { raw[dto.FieldBookingDate] = "15/07/2025" },
			wantFields: []string{dto.FieldBookingDate},
		},
		{
			name:       "bad email",
			mutate:     func(raw map[string]string) { raw[dto.FieldEmail] = "budi" },
			wantFields: []string{dto.FieldEmail},
		},
		{
			name: "too long",
			mutate: func(raw map[string]string) {
				raw[dto.FieldWhatsapp] = "1234567890123456789012345678901"
				raw[dto.FieldCaptchaAnswer] = "12345678901"
			},
			wantFields: []string{dto.FieldWhatsapp, dto.FieldCaptchaAnswer},
		},
		{
			name:       "markup only name",
			mutate:     func(raw map[string]string) { raw[dto.FieldName] = "<b></b>" },
			wantFields: []string{dto.FieldName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(raw)

			input := dto.Sanitize(raw)
			errs := validator.ValidateFields(&input)

			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)

				return
			}

			assert.Len(t, errs, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestCleanInput_Parse(t *testing.T) {
	raw := validRaw()
	raw[dto.FieldModelID] = "3"

	input := dto.Sanitize(raw)

	booking, err := input.Parse()
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.CapsterID)
	assert.Equal(t, int64(2), booking.PriceID)
	assert.Equal(t, sql.NullInt64{Int64: 3, Valid: true}, booking.ModelID)
	assert.Equal(t, "2025-07-15", booking.BookingDate.Format("2006-01-02"))

	input.ModelID = ""
	booking, err = input.Parse()
	require.NoError(t, err)
	assert.False(t, booking.ModelID.Valid)

	input.CapsterID = "99999999999999999999"
	_, err = input.Parse()
	assert.Error(t, err)
}

func TestBooking_ToModel(t *testing.T) {
	input := dto.Sanitize(validRaw())
	booking, err := input.Parse()
	require.NoError(t, err)

	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	row := booking.ToModel("b-1", now, "public")

	assert.Equal(t, "b-1", row.ID)
	assert.Equal(t, bookingModel.StatusWaiting, row.Status)
	assert.Equal(t, sql.NullInt64{Int64: 2, Valid: true}, row.PriceID)
	assert.Equal(t, "fade", row.Notes.String)
	assert.Equal(t, "public", row.CreatedBy)
	assert.Equal(t, now, row.CreatedAt)

	event := dto.NewBookingCreatedEvent(&row)
	assert.Equal(t, "2025-07-15", event.BookingDate)
	assert.Nil(t, event.ModelID)
}

func TestRawFromJSON(t *testing.T) {
	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(`{"capster_id":1,"model_id":null,"name":"Budi","whatsapp":"0812"}`), &body))

	raw := dto.RawFromJSON(body)

	assert.Equal(t, map[string]string{
		dto.FieldCapsterID: "1",
		dto.FieldModelID:   "",
		dto.FieldName:      "Budi",
		dto.FieldWhatsapp:  "0812",
	}, raw)
}

func TestNewCapsterOption(t *testing.T) {
	capster := capsterModel.Capster{
		ID:           1,
		Name:         "Andi",
		Image:        sql.NullString{String: "capsters/andi.jpg", Valid: true},
		WorkHourID:   sql.NullInt64{Int64: 1, Valid: true},
		WorkHourName: sql.NullString{String: "Pagi", Valid: true},
		DayStart:     sql.NullString{String: "senin", Valid: true},
		DayEnd:       sql.NullString{String: "jumat", Valid: true},
		TimeStart:    sql.NullString{String: "09:00", Valid: true},
		TimeEnd:      sql.NullString{String: "17:00", Valid: true},
	}

	option := dto.NewCapsterOption(&capster)

	require.NotNil(t, option.ImageURL)
	assert.Equal(t, "/storage/capsters/andi.jpg", *option.ImageURL)
	assert.Equal(t, "Pagi", *option.WorkHourName)
	assert.Equal(t, "Senin - Jumat, 09:00 - 17:00", option.ShiftLabel)

	option = dto.NewCapsterOption(&capsterModel.Capster{ID: 2, Name: "Joko"})

	assert.Nil(t, option.ImageURL)
	assert.Nil(t, option.Shift)
	assert.Empty(t, option.ShiftLabel)
}
