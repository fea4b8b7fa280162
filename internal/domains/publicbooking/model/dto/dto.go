package dto

import (
	bookingModel "barber/internal/domains/booking/model"
	capsterModel "barber/internal/domains/capster/model"
	hairModel "barber/internal/domains/hairmodel/model"
	priceModel "barber/internal/domains/price/model"
	"barber/shared/model"
	"barber/shared/sanitize"
	"barber/shared/shift"
	"barber/shared/timezone"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	FieldCapsterID     = "capster_id"
	FieldModelID       = "model_id"
	FieldLegacyModelID = "model_rambut_id"
	FieldPriceID       = "price_id"
	FieldBookingDate   = "booking_date"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldWhatsapp      = "whatsapp"
	FieldNotes         = "notes"
	FieldCaptchaAnswer = "captcha_answer"
	FieldWebsite       = "website"
)

const (
	ReasonBlockedInsecure = "blocked_insecure"
	ReasonRateLimited     = "rate_limited"
	ReasonHoneypot        = "honeypot"
	ReasonInvalid         = "invalid"
	ReasonCaptchaFailed   = "captcha_failed"
	ReasonDuplicate       = "duplicate"

	StatusCreated = "created"
)

const (
	MessageGeneric  = "Tidak dapat memproses booking. Silakan coba lagi."
	MessageInvalid  = "Data tidak valid. Silakan cek kembali."
	MessageAccepted = "Booking diterima. Kami akan konfirmasi segera."
)

const imagePathPrefix = "/storage/"

// CleanInput is a public submission after sanitization. Every field is still
// text; conversion happens once validation has passed.
type CleanInput struct {
	CapsterID     string `json:"capster_id"     validate:"required,digits"`
	ModelID       string `json:"model_id"       validate:"omitempty,digits"`
	PriceID       string `json:"price_id"       validate:"required,digits"`
	BookingDate   string `json:"booking_date"   validate:"required,datetime=2006-01-02"`
	Name          string `json:"name"           validate:"required,max=255"`
	Email         string `json:"email"          validate:"required,email,max=255"`
	Whatsapp      string `json:"whatsapp"       validate:"required,digits,max=30"`
	Notes         string `json:"notes"          validate:"required,max=1000"`
	CaptchaAnswer string `json:"captcha_answer" validate:"required,digits,max=10"`
	Website       string `json:"website"`
}

// Sanitize normalizes raw form values. Text fields lose markup and
// surrounding space, whatsapp keeps digits only, identifiers pass through.
func Sanitize(raw map[string]string) CleanInput {
	modelID := raw[FieldModelID]
	if modelID == "" {
		modelID = raw[FieldLegacyModelID]
	}

	return CleanInput{
		CapsterID:     raw[FieldCapsterID],
		ModelID:       modelID,
		PriceID:       raw[FieldPriceID],
		BookingDate:   raw[FieldBookingDate],
		Name:          sanitize.Text(raw[FieldName]),
		Email:         sanitize.Text(raw[FieldEmail]),
		Whatsapp:      sanitize.Digits(raw[FieldWhatsapp]),
		Notes:         sanitize.Text(raw[FieldNotes]),
		CaptchaAnswer: strings.TrimSpace(raw[FieldCaptchaAnswer]),
		Website:       strings.TrimSpace(raw[FieldWebsite]),
	}
}

// Echo returns the values to prefill the form with. The captcha answer and
// the honeypot are never sent back.
func (c *CleanInput) Echo() map[string]string {
	return map[string]string{
		FieldCapsterID:   c.CapsterID,
		FieldModelID:     c.ModelID,
		FieldPriceID:     c.PriceID,
		FieldBookingDate: c.BookingDate,
		FieldName:        c.Name,
		FieldEmail:       c.Email,
		FieldWhatsapp:    c.Whatsapp,
		FieldNotes:       c.Notes,
	}
}

// Booking is the typed form of a validated CleanInput.
type Booking struct {
	CapsterID   int64
	ModelID     sql.NullInt64
	PriceID     int64
	BookingDate time.Time
	Name        string
	Email       string
	Whatsapp    string
	Notes       string
}

func (c *CleanInput) Parse() (Booking, error) {
	capsterID, err := strconv.ParseInt(c.CapsterID, 10, 64)
	if err != nil {
		return Booking{}, fmt.Errorf("invalid %s: %w", FieldCapsterID, err)
	}

	priceID, err := strconv.ParseInt(c.PriceID, 10, 64)
	if err != nil {
		return Booking{}, fmt.Errorf("invalid %s: %w", FieldPriceID, err)
	}

	var modelID sql.NullInt64

	if c.ModelID != "" {
		modelID.Int64, err = strconv.ParseInt(c.ModelID, 10, 64)
		if err != nil {
			return Booking{}, fmt.Errorf("invalid %s: %w", FieldModelID, err)
		}

		modelID.Valid = true
	}

	date, err := timezone.ParseDate(c.BookingDate)
	if err != nil {
		return Booking{}, fmt.Errorf("invalid %s: %w", FieldBookingDate, err)
	}

	return Booking{
		CapsterID:   capsterID,
		ModelID:     modelID,
		PriceID:     priceID,
		BookingDate: date,
		Name:        c.Name,
		Email:       c.Email,
		Whatsapp:    c.Whatsapp,
		Notes:       c.Notes,
	}, nil
}

func (b *Booking) ToModel(id string, at time.Time, user string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:          id,
		CapsterID:   b.CapsterID,
		ModelID:     b.ModelID,
		PriceID:     sql.NullInt64{Int64: b.PriceID, Valid: true},
		BookingDate: b.BookingDate,
		Status:      bookingModel.StatusWaiting,
		Name:        b.Name,
		Email:       b.Email,
		Whatsapp:    b.Whatsapp,
		Notes:       sql.NullString{String: b.Notes, Valid: b.Notes != ""},
		Metadata:    model.NewMetadata(at, user),
	}
}

func (b *Booking) DuplicateCriteria(since time.Time) bookingModel.DuplicateCriteria {
	return bookingModel.DuplicateCriteria{
		CapsterID:   b.CapsterID,
		PriceID:     b.PriceID,
		ModelID:     b.ModelID,
		BookingDate: b.BookingDate,
		Whatsapp:    b.Whatsapp,
		Email:       b.Email,
		Since:       since,
	}
}

// RawFromJSON flattens a decoded JSON body into form values. Numbers keep
// their literal text and null becomes "".
func RawFromJSON(body map[string]json.RawMessage) map[string]string {
	raw := make(map[string]string, len(body))

	for key, value := range body {
		var text string
		if err := json.Unmarshal(value, &text); err == nil {
			raw[key] = text

			continue
		}

		literal := strings.TrimSpace(string(value))
		if literal == "null" {
			raw[key] = ""

			continue
		}

		raw[key] = literal
	}

	return raw
}

type SubmissionRequest struct {
	Raw       map[string]string
	ClientIP  string
	UserAgent string
	SessionID string
	Secure    bool
}

// Outcome is the result of one submission: accepted with a booking id, or
// rejected with a reason that is only ever logged.
type Outcome struct {
	Accepted  bool
	BookingID string
	Reason    string
	Message   string
	Errors    map[string]string
	Old       map[string]string
}

func Accept(bookingID string) Outcome {
	return Outcome{Accepted: true, BookingID: bookingID, Message: MessageAccepted}
}

func Reject(reason string, old map[string]string) Outcome {
	return Outcome{Reason: reason, Message: MessageGeneric, Old: old}
}

func RejectInvalid(errors map[string]string, old map[string]string) Outcome {
	return Outcome{Reason: ReasonInvalid, Message: MessageInvalid, Errors: errors, Old: old}
}

type Challenge struct {
	Question string `json:"question"`
	Answer   string `json:"-"`
}

type SubmissionResponse struct {
	BookingID string `json:"booking_id"`
	Message   string `json:"message"`
}

type CapsterOption struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	ImageURL     *string       `json:"image_url"`
	WorkHourName *string       `json:"work_hour_name"`
	Shift        *shift.Window `json:"shift"`
	ShiftLabel   string        `json:"shift_label,omitempty"`
	AvailableNow bool          `json:"available_now"`
}

func NewCapsterOption(capster *capsterModel.Capster) CapsterOption {
	window := capster.Window()

	return CapsterOption{
		ID:           capster.ID,
		Name:         capster.Name,
		ImageURL:     imageURL(capster.Image),
		WorkHourName: nullable(capster.WorkHourName),
		Shift:        window,
		ShiftLabel:   window.Label(),
	}
}

type PriceOption struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Description *string `json:"description"`
}

func NewPriceOption(price *priceModel.Price) PriceOption {
	return PriceOption{
		ID:          price.ID,
		Name:        price.Name,
		Price:       price.Price,
		Description: nullable(price.Description),
	}
}

type HairModelOption struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	ImageURL *string `json:"image_url"`
}

func NewHairModelOption(item *hairModel.HairModel) HairModelOption {
	return HairModelOption{
		ID:       item.ID,
		Title:    item.Title,
		ImageURL: imageURL(item.Image),
	}
}

// Catalog is the cacheable part of the form.
type Catalog struct {
	Capsters   []CapsterOption   `json:"capsters"`
	Prices     []PriceOption     `json:"prices"`
	HairModels []HairModelOption `json:"hair_models"`
}

type FormResponse struct {
	Catalog
	CaptchaQuestion string `json:"captcha_question"`
}

type AvailabilityResponse struct {
	CapsterID int64         `json:"capster_id"`
	Date      string        `json:"date"`
	Available bool          `json:"available"`
	Shift     *shift.Window `json:"shift"`
}

// BookingCreatedEvent is published once a public booking is stored.
type BookingCreatedEvent struct {
	BookingID   string    `json:"booking_id"`
	CapsterID   int64     `json:"capster_id"`
	PriceID     int64     `json:"price_id"`
	ModelID     *int64    `json:"model_id"`
	BookingDate string    `json:"booking_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBookingCreatedEvent(booking *bookingModel.Booking) BookingCreatedEvent {
	var modelID *int64
	if booking.ModelID.Valid {
		modelID = &booking.ModelID.Int64
	}

	return BookingCreatedEvent{
		BookingID:   booking.ID,
		CapsterID:   booking.CapsterID,
		PriceID:     booking.PriceID.Int64,
		ModelID:     modelID,
		BookingDate: timezone.FormatDate(booking.BookingDate),
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}

func imageURL(image sql.NullString) *string {
	if !image.Valid || image.String == "" {
		return nil
	}

	url := imagePathPrefix + image.String

	return &url
}

func nullable(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}

	return &value.String
}
