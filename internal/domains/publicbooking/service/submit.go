package service

import (
	"barber/infras/kafka"
	bookingModel "barber/internal/domains/booking/model"
	capsterModel "barber/internal/domains/capster/model"
	hairModel "barber/internal/domains/hairmodel/model"
	priceModel "barber/internal/domains/price/model"
	"barber/internal/domains/publicbooking/model/dto"
	"barber/shared"
	"barber/shared/constant"
	gDto "barber/shared/dto"
	"barber/shared/timezone"
	"barber/shared/validator"
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	messageDateInPast = "booking date must be today or later"
	messageNotFound   = "selected %s does not exist"
)

// submission carries one request through the gates.
type submission struct {
	req     dto.SubmissionRequest
	input   dto.CleanInput
	booking dto.Booking
	errors  map[string]string
}

// gate passes or rejects a submission with its reason. The error return is
// for store failures only.
type gate struct {
	reason string
	check  func(ctx context.Context, sub *submission) (bool, error)
}

func (s *serviceImpl) gates() []gate {
	return []gate{
		{reason: dto.ReasonBlockedInsecure, check: s.checkTransport},
		{reason: dto.ReasonRateLimited, check: s.checkRateLimit},
		{reason: dto.ReasonHoneypot, check: checkHoneypot},
		{reason: dto.ReasonInvalid, check: s.checkFields},
		{reason: dto.ReasonCaptchaFailed, check: s.checkCaptcha},
		{reason: dto.ReasonDuplicate, check: s.checkDuplicate},
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmissionRequest) (outcome dto.Outcome, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sub := &submission{req: req, input: dto.Sanitize(req.Raw)}

	for _, step := range s.gates() {
		passed, err := step.check(ctx, sub)
		if err != nil {
			return dto.Outcome{}, err
		}

		if passed {
			continue
		}

		s.logAttempt(req, step.reason, "")
		scope.SetAttribute("public_booking.reason", step.reason)

		if step.reason == dto.ReasonInvalid {
			return dto.RejectInvalid(sub.errors, sub.input.Echo()), nil
		}

		return dto.Reject(step.reason, sub.input.Echo()), nil
	}

	now := s.clock.Now()
	booking := sub.booking.ToModel(uuid.NewString(), now, constant.UserPublic)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert public booking")

		return dto.Outcome{}, fmt.Errorf("failed to insert public booking: %w", err)
	}

	s.logAttempt(req, dto.StatusCreated, booking.ID)
	s.publishCreated(ctx, &booking)

	return dto.Accept(booking.ID), nil
}

func (s *serviceImpl) checkTransport(_ context.Context, sub *submission) (bool, error) {
	return !s.cfg.IsProduction() || sub.req.Secure, nil
}

// checkRateLimit rejects once the client already used its attempts, then
// counts this attempt. Concurrent requests that slip past the first check are
// caught by the count returned from the atomic hit.
func (s *serviceImpl) checkRateLimit(ctx context.Context, sub *submission) (bool, error) {
	ip := sub.req.ClientIP
	if ip == "" {
		ip = constant.Unknown
	}

	key := shared.BuildCacheKey(cacheKeyRateLimit, ip)
	maxAttempts := s.rateLimitMax()

	tooMany, err := s.limiter.TooManyAttempts(ctx, key, maxAttempts)
	if err != nil {
		log.Error().Err(err).Msg("failed to check rate limit")

		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if tooMany {
		return false, nil
	}

	count, err := s.limiter.Hit(ctx, key, s.rateLimitDecay())
	if err != nil {
		log.Error().Err(err).Msg("failed to record rate limit hit")

		return false, fmt.Errorf("failed to record rate limit hit: %w", err)
	}

	return count <= maxAttempts, nil
}

func checkHoneypot(_ context.Context, sub *submission) (bool, error) {
	return sub.input.Website == "", nil
}

func (s *serviceImpl) checkFields(ctx context.Context, sub *submission) (bool, error) {
	sub.errors = validator.ValidateFields(&sub.input)
	if sub.errors == nil {
		sub.errors = map[string]string{}
	}

	if _, invalid := sub.errors[dto.FieldBookingDate]; !invalid {
		date, err := timezone.ParseDate(sub.input.BookingDate)
		if err == nil && date.Before(timezone.StartOfDay(s.clock.Now())) {
			sub.errors[dto.FieldBookingDate] = messageDateInPast
		}
	}

	lookups := []struct {
		field  string
		entity string
		value  string
		filter gDto.FilterGroup
		exist  func(context.Context, gDto.FilterGroup) (bool, error)
	}{
		{
			field:  dto.FieldCapsterID,
			entity: capsterModel.EntityName,
			value:  sub.input.CapsterID,
			filter: shared.FilterByID(sub.input.CapsterID, capsterModel.FieldID, capsterModel.TableName),
			exist:  s.capsterRepo.Exist,
		},
		{
			field:  dto.FieldPriceID,
			entity: priceModel.EntityName,
			value:  sub.input.PriceID,
			filter: shared.FilterByID(sub.input.PriceID, priceModel.FieldID, priceModel.TableName),
			exist:  s.priceRepo.Exist,
		},
		{
			field:  dto.FieldModelID,
			entity: "hair model",
			value:  sub.input.ModelID,
			filter: shared.FilterByID(sub.input.ModelID, hairModel.FieldID, hairModel.TableName),
			exist:  s.hairModelRepo.Exist,
		},
	}

	for _, lookup := range lookups {
		if _, invalid := sub.errors[lookup.field]; invalid || lookup.value == "" {
			continue
		}

		exist, err := lookup.exist(ctx, lookup.filter)
		if err != nil {
			log.Error().Err(err).Str("entity", lookup.entity).Msg("failed to look up entity")

			return false, fmt.Errorf("failed to look up %s: %w", lookup.entity, err)
		}

		if !exist {
			sub.errors[lookup.field] = fmt.Sprintf(messageNotFound, lookup.entity)
		}
	}

	if len(sub.errors) > 0 {
		return false, nil
	}

	booking, err := sub.input.Parse()
	if err != nil {
		sub.errors["_"] = err.Error()

		return false, nil
	}

	sub.booking = booking

	return true, nil
}

// checkCaptcha consumes the expected answer whatever the result, so every
// challenge can be answered once.
func (s *serviceImpl) checkCaptcha(ctx context.Context, sub *submission) (bool, error) {
	expected, err := s.session.Pull(ctx, sub.req.SessionID, captchaSessionKey, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to read captcha answer")

		return false, fmt.Errorf("failed to read captcha answer: %w", err)
	}

	if expected == "" {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(sub.input.CaptchaAnswer)) == 1, nil
}

func (s *serviceImpl) checkDuplicate(ctx context.Context, sub *submission) (bool, error) {
	criteria := sub.booking.DuplicateCriteria(s.clock.Now().Add(-s.duplicateWindow()))

	exist, err := s.repo.Exist(ctx, criteria.ToFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to check duplicate booking")

		return false, fmt.Errorf("failed to check duplicate booking: %w", err)
	}

	return !exist, nil
}

func (s *serviceImpl) logAttempt(req dto.SubmissionRequest, status, bookingID string) {
	event := log.Info().
		Str("status", status).
		Str("ip", req.ClientIP).
		Str("user_agent", req.UserAgent)

	if bookingID != "" {
		event = event.Str("booking_id", bookingID)
	}

	event.Msg("public_booking_submission")

	if s.metrics != nil {
		s.metrics.ObservePublicBooking(status)
	}
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking *bookingModel.Booking) {
	message := kafka.Message{Key: booking.ID, Value: dto.NewBookingCreatedEvent(booking)}

	go func(ctx context.Context) {
		ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
		defer scope.End()

		if err := s.publisher.Publish(ctx, message); err != nil {
			log.Error().Err(err).Str("booking_id", message.Key).Msg("failed to publish booking created event")
			scope.TraceError(err)
		}
	}(context.WithoutCancel(ctx))
}
