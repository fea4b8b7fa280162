package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"barber/config"
	"barber/infras/kafka"
	"barber/infras/otel"
	bookingRepo "barber/internal/domains/booking/repository"
	capsterModel "barber/internal/domains/capster/model"
	capsterRepo "barber/internal/domains/capster/repository"
	hairModel "barber/internal/domains/hairmodel/model"
	hairModelRepo "barber/internal/domains/hairmodel/repository"
	priceModel "barber/internal/domains/price/model"
	priceRepo "barber/internal/domains/price/repository"
	"barber/internal/domains/publicbooking/model/dto"
	"barber/shared"
	"barber/shared/cache"
	"barber/shared/constant"
	gDto "barber/shared/dto"
	"barber/shared/failure"
	"barber/shared/limiter"
	"barber/shared/metrics"
	"barber/shared/session"
	"barber/shared/shift"
	"barber/shared/timezone"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyCatalog   = "public-booking:catalog"
	cacheKeyRateLimit = "public-booking:limit"

	captchaSessionKey = "public_booking_captcha_answer"

	defaultRateLimitMax           = 5
	defaultRateLimitDecaySeconds  = 60
	defaultDuplicateWindowMinutes = 30
	defaultCaptchaTTLSeconds      = 7200
)

type PublicBooking interface {
	// Form issues a fresh CAPTCHA and returns the catalog to pick from.
	Form(ctx context.Context, sessionID string) (dto.FormResponse, error)
	IssueChallenge(ctx context.Context, sessionID string) (dto.Challenge, error)
	// Submit runs a public submission through the abuse gates and stores it.
	// Rejections are reported in the outcome; the error is reserved for
	// failures of the underlying stores.
	Submit(ctx context.Context, req dto.SubmissionRequest) (dto.Outcome, error)
	Availability(ctx context.Context, capsterID int64, date string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo          bookingRepo.Booking
	capsterRepo   capsterRepo.Capster
	priceRepo     priceRepo.Price
	hairModelRepo hairModelRepo.HairModel
	limiter       limiter.Limiter
	session       session.Store
	cache         cache.Cache
	publisher     kafka.Publisher
	metrics       *metrics.Metrics
	clock         timezone.Clock
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo bookingRepo.Booking,
	capsterRepo capsterRepo.Capster,
	priceRepo priceRepo.Price,
	hairModelRepo hairModelRepo.HairModel,
	limiter limiter.Limiter,
	session session.Store,
	cache cache.Cache,
	publisher kafka.Publisher,
	metrics *metrics.Metrics,
	clock timezone.Clock,
	cfg *config.Config,
	otel otel.Otel,
) PublicBooking {
	return &serviceImpl{
		repo:          repo,
		capsterRepo:   capsterRepo,
		priceRepo:     priceRepo,
		hairModelRepo: hairModelRepo,
		limiter:       limiter,
		session:       session,
		cache:         cache,
		publisher:     publisher,
		metrics:       metrics,
		clock:         clock,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) IssueChallenge(ctx context.Context, sessionID string) (dto.Challenge, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueChallenge")
	defer scope.End()

	first := rand.IntN(8) + 2  //nolint:gosec,mnd
	second := rand.IntN(9) + 1 //nolint:gosec,mnd

	challenge := dto.Challenge{
		Question: fmt.Sprintf("%d + %d", first, second),
		Answer:   strconv.Itoa(first + second),
	}

	err := s.session.Put(ctx, sessionID, captchaSessionKey, challenge.Answer, s.captchaTTL())
	if err != nil {
		log.Error().Err(err).Msg("failed to store captcha answer")
		scope.TraceError(err)

		return dto.Challenge{}, fmt.Errorf("failed to store captcha answer: %w", err)
	}

	return challenge, nil
}

func (s *serviceImpl) Form(ctx context.Context, sessionID string) (dto.FormResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form")
	defer scope.End()

	challenge, err := s.IssueChallenge(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)

		return dto.FormResponse{}, err
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		scope.TraceError(err)

		return dto.FormResponse{}, err
	}

	now := s.clock.Now()
	for idx := range catalog.Capsters {
		catalog.Capsters[idx].AvailableNow = shift.IsWithinShift(catalog.Capsters[idx].Shift, nil, now)
	}

	return dto.FormResponse{Catalog: catalog, CaptchaQuestion: challenge.Question}, nil
}

func (s *serviceImpl) catalog(ctx context.Context) (dto.Catalog, error) {
	var catalog dto.Catalog

	err := s.cache.Get(ctx, cacheKeyCatalog, &catalog)
	if err == nil {
		return catalog, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("failed to read catalog from cache")
	}

	capsters, err := s.capsterRepo.GetAll(ctx, gDto.SortedBy(capsterModel.FieldName), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get capsters")

		return catalog, fmt.Errorf("failed to get capsters: %w", err)
	}

	prices, err := s.priceRepo.GetAll(ctx, gDto.SortedBy(priceModel.FieldName), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get prices")

		return catalog, fmt.Errorf("failed to get prices: %w", err)
	}

	hairModels, err := s.hairModelRepo.GetAll(ctx, gDto.SortedBy(hairModel.FieldTitle), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hair models")

		return catalog, fmt.Errorf("failed to get hair models: %w", err)
	}

	catalog.Capsters = make([]dto.CapsterOption, len(capsters))
	for idx := range capsters {
		catalog.Capsters[idx] = dto.NewCapsterOption(&capsters[idx])
	}

	catalog.Prices = make([]dto.PriceOption, len(prices))
	for idx := range prices {
		catalog.Prices[idx] = dto.NewPriceOption(&prices[idx])
	}

	catalog.HairModels = make([]dto.HairModelOption, len(hairModels))
	for idx := range hairModels {
		catalog.HairModels[idx] = dto.NewHairModelOption(&hairModels[idx])
	}

	// a zero TTL would keep the catalog forever, so it is not cached at all
	if s.cfg.Cache.TTL <= 0 {
		return catalog, nil
	}

	go func(ctx context.Context, catalog dto.Catalog) {
		if err := s.cache.Save(ctx, cacheKeyCatalog, catalog, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to cache catalog")
		}
	}(context.WithoutCancel(ctx), catalog)

	return catalog, nil
}

func (s *serviceImpl) Availability(ctx context.Context, capsterID int64, date string) (dto.AvailabilityResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()

	var bookingDate *time.Time

	if date != "" {
		parsed, err := timezone.ParseDate(date)
		if err != nil {
			return dto.AvailabilityResponse{}, failure.ErrInvalidDate
		}

		bookingDate = &parsed
	}

	capster, err := s.capsterRepo.Get(ctx, shared.FilterByID(capsterID, capsterModel.FieldID, capsterModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get capster")
		scope.TraceError(err)

		return dto.AvailabilityResponse{}, fmt.Errorf("failed to get capster: %w", err)
	}

	if capster.ID == 0 {
		return dto.AvailabilityResponse{}, failure.NotFound("capster not found") //nolint:wrapcheck
	}

	now := s.clock.Now()
	window := capster.Window()

	response := dto.AvailabilityResponse{
		CapsterID: capster.ID,
		Date:      timezone.FormatDate(now),
		Available: shift.IsWithinShift(window, bookingDate, now),
		Shift:     window,
	}

	if bookingDate != nil {
		response.Date = timezone.FormatDate(*bookingDate)
	}

	return response, nil
}

func (s *serviceImpl) captchaTTL() int {
	return positiveOr(s.cfg.App.PublicBooking.CaptchaTTLSeconds, defaultCaptchaTTLSeconds)
}

func (s *serviceImpl) rateLimitMax() int {
	return positiveOr(s.cfg.App.PublicBooking.RateLimitMax, defaultRateLimitMax)
}

func (s *serviceImpl) rateLimitDecay() int {
	return positiveOr(s.cfg.App.PublicBooking.RateLimitDecaySeconds, defaultRateLimitDecaySeconds)
}

func (s *serviceImpl) duplicateWindow() time.Duration {
	return time.Duration(positiveOr(s.cfg.App.PublicBooking.DuplicateWindowMinutes, defaultDuplicateWindowMinutes)) * time.Minute
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}

	return value
}
