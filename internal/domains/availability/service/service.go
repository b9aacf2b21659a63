package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"estate/config"
	"estate/infras/otel"
	"estate/shared/constant"
	"fmt"
	"slices"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/rs/zerolog/log"
)

const (
	defaultSlotStart   = "09:00"
	defaultSlotEnd     = "18:00"
	defaultSlotMinutes = 30
)

// BookingReader returns the slot labels held by active viewings of a resource on a date.
type BookingReader interface {
	ActiveSlots(ctx context.Context, resourceID string, date time.Time) ([]string, error)
}

type Availability interface {
	GenerateSlots(date time.Time) []string
	IsBookable(date time.Time, slot string) bool
	BookedSlots(ctx context.Context, resourceID string, date time.Time) ([]string, error)
	AvailableSlots(ctx context.Context, resourceID string, date time.Time) (available, booked []string, err error)
}

type serviceImpl struct {
	reader   BookingReader
	calendar *cal.BusinessCalendar
	start    int
	end      int
	step     int
	otel     otel.Otel
}

func New(reader BookingReader, cfg *config.Config, otel otel.Otel) Availability {
	calendar := cal.NewBusinessCalendar()
	if cfg.Scheduling.ObserveHolidays {
		calendar.AddHoliday(
			us.NewYear,
			us.MlkDay,
			us.PresidentsDay,
			us.MemorialDay,
			us.Juneteenth,
			us.IndependenceDay,
			us.LaborDay,
			us.ThanksgivingDay,
			us.ChristmasDay,
		)
	}

	step := cfg.Scheduling.SlotMinutes
	if step <= 0 {
		step = defaultSlotMinutes
	}

	start := parseMinutes(cfg.Scheduling.SlotStart, defaultSlotStart)
	end := parseMinutes(cfg.Scheduling.SlotEnd, defaultSlotEnd)

	if end < start {
		log.Warn().Str("start", cfg.Scheduling.SlotStart).Str("end", cfg.Scheduling.SlotEnd).Msg("slot window is inverted, using defaults")

		start = parseMinutes(defaultSlotStart, defaultSlotStart)
		end = parseMinutes(defaultSlotEnd, defaultSlotEnd)
	}

	return &serviceImpl{
		reader:   reader,
		calendar: calendar,
		start:    start,
		end:      end,
		step:     step,
		otel:     otel,
	}
}

// GenerateSlots lists the bookable labels for date, first to last inclusive. Days that
// are not business days have no slots.
func (s *serviceImpl) GenerateSlots(date time.Time) []string {
	if !s.calendar.IsWorkday(date) {
		return []string{}
	}

	slots := make([]string, 0, (s.end-s.start)/s.step+1)
	for minute := s.start; minute <= s.end; minute += s.step {
		slots = append(slots, fmt.Sprintf("%02d:%02d", minute/constant.MinutesPerHour, minute%constant.MinutesPerHour))
	}

	return slots
}

func (s *serviceImpl) IsBookable(date time.Time, slot string) bool {
	return slices.Contains(s.GenerateSlots(date), slot)
}

func (s *serviceImpl) BookedSlots(ctx context.Context, resourceID string, date time.Time) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookedSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.reader.ActiveSlots(ctx, resourceID, date)
	if err != nil {
		log.Error().Err(err).Str("resourceID", resourceID).Msg("failed to read booked slots")

		return nil, fmt.Errorf("failed to read booked slots: %w", err)
	}

	slices.Sort(res)

	return slices.Compact(res), nil
}

// AvailableSlots returns the generated grid minus the booked labels, keeping grid order.
func (s *serviceImpl) AvailableSlots(ctx context.Context, resourceID string, date time.Time) (available, booked []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booked, err = s.BookedSlots(ctx, resourceID, date)
	if err != nil {
		return nil, nil, err
	}

	available = []string{}
	for _, slot := range s.GenerateSlots(date) {
		if !slices.Contains(booked, slot) {
			available = append(available, slot)
		}
	}

	return available, booked, nil
}

// parseMinutes converts an HH:MM label into minutes after midnight.
func parseMinutes(value, fallback string) int {
	if value == constant.Empty {
		value = fallback
	}

	parsed, err := time.Parse(constant.SlotFormat, value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("invalid slot boundary, using default")

		parsed, _ = time.Parse(constant.SlotFormat, fallback)
	}

	return parsed.Hour()*constant.MinutesPerHour + parsed.Minute()
}
