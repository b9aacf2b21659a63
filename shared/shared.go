package shared

import (
	"context"
	"errors"
	"estate/shared/cache"
	"estate/shared/constant"
	"estate/shared/dto"
	"estate/shared/timezone"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero, db-tagged fields of a struct into a column map
// and stamps the modification metadata.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterEq builds a single equality filter for use inside a FilterGroup.
func FilterEq(field, table string, value any) dto.Filter {
	return dto.Filter{
		Field:    field,
		Value:    value,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	}
}

const (
	cacheGenerationKey     = "generation"
	initialCacheGeneration = "0"
)

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a stable key from pagination and the rendered filter clause.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return BuildCacheKey(
		prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		fmt.Sprintf("%v", sortedArgs(args)),
	)
}

// CacheNamespace returns scope joined with its current generation. Keys built under the
// namespace are orphaned once InvalidateCaches moves the generation on, so a save that
// lands after an invalidation can never be read back. ok is false when the generation
// cannot be read and the caller should bypass the cache.
func CacheNamespace(ctx context.Context, redisCache cache.RedisCache, scope string) (string, bool) {
	var generation string

	err := redisCache.Get(ctx, BuildCacheKey(scope, cacheGenerationKey), &generation)
	switch {
	case err == nil:
	case errors.Is(err, cache.Nil):
		generation = initialCacheGeneration
	default:
		log.Warn().Err(err).Str("scope", scope).Msg("failed to read cache generation")

		return "", false
	}

	return BuildCacheKey(scope, generation), true
}

// InvalidateCaches moves scope to a fresh generation and then clears the keys of the
// previous one. Failures are logged, never returned: a committed write must not fail on
// the cache.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, scope string) {
	previous, ok := CacheNamespace(ctx, redisCache, scope)

	err := redisCache.Save(ctx, BuildCacheKey(scope, cacheGenerationKey), uuid.NewString(), 0)
	if err != nil {
		log.Error().Err(err).Str("scope", scope).Msg("failed to move cache generation")

		return
	}

	if !ok {
		return
	}

	if err = redisCache.Clear(ctx, BuildCacheKey(previous, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("scope", scope).Msg("failed to clear stale caches")
	}
}

// IsUniqueViolation reports whether err was raised by a unique constraint or unique index.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// ParseDate parses a calendar date (YYYY-MM-DD). Calendar dates are kept at UTC midnight so
// they round-trip through DATE columns without shifting across the session timezone.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return date, nil
}

// DateOf returns the calendar date of t, as seen in t's own location, at UTC midnight.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar date in the application timezone.
func Today() time.Time {
	return DateOf(timezone.Now())
}

// FormatDate renders the calendar date of t without converting it across timezones.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateOnlyFormat)
}

func sortedArgs(args map[string]any) []string {
	pairs := make([]string, 0, len(args))
	for key, value := range args {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}

	slices.Sort(pairs)

	return pairs
}
