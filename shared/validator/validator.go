// Package validator decodes request bodies and checks them against their
// go-playground/validator struct tags. Every failure comes back as a 400 failure.Failure
// naming the first offending field by its JSON name.
package validator

import (
	"encoding/json"
	"errors"
	"estate/shared/constant"
	"estate/shared/failure"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]val.Func{
		"date": isDate,
		"slot": isSlot,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// isDate accepts calendar dates in YYYY-MM-DD form.
func isDate(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

// isSlot accepts zero padded HH:MM wall-clock labels.
func isSlot(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	parsed, err := time.Parse(constant.SlotFormat, value)

	return err == nil && parsed.Format(constant.SlotFormat) == value
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// Validate decodes a JSON body from r into data and validates it. An empty body
// decodes to the zero value, so required fields still reject it.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	return asFailure(validate.Struct(data), "")
}

// ValidateVar checks a single value against tag, e.g. ValidateVar(date, "required,date").
func ValidateVar(field any, tag string) error {
	return asFailure(validate.Var(field, tag), "value")
}

// ValidateParam is ValidateVar for a named request parameter; the message names it.
func ValidateParam(name string, field any, tag string) error {
	return asFailure(validate.Var(field, tag), name)
}

func asFailure(err error, field string) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err, field)) //nolint:wrapcheck
}
