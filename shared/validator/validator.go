package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	"staysync/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	validate      *val.Validate
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

func registerStayDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(time.DateOnly, value)

	return err == nil
}

func registerCurrencyValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)

	return ok && currencyRegex.MatchString(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("stay_date", registerStayDateValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("iso_currency", registerCurrencyValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
