package utils

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MsgTooShort   = "too short"
	MsgTooLong    = "too long"
	MsgOutOfRange = "out of range"
	MsgInvalid    = "invalid choice"
)

// ValidationError is a rejected write on a single field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failing field of one write.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i := range e {
		parts[i] = e[i].Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the errors keyed by field, the shape handlers respond with.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// LengthRangeValidator bounds the character count of a string.
type LengthRangeValidator struct {
	Min int
	Max int
}

func LengthRange(min, max int) LengthRangeValidator {
	return LengthRangeValidator{Min: min, Max: max}
}

func (v LengthRangeValidator) Validate(value string) error {
	n := utf8.RuneCountInString(value)
	switch {
	case n < v.Min:
		return &ValidationError{Message: MsgTooShort}
	case n > v.Max:
		return &ValidationError{Message: MsgTooLong}
	}
	return nil
}

// MinMaxValidator bounds a number. Without an upper bound only Min is checked.
type MinMaxValidator struct {
	Min    float64
	Max    float64
	HasMax bool
}

func NumericRange(min, max float64) MinMaxValidator {
	return MinMaxValidator{Min: min, Max: max, HasMax: true}
}

func MinValue(min float64) MinMaxValidator {
	return MinMaxValidator{Min: min}
}

func (v MinMaxValidator) Validate(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < v.Min || (v.HasMax && value > v.Max) {
		return &ValidationError{Message: MsgOutOfRange}
	}
	return nil
}

// FieldRules maps a field name to the check run against a value of T on write.
type FieldRules[T any] map[string]func(T) error

// Check runs every rule in field-name order and returns ValidationErrors or nil.
func (rules FieldRules[T]) Check(value T) error {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var errs ValidationErrors
	for _, field := range fields {
		err := rules[field](value)
		if err == nil {
			continue
		}
		fe := ValidationError{Field: field, Message: err.Error()}
		var ve *ValidationError
		if errors.As(err, &ve) {
			fe.Message = ve.Message
		}
		errs = append(errs, fe)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
