package utils

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLengthRange(t *testing.T) {
	v := LengthRange(20, 2000)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"too short", strings.Repeat("a", 19), MsgTooShort},
		{"lower bound", strings.Repeat("a", 20), ""},
		{"upper bound", strings.Repeat("a", 2000), ""},
		{"too long", strings.Repeat("a", 2001), MsgTooLong},
		{"multibyte counts characters", strings.Repeat("é", 20), ""},
		{"empty", "", MsgTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.value)
			if tt.want == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if ve.Message != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, ve.Message)
			}
		})
	}
}

func TestNumericRange(t *testing.T) {
	v := NumericRange(0, 10)

	for _, ok := range []float64{0, 5.5, 10} {
		if err := v.Validate(ok); err != nil {
			t.Errorf("Expected %v to pass, got %v", ok, err)
		}
	}
	for _, bad := range []float64{-0.01, 10.01, 15, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := v.Validate(bad)
		if err == nil || err.Error() != MsgOutOfRange {
			t.Errorf("Expected %v to fail with %q, got %v", bad, MsgOutOfRange, err)
		}
	}
}

func TestMinValue(t *testing.T) {
	v := MinValue(0)

	if err := v.Validate(1e9); err != nil {
		t.Errorf("Expected no upper bound, got %v", err)
	}
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := v.Validate(bad); err == nil {
			t.Errorf("Expected %v to fail", bad)
		}
	}
}

func TestFieldRules_Check(t *testing.T) {
	type sample struct {
		Text  string
		Score float64
	}
	rules := FieldRules[sample]{
		"text":  func(s sample) error { return LengthRange(3, 5).Validate(s.Text) },
		"score": func(s sample) error { return NumericRange(0, 10).Validate(s.Score) },
	}

	if err := rules.Check(sample{Text: "abcd", Score: 3}); err != nil {
		t.Fatalf("Expected valid sample, got %v", err)
	}

	err := rules.Check(sample{Text: "a", Score: 11})
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	// sorted by field name
	if errs[0].Field != "score" || errs[1].Field != "text" {
		t.Errorf("Expected [score text], got [%s %s]", errs[0].Field, errs[1].Field)
	}

	fields := errs.Fields()
	if fields["text"] != MsgTooShort || fields["score"] != MsgOutOfRange {
		t.Errorf("Unexpected field messages: %v", fields)
	}
	if !strings.HasPrefix(err.Error(), "validation failed: ") {
		t.Errorf("Expected validation failed prefix, got %q", err.Error())
	}
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"title": "required", "cover": "required"})
	want := "cover: required; title: required"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
