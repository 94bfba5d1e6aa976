package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/theirongolddev/pdash/internal/model"
)

// Form field keys shared by the TUI form, CLI flags and the HTTP form.
const (
	FieldName     = "name"
	FieldBudget   = "budget"
	FieldSpent    = "spent"
	FieldPlanned  = "planned_months"
	FieldActual   = "actual_months"
	FieldProgress = "progress_percent"
	FieldRisks    = "risks"
)

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of one submission.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid inputs: " + strings.Join(parts, "; ")
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	sort.SliceStable(e.Fields, func(i, j int) bool {
		return fieldOrder(e.Fields[i].Field) < fieldOrder(e.Fields[j].Field)
	})
	return e
}

func fieldOrder(f string) int {
	switch f {
	case FieldName:
		return 0
	case FieldBudget:
		return 1
	case FieldSpent:
		return 2
	case FieldPlanned:
		return 3
	case FieldActual:
		return 4
	case FieldProgress:
		return 5
	default:
		return 6
	}
}

// Validate applies the form constraints: non-negative money, at least one
// planned month, non-negative elapsed months and progress within 0-100.
func Validate(in model.ProjectInputs) error {
	ve := &ValidationError{}
	checkAmount(ve, FieldBudget, in.Budget)
	checkAmount(ve, FieldSpent, in.Spent)
	if in.PlannedMonths < 1 {
		ve.add(FieldPlanned, "must be at least 1, got %d", in.PlannedMonths)
	}
	if in.ActualMonths < 0 {
		ve.add(FieldActual, "must not be negative, got %d", in.ActualMonths)
	}
	if in.ProgressPercent < 0 || in.ProgressPercent > 100 {
		ve.add(FieldProgress, "must be between 0 and 100, got %d", in.ProgressPercent)
	}
	return ve.orNil()
}

func checkAmount(ve *ValidationError, field string, v float64) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		ve.add(field, "must be a finite number")
	case v < 0:
		ve.add(field, "must not be negative, got %g", v)
	}
}

// ParseInputs reads form values keyed by the Field constants on top of base.
// Missing or blank keys keep the base value. Unparseable numbers and
// constraint violations are returned together as a *ValidationError.
func ParseInputs(values map[string]string, base model.ProjectInputs) (model.ProjectInputs, error) {
	in := base
	ve := &ValidationError{}

	if v, ok := values[FieldName]; ok {
		in.Name = strings.TrimSpace(v)
	}
	if v, ok := values[FieldRisks]; ok {
		in.RisksRaw = v
	}

	parseFloat(ve, values, FieldBudget, &in.Budget)
	parseFloat(ve, values, FieldSpent, &in.Spent)
	parseInt(ve, values, FieldPlanned, &in.PlannedMonths)
	parseInt(ve, values, FieldActual, &in.ActualMonths)
	parseInt(ve, values, FieldProgress, &in.ProgressPercent)

	if err := ve.orNil(); err != nil {
		return base, err
	}
	if err := Validate(in); err != nil {
		return base, err
	}
	return in, nil
}

// NoUpperBound disables the upper limit of CheckWholeNumber.
const NoUpperBound = math.MaxInt

// CheckAmount validates a money field as typed into a form: required,
// numeric in any form ParseAmount accepts, and not negative.
func CheckAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	v, err := ParseAmount(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// CheckWholeNumber returns a form validator accepting whole numbers in
// [lo, hi].
func CheckWholeNumber(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo {
			return fmt.Errorf("must be at least %d", lo)
		}
		if n > hi {
			return fmt.Errorf("must be at most %d", hi)
		}
		return nil
	}
}

// ParseAmount accepts plain numbers and the "1,000,000" / "$400,000" forms
// the dashboard prints.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	return strconv.ParseFloat(s, 64)
}

func parseFloat(ve *ValidationError, values map[string]string, field string, dst *float64) {
	raw, ok := values[field]
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	v, err := ParseAmount(raw)
	if err != nil {
		ve.add(field, "not a number: %q", raw)
		return
	}
	*dst = v
}

func parseInt(ve *ValidationError, values map[string]string, field string, dst *int) {
	raw, ok := values[field]
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		ve.add(field, "not a whole number: %q", raw)
		return
	}
	*dst = v
}
