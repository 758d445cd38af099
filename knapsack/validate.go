// Package knapsack - input validation.
//
// Validation is declarative: the solve arguments are copied into a tagged
// struct and checked by go-playground/validator. The first violation is
// translated into an *InputError naming the argument (and element index for
// per-item failures), which unwraps to ErrInvalidInput.
package knapsack

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// problemValidate is shared by all solves; validator.Validate is safe for
// concurrent use once configured in init.
var problemValidate *validator.Validate

func init() {
	problemValidate = validator.New(validator.WithRequiredStructEnabled())
	problemValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("arg")
	})
	_ = problemValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects ±Inf and NaN.
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// problem mirrors the arguments of Solve for tag-driven validation.
type problem struct {
	Weights  []float64 `arg:"weights" validate:"required,min=1,dive,gt=0,finite"`
	Values   []float64 `arg:"values" validate:"required,min=1,eqfield=Weights,dive,gt=0,finite"`
	Capacity float64   `arg:"capacity" validate:"gt=0,finite"`
}

// validateProblem checks shape and sign of the solve arguments.
//
// Contract:
//   - weights and values are non-empty and of equal length,
//   - every weight and value is positive and finite,
//   - capacity is positive and finite.
//
// Complexity: O(n).
func validateProblem(weights, values []float64, capacity float64) error {
	err := problemValidate.Struct(problem{Weights: weights, Values: values, Capacity: capacity})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &InputError{Argument: "problem", Index: -1, Reason: err.Error()}
	}

	return toInputError(verrs[0])
}

// toInputError converts one validator.FieldError ("weights[2]" / "gt") into an *InputError.
func toInputError(fe validator.FieldError) *InputError {
	arg, idx := splitIndexedField(fe.Field())

	var reason string
	switch fe.Tag() {
	case "required", "min":
		reason = "must not be empty"
	case "eqfield":
		reason = "length must match weights"
	case "gt":
		reason = "must be positive"
	case "finite":
		reason = "must be finite"
	default:
		reason = "failed " + fe.Tag() + " check"
	}

	return &InputError{Argument: arg, Index: idx, Reason: reason}
}

// splitIndexedField turns "weights[2]" into ("weights", 2) and "capacity" into ("capacity", -1).
func splitIndexedField(field string) (string, int) {
	name, rest, ok := strings.Cut(field, "[")
	if !ok {
		return field, -1
	}
	idx, err := strconv.Atoi(strings.TrimSuffix(rest, "]"))
	if err != nil {
		return name, -1
	}

	return name, idx
}
