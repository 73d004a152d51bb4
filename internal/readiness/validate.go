package readiness

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// InvalidInputError reports a trip context that cannot be evaluated.
type InvalidInputError struct {
	Problems []string
}

func (e *InvalidInputError) Error() string {
	return "invalid trip context: " + strings.Join(e.Problems, "; ")
}

// Validate checks tc for the fields required by Evaluate.
func Validate(tc TripContext) error {
	var problems []string

	if err := getValidator().Struct(tc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating trip context: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	if tc.Timing != nil && tc.Timing.ReturnDate != nil && !tc.Timing.DepartureDate.IsZero() &&
		tc.Timing.ReturnDate.Before(tc.Timing.DepartureDate) {
		problems = append(problems, "timing.returnDate must not be before timing.departureDate")
	}

	if len(problems) > 0 {
		return &InvalidInputError{Problems: problems}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
