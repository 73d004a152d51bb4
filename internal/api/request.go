package api

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/readiness"
	"github.com/neexbeast/tripsaver/internal/scoring"
)

type preferencesBody struct {
	Month      int      `json:"month" validate:"omitempty,min=1,max=12"`
	Budget     string   `json:"budget" validate:"omitempty,oneof=budget moderate premium"`
	Categories []string `json:"categories" validate:"max=20,dive,max=40"`
}

func (p preferencesBody) toPreferences() scoring.Preferences {
	prefs := scoring.Preferences{Month: p.Month, Budget: destination.BudgetTier(p.Budget)}
	for _, c := range p.Categories {
		prefs.Categories = append(prefs.Categories, destination.Category(c))
	}
	return prefs
}

type recommendationBody struct {
	Preferences preferencesBody `json:"preferences"`
	// Trip is checked by the readiness evaluator, which degrades instead of rejecting.
	Trip *readiness.TripContext `json:"trip" validate:"-"`
	TopN int                    `json:"topN" validate:"gte=0,lte=45"`
}

var (
	requestValidator     *validator.Validate
	requestValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	requestValidatorOnce.Do(func() {
		requestValidator = validator.New(validator.WithRequiredStructEnabled())
		requestValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return requestValidator
}

// validateRequest returns one human-readable problem per failed field.
func validateRequest(v any) []string {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		switch fe.Tag() {
		case "min", "gte":
			problems = append(problems, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max", "lte":
			problems = append(problems, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return problems
}

// parsePreferences reads month, budget and a comma-separated categories list.
func parsePreferences(q url.Values) (preferencesBody, error) {
	var p preferencesBody
	if m := strings.TrimSpace(q.Get("month")); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			return p, fmt.Errorf("month must be an integer, got %q", m)
		}
		p.Month = month
	}
	p.Budget = strings.ToLower(strings.TrimSpace(q.Get("budget")))
	for _, c := range strings.Split(q.Get("categories"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			p.Categories = append(p.Categories, c)
		}
	}
	return p, nil
}
