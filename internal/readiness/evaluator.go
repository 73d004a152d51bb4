// Package readiness scores how prepared a traveller is for a trip.
// Four factors of 25 points each: budget, documents, timing, seasonality.
package readiness

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/neexbeast/tripsaver/internal/metrics"
)

const factorMax = 25

// Factor categories, in evaluation order.
const (
	CategoryBudget    = "Budget Preparedness"
	CategoryDocuments = "Document Readiness"
	CategoryTiming    = "Timing & Planning"
	CategorySeasonal  = "Seasonal Timing"
)

// Preparation estimates, from longest to shortest.
const (
	PrepPassport  = "4-8 weeks (passport processing)"
	PrepCritical  = "2-4 weeks"
	PrepAttention = "1-2 weeks"
	PrepReady     = "3-5 days"
)

// Evaluator computes readiness results. It is stateless and safe for concurrent use.
type Evaluator struct {
	log *slog.Logger
}

// NewEvaluator constructs an Evaluator.
func NewEvaluator(log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.Default()
	}
	return &Evaluator{log: log}
}

// Evaluate scores tc as of now. It returns *InvalidInputError when budget,
// departure date or destination type are missing.
func (e *Evaluator) Evaluate(tc TripContext, now time.Time) (*Result, error) {
	if err := Validate(tc); err != nil {
		metrics.ReadinessEvaluations.WithLabelValues("invalid").Inc()
		return nil, err
	}

	var actions []string
	passportIssue := false

	scores := []FactorScore{
		evaluateBudget(*tc.Budget, &actions),
		evaluateDocuments(tc, now, &actions, &passportIssue),
		evaluateTiming(*tc.Timing, now, &actions),
		evaluateSeasonal(tc.Destination.Seasonality, &actions),
	}

	total, maxTotal := 0, 0
	critical, attention := 0, 0
	for _, s := range scores {
		total += s.Score
		maxTotal += s.MaxScore
		switch s.Status {
		case Critical:
			critical++
		case NeedsAttention:
			attention++
		}
	}
	overall := int(math.Round(float64(total) / float64(maxTotal) * 100))

	res := &Result{
		OverallScore:             overall,
		OverallStatus:            overallStatus(overall),
		Scores:                   scores,
		ActionItems:              actions,
		EstimatedPreparationTime: preparationTime(critical, attention, passportIssue && tc.Destination.Type == International),
		DaysUntilDeparture:       daysBetween(now, tc.Timing.DepartureDate),
		EvaluatedAt:              now,
	}
	if res.ActionItems == nil {
		res.ActionItems = []string{}
	}
	if rd := tc.Timing.ReturnDate; rd != nil {
		res.TripLengthDays = daysBetween(tc.Timing.DepartureDate, *rd)
	}

	metrics.ReadinessEvaluations.WithLabelValues("ok").Inc()
	e.log.Debug("trip readiness evaluated", "score", overall, "status", res.OverallStatus)
	return res, nil
}

func evaluateBudget(b Budget, actions *[]string) FactorScore {
	fs := FactorScore{Category: CategoryBudget, MaxScore: factorMax}

	if b.Estimated <= 0 {
		fs.Score, fs.Status = 15, NeedsAttention
		fs.Recommendations = []string{"Estimated trip cost is missing"}
		*actions = append(*actions, "Provide an estimated trip cost to assess budget readiness")
		return fs
	}

	shortfall := int(math.Round(b.Estimated - b.Available))
	switch ratio := b.Available / b.Estimated; {
	case ratio >= 1.2:
		fs.Score, fs.Status = 25, Excellent
		fs.Recommendations = []string{"You have a comfortable budget buffer"}
	case ratio >= 1.0:
		fs.Score, fs.Status = 22, Good
		fs.Recommendations = []string{"Budget is adequate with a small buffer"}
	case ratio >= 0.8:
		fs.Score, fs.Status = 15, NeedsAttention
		fs.Recommendations = []string{"Consider saving 20% more for comfort"}
		*actions = append(*actions, fmt.Sprintf("Save an additional %d for a trip buffer", shortfall))
	default:
		fs.Score, fs.Status = 8, Critical
		fs.Recommendations = []string{"Significant budget gap - postpone or reduce scope"}
		*actions = append(*actions, fmt.Sprintf("URGENT: Need %d more to meet the estimated budget", shortfall))
	}
	return fs
}

func evaluateDocuments(tc TripContext, now time.Time, actions *[]string, passportIssue *bool) FactorScore {
	fs := FactorScore{Category: CategoryDocuments, MaxScore: factorMax, Status: Excellent}

	if tc.Destination.Type == Domestic {
		fs.Score = factorMax
		fs.Recommendations = []string{"No special documents required for domestic travel"}
		return fs
	}

	// Passport: up to 15.
	pp := tc.Documents.Passport
	switch {
	case pp == nil || !pp.Valid:
		fs.Status = Critical
		*passportIssue = true
		fs.Recommendations = append(fs.Recommendations, "Valid passport required")
		*actions = append(*actions, "Apply for passport (4-6 weeks processing)")
	case pp.ExpiryDate == nil:
		fs.Score += 10
		fs.Status = worse(fs.Status, NeedsAttention)
		fs.Recommendations = append(fs.Recommendations, "Passport expiry date unknown")
		*actions = append(*actions, "Confirm your passport expiry date")
	default:
		switch months := monthsBetween(now, *pp.ExpiryDate); {
		case months >= 6:
			fs.Score += 15
			fs.Recommendations = append(fs.Recommendations, "Passport is valid")
		case months >= 3:
			fs.Score += 10
			fs.Status = worse(fs.Status, NeedsAttention)
			fs.Recommendations = append(fs.Recommendations, "Passport expires soon - consider renewal")
			*actions = append(*actions, "Renew passport - expires in less than 6 months")
		default:
			fs.Score += 3
			fs.Status = Critical
			*passportIssue = true
			fs.Recommendations = append(fs.Recommendations, "Passport renewal urgent")
			*actions = append(*actions, "URGENT: Renew passport immediately")
		}
	}

	// Visa: up to 10.
	if v := tc.Documents.Visa; v != nil && v.Required && !v.Valid {
		fs.Status = Critical
		fs.Recommendations = append(fs.Recommendations, "Visa required but not obtained")
		*actions = append(*actions, "Apply for visa (processing time varies)")
	} else {
		fs.Score += 10
		if v != nil && v.Required {
			fs.Recommendations = append(fs.Recommendations, "Visa is valid")
		} else {
			fs.Recommendations = append(fs.Recommendations, "No visa required or visa-on-arrival available")
		}
	}

	return fs
}

func evaluateTiming(t Timing, now time.Time, actions *[]string) FactorScore {
	fs := FactorScore{Category: CategoryTiming, MaxScore: factorMax}

	// Lead time: up to 15.
	switch days := daysBetween(now, t.DepartureDate); {
	case days >= 60:
		fs.Score, fs.Status = 15, Excellent
		fs.Recommendations = append(fs.Recommendations, "Excellent planning lead time")
	case days >= 30:
		fs.Score, fs.Status = 12, Good
		fs.Recommendations = append(fs.Recommendations, "Good planning time for bookings")
	case days >= 14:
		fs.Score, fs.Status = 8, NeedsAttention
		fs.Recommendations = append(fs.Recommendations, "Book soon to avoid price surge")
		*actions = append(*actions, "Book flights and hotels within 3 days")
	default:
		fs.Score, fs.Status = 4, Critical
		fs.Recommendations = append(fs.Recommendations, "Very short notice - limited availability")
		*actions = append(*actions, "URGENT: Book immediately - very limited time")
	}

	// Flexibility: up to 10. Unspecified counts as fixed.
	switch t.Flexibility {
	case VeryFlexible:
		fs.Score += 10
		fs.Recommendations = append(fs.Recommendations, "High flexibility helps find best deals")
	case Flexible:
		fs.Score += 7
		fs.Recommendations = append(fs.Recommendations, "Some flexibility available")
	default:
		fs.Score += 3
		fs.Recommendations = append(fs.Recommendations, "Fixed dates may limit options")
	}

	return fs
}

func evaluateSeasonal(s Seasonality, actions *[]string) FactorScore {
	fs := FactorScore{Category: CategorySeasonal, MaxScore: factorMax}

	switch s {
	case OffPeak:
		fs.Score, fs.Status = 25, Excellent
		fs.Recommendations = []string{"Off-peak: Best prices and fewer crowds", "Great value for money"}
	case Peak:
		fs.Score, fs.Status = 12, NeedsAttention
		fs.Recommendations = []string{"Peak season: Higher prices expected", "Book early for better rates"}
		*actions = append(*actions, "Consider travel insurance due to peak season crowds")
	case Shoulder:
		fs.Score, fs.Status = 20, Good
		fs.Recommendations = []string{"Shoulder season: Good balance of weather and prices"}
	default:
		fs.Score, fs.Status = 20, Good
		fs.Recommendations = []string{"Seasonality unknown; assuming shoulder season"}
	}
	return fs
}

func overallStatus(pct int) OverallStatus {
	switch {
	case pct >= 85:
		return Ready
	case pct >= 70:
		return AlmostReady
	case pct >= 50:
		return NeedsPreparation
	default:
		return NotReady
	}
}

// preparationTime maps the critical/needs-attention tally onto an estimate band.
func preparationTime(critical, attention int, passportIssue bool) string {
	switch {
	case critical > 0 && passportIssue:
		return PrepPassport
	case critical > 0:
		return PrepCritical
	case attention > 0:
		return PrepAttention
	default:
		return PrepReady
	}
}

// daysBetween rounds partial days up, so departure later today is 1 day away.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// monthsBetween counts calendar months from from to to. The day of the
// month is ignored: Mar 31 to Apr 1 is one month.
func monthsBetween(from, to time.Time) int {
	to = to.In(from.Location())
	return (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
}
