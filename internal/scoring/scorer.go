// Package scoring rates a single destination against a traveller's preferences.
//
// Four factors are evaluated independently and summed on a 100-point scale:
//
//	timing     30  best month 30, neutral month 10, avoid month 0
//	budget     25  exact tier match
//	interests  30  10 per matching tag, at most 3 tags
//	climate    15  comfort of the destination climate in the travel month
//
// When the traveller names no interests the interests factor is skipped and
// its points are removed from the maximum instead of scoring zero.
package scoring

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/neexbeast/tripsaver/internal/destination"
)

const (
	MaxTiming    = 30
	NeutralMonth = 10
	MaxBudget    = 25
	MaxInterests = 30
	PerInterest  = 10
	MaxClimate   = 15
	PartClimate  = 8

	// MaxTotal is the nominal maximum destination score.
	MaxTotal = MaxTiming + MaxBudget + MaxInterests + MaxClimate
)

// Factor names, in evaluation order.
const (
	FactorTiming    = "timing"
	FactorBudget    = "budget"
	FactorInterests = "interests"
	FactorClimate   = "climate"
)

// Badges.
const (
	BadgePerfectSeason   = "Perfect Season"
	BadgeGoodTiming      = "Good Timing"
	BadgeBudgetMatch     = "Budget Match"
	BadgeGreatMatch      = "Great Match"
	BadgeIdealWeather    = "Ideal Weather"
	BadgePleasantWeather = "Pleasant Weather"
)

// Status describes how much of a factor's maximum was awarded.
type Status string

const (
	StatusFull    Status = "full"
	StatusPartial Status = "partial"
	StatusNone    Status = "none"
	StatusSkipped Status = "skipped"
)

// Preferences is what the traveller asked for. A zero Month means "any month".
type Preferences struct {
	Month      int                    `json:"month"`
	Budget     destination.BudgetTier `json:"budget"`
	Categories []destination.Category `json:"categories"`
}

// Factor is one line of the score breakdown.
type Factor struct {
	Name      string `json:"factor"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"maxPoints"`
	Status    Status `json:"status"`
}

// Result is the outcome of scoring one destination.
type Result struct {
	Score int `json:"score"`
	// MaxScore is the applicable maximum: MaxTotal, or less when a factor is skipped.
	MaxScore  int      `json:"maxScore"`
	Percent   float64  `json:"percent"`
	Badges    []string `json:"badges"`
	Reasons   []string `json:"reasons"`
	Warnings  []string `json:"warnings,omitempty"`
	Breakdown []Factor `json:"breakdown"`
}

// Scorer evaluates destinations. It holds no per-call state and is safe for concurrent use.
type Scorer struct {
	log *slog.Logger
}

// NewScorer constructs a Scorer that reports ambiguous catalog data to log.
func NewScorer(log *slog.Logger) *Scorer {
	if log == nil {
		log = slog.Default()
	}
	return &Scorer{log: log}
}

// Score rates d against prefs. It never fails: missing destination fields
// contribute zero to their factor.
func (s *Scorer) Score(d destination.Destination, prefs Preferences) Result {
	var res Result

	factors := []Factor{
		s.timing(d, prefs, &res),
		budget(d, prefs, &res),
		interests(d, prefs, &res),
		climate(d, prefs, &res),
	}

	for _, f := range factors {
		res.Score += f.Points
		if f.Status != StatusSkipped {
			res.MaxScore += f.MaxPoints
		}
	}
	if res.MaxScore > 0 {
		res.Percent = float64(res.Score) * 100 / float64(res.MaxScore)
	}
	res.Breakdown = factors
	if res.Badges == nil {
		res.Badges = []string{}
	}
	if res.Reasons == nil {
		res.Reasons = []string{}
	}

	return res
}

func (s *Scorer) timing(d destination.Destination, prefs Preferences, res *Result) Factor {
	f := Factor{Name: FactorTiming, MaxPoints: MaxTiming, Status: StatusNone}
	month := prefs.Month
	if !destination.ValidMonth(month) || len(d.BestMonths) == 0 {
		return f
	}

	best, avoid := d.IsBestMonth(month), d.IsAvoidMonth(month)
	switch {
	case avoid:
		if best {
			s.log.Warn("month listed as both best and avoid, treating as avoid",
				"destination", d.ID, "month", month)
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s is listed as both a best and an avoid month; treated as avoid", destination.MonthName(month)))
		}
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Not an ideal time to visit in %s", destination.MonthName(month)))
	case best:
		f.Points, f.Status = MaxTiming, StatusFull
		res.Badges = append(res.Badges, BadgePerfectSeason)
		res.Reasons = append(res.Reasons, "✓ Perfect time to visit")
	default:
		f.Points, f.Status = NeutralMonth, StatusPartial
		res.Badges = append(res.Badges, BadgeGoodTiming)
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("✓ Decent time to visit in %s", destination.MonthName(month)))
	}
	return f
}

func budget(d destination.Destination, prefs Preferences, res *Result) Factor {
	f := Factor{Name: FactorBudget, MaxPoints: MaxBudget, Status: StatusNone}
	if d.Budget == "" || d.Budget != prefs.Budget {
		return f
	}
	f.Points, f.Status = MaxBudget, StatusFull
	res.Badges = append(res.Badges, BadgeBudgetMatch)
	res.Reasons = append(res.Reasons, "✓ Matches your budget")
	return f
}

func interests(d destination.Destination, prefs Preferences, res *Result) Factor {
	f := Factor{Name: FactorInterests, MaxPoints: MaxInterests, Status: StatusNone}

	wanted := make(map[string]struct{}, len(prefs.Categories))
	for _, c := range prefs.Categories {
		if k := normalize(c); k != "" {
			wanted[k] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		f.Status = StatusSkipped
		return f
	}

	matches := 0
	seen := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		k := normalize(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := wanted[k]; ok {
			matches++
		}
	}
	if matches == 0 {
		return f
	}

	f.Points = min(matches*PerInterest, MaxInterests)
	f.Status = StatusPartial
	if f.Points == MaxInterests {
		f.Status = StatusFull
	}
	plural := ""
	if matches > 1 {
		plural = "s"
	}
	res.Badges = append(res.Badges, BadgeGreatMatch)
	res.Reasons = append(res.Reasons, fmt.Sprintf("✓ %d matching interest%s", matches, plural))
	return f
}

func climate(d destination.Destination, prefs Preferences, res *Result) Factor {
	f := Factor{Name: FactorClimate, MaxPoints: MaxClimate, Status: StatusNone}
	if !destination.ValidMonth(prefs.Month) {
		return f
	}

	switch comfort(d.Climate, prefs.Month) {
	case MaxClimate:
		f.Points, f.Status = MaxClimate, StatusFull
		res.Badges = append(res.Badges, BadgeIdealWeather)
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("✓ Comfortable climate in %s", destination.MonthName(prefs.Month)))
	case PartClimate:
		f.Points, f.Status = PartClimate, StatusPartial
		res.Badges = append(res.Badges, BadgePleasantWeather)
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("✓ Manageable weather in %s", destination.MonthName(prefs.Month)))
	}
	return f
}

func normalize(c destination.Category) string {
	return strings.ToLower(strings.TrimSpace(string(c)))
}
