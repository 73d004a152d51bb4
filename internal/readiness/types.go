package readiness

import "time"

// TripType distinguishes trips that need travel documents.
type TripType string

const (
	Domestic      TripType = "domestic"
	International TripType = "international"
)

// Seasonality of the destination at the time of travel.
type Seasonality string

const (
	Peak     Seasonality = "peak"
	OffPeak  Seasonality = "off-peak"
	Shoulder Seasonality = "shoulder"
)

// Flexibility of the traveller's dates.
type Flexibility string

const (
	Fixed        Flexibility = "fixed"
	Flexible     Flexibility = "flexible"
	VeryFlexible Flexibility = "very-flexible"
)

// Status grades a single factor.
type Status string

const (
	Excellent      Status = "excellent"
	Good           Status = "good"
	NeedsAttention Status = "needs-attention"
	Critical       Status = "critical"
)

// rank orders statuses from best to worst.
func (s Status) rank() int {
	switch s {
	case Good:
		return 1
	case NeedsAttention:
		return 2
	case Critical:
		return 3
	default:
		return 0
	}
}

func worse(a, b Status) Status {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// OverallStatus grades the whole trip.
type OverallStatus string

const (
	Ready            OverallStatus = "ready"
	AlmostReady      OverallStatus = "almost-ready"
	NeedsPreparation OverallStatus = "needs-preparation"
	NotReady         OverallStatus = "not-ready"
)

// Budget is currency-agnostic; both figures use the same unit.
type Budget struct {
	Available float64 `json:"available" validate:"gte=0"`
	Estimated float64 `json:"estimated" validate:"gte=0"`
}

type Passport struct {
	Valid      bool       `json:"valid"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

type Visa struct {
	Required bool `json:"required"`
	Valid    bool `json:"valid"`
}

// Documents is only consulted for international trips.
type Documents struct {
	Passport *Passport `json:"passport,omitempty"`
	Visa     *Visa     `json:"visa,omitempty"`
}

type Timing struct {
	DepartureDate time.Time   `json:"departureDate" validate:"required"`
	ReturnDate    *time.Time  `json:"returnDate,omitempty"`
	Flexibility   Flexibility `json:"flexibility,omitempty" validate:"omitempty,oneof=fixed flexible very-flexible"`
}

type TripDestination struct {
	Type        TripType    `json:"type" validate:"required,oneof=domestic international"`
	Seasonality Seasonality `json:"seasonality,omitempty" validate:"omitempty,oneof=peak off-peak shoulder"`
}

// TripContext describes the traveller's situation. Budget, Timing and
// Destination are required; everything else has a documented default.
type TripContext struct {
	Budget      *Budget          `json:"budget" validate:"required"`
	Documents   Documents        `json:"documents"`
	Timing      *Timing          `json:"timing" validate:"required"`
	Destination *TripDestination `json:"destination" validate:"required"`
}

// FactorScore is the outcome of one readiness factor.
type FactorScore struct {
	Category        string   `json:"category"`
	Score           int      `json:"score"`
	MaxScore        int      `json:"maxScore"`
	Status          Status   `json:"status"`
	Recommendations []string `json:"recommendations"`
}

// Result is a complete readiness evaluation.
type Result struct {
	OverallScore             int           `json:"overallScore"`
	OverallStatus            OverallStatus `json:"overallStatus"`
	Scores                   []FactorScore `json:"scores"`
	ActionItems              []string      `json:"actionItems"`
	EstimatedPreparationTime string        `json:"estimatedPreparationTime"`
	DaysUntilDeparture       int           `json:"daysUntilDeparture"`
	TripLengthDays           int           `json:"tripLengthDays,omitempty"`
	EvaluatedAt              time.Time     `json:"evaluatedAt"`
}
