package recommend

// Tier is the recommendation classification of an overall score.
type Tier string

const (
	HighlyRecommended Tier = "highly-recommended"
	Recommended       Tier = "recommended"
	Consider          Tier = "consider"
	NotRecommended    Tier = "not-recommended"
)

// Classify maps an overall score (0-100) to a tier. Lower bounds are inclusive.
func Classify(score float64) Tier {
	switch {
	case score >= 80:
		return HighlyRecommended
	case score >= 65:
		return Recommended
	case score >= 50:
		return Consider
	default:
		return NotRecommended
	}
}
