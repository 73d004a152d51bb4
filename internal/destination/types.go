package destination

import "slices"

// BudgetTier is the price band a destination (or traveller) sits in.
type BudgetTier string

const (
	BudgetLow      BudgetTier = "budget"
	BudgetModerate BudgetTier = "moderate"
	BudgetPremium  BudgetTier = "premium"
)

// Valid reports whether b is one of the known tiers.
func (b BudgetTier) Valid() bool {
	switch b {
	case BudgetLow, BudgetModerate, BudgetPremium:
		return true
	}
	return false
}

// Climate is the dominant climate classification of a destination.
type Climate string

const (
	ClimateTropical   Climate = "tropical"
	ClimateCold       Climate = "cold"
	ClimateHot        Climate = "hot"
	ClimateModerate   Climate = "moderate"
	ClimateHumid      Climate = "humid"
	ClimateCool       Climate = "cool"
	ClimateExtreme    Climate = "extreme"
	ClimateColdDesert Climate = "cold_desert"
	ClimateWet        Climate = "wet"
)

// Category is an interest tag shared by destinations and user preferences.
type Category string

const (
	CategoryBeach      Category = "Beach"
	CategoryMountain   Category = "Mountain"
	CategoryHill       Category = "Hill"
	CategoryHeritage   Category = "Heritage"
	CategorySpiritual  Category = "Spiritual"
	CategoryAdventure  Category = "Adventure"
	CategoryNature     Category = "Nature"
	CategoryWildlife   Category = "Wildlife"
	CategoryCity       Category = "City"
	CategoryCoastal    Category = "Coastal"
	CategoryBackwaters Category = "Backwaters"
	CategoryParty      Category = "Party"
	CategoryRomantic   Category = "Romantic"
	CategorySnow       Category = "Snow"
	CategorySki        Category = "Ski"
	CategoryColonial   Category = "Colonial"
	CategoryIsland     Category = "Island"
	CategoryCulture    Category = "Culture"
)

// Destination is an immutable catalog record.
type Destination struct {
	ID          string     `json:"id"`
	State       string     `json:"state"`
	Categories  []Category `json:"categories"`
	BestMonths  []int      `json:"bestMonths"`
	AvoidMonths []int      `json:"avoidMonths"`
	Climate     Climate    `json:"climate"`
	Budget      BudgetTier `json:"budget"`
	// BookingSlug is the partner city slug used by the affiliate link builder.
	BookingSlug string `json:"bookingSlug"`
}

// IsBestMonth reports whether month is listed in BestMonths.
func (d Destination) IsBestMonth(month int) bool {
	return slices.Contains(d.BestMonths, month)
}

// IsAvoidMonth reports whether month is listed in AvoidMonths.
func (d Destination) IsAvoidMonth(month int) bool {
	return slices.Contains(d.AvoidMonths, month)
}

// HasCategory reports whether the destination is tagged with c.
func (d Destination) HasCategory(c Category) bool {
	return slices.Contains(d.Categories, c)
}

// clone returns a deep copy so callers never share slices with a Catalog.
func (d Destination) clone() Destination {
	d.Categories = slices.Clone(d.Categories)
	d.BestMonths = slices.Clone(d.BestMonths)
	d.AvoidMonths = slices.Clone(d.AvoidMonths)
	return d
}

// ValidMonth reports whether m is a calendar month number.
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for m, or "" when m is out of range.
func MonthName(m int) string {
	if !ValidMonth(m) {
		return ""
	}
	return monthNames[m-1]
}
