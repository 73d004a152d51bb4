package scoring

import "github.com/neexbeast/tripsaver/internal/destination"

type season int

const (
	winter  season = iota // Dec-Feb
	spring                // Mar
	summer                // Apr-Jun
	monsoon               // Jul-Sep
	autumn                // Oct-Nov
)

func seasonOf(month int) season {
	switch month {
	case 12, 1, 2:
		return winter
	case 3:
		return spring
	case 4, 5, 6:
		return summer
	case 7, 8, 9:
		return monsoon
	default:
		return autumn
	}
}

// comfortTable maps climate to the points awarded in each season,
// indexed winter, spring, summer, monsoon, autumn.
var comfortTable = map[destination.Climate][5]int{
	destination.ClimateTropical:   {MaxClimate, PartClimate, 0, 0, PartClimate},
	destination.ClimateHumid:      {MaxClimate, PartClimate, 0, 0, PartClimate},
	destination.ClimateHot:        {MaxClimate, PartClimate, 0, PartClimate, PartClimate},
	destination.ClimateCold:       {0, PartClimate, MaxClimate, PartClimate, PartClimate},
	destination.ClimateColdDesert: {0, PartClimate, MaxClimate, MaxClimate, PartClimate},
	destination.ClimateCool:       {PartClimate, MaxClimate, MaxClimate, 0, MaxClimate},
	destination.ClimateModerate:   {MaxClimate, MaxClimate, PartClimate, PartClimate, MaxClimate},
	destination.ClimateExtreme:    {PartClimate, MaxClimate, 0, 0, MaxClimate},
	destination.ClimateWet:        {MaxClimate, PartClimate, PartClimate, 0, PartClimate},
}

// comfort returns the climate points for c in month. Unknown climates score 0.
func comfort(c destination.Climate, month int) int {
	row, ok := comfortTable[c]
	if !ok {
		return 0
	}
	return row[seasonOf(month)]
}
