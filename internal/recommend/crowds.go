package recommend

import (
	"fmt"
	"slices"
	"strings"
)

// crowdPeriod is a recurring stretch of the year when domestic travel spikes.
type crowdPeriod struct {
	name   string
	months []int
	// states limits the period to these states; empty means nationwide.
	states []string
	note   string
	// priceIncrease is the typical hotel and transport markup, if known.
	priceIncrease string
}

// schoolHolidays are nationwide. Diwali and Holi breaks are covered by festivals.
var schoolHolidays = []crowdPeriod{
	{name: "Summer school holidays", months: []int{4, 5, 6}, note: "Peak family travel season - Hill stations crowded"},
	{name: "Winter school holidays", months: []int{12, 1}, note: "Christmas-New Year rush - All destinations crowded"},
}

// Festival dates move with the lunar calendar; months cover the usual window.
var festivals = []crowdPeriod{
	{name: "Diwali", months: []int{10, 11}, note: "Biggest festival - Book 3 months advance", priceIncrease: "50-100%"},
	{name: "Holi", months: []int{3}, states: []string{"Rajasthan", "Uttar Pradesh", "Punjab"},
		note: "Color festival - Rajasthan extremely crowded", priceIncrease: "30-50%"},
	{name: "Durga Puja", months: []int{9, 10}, states: []string{"West Bengal", "Odisha"},
		note: "Kolkata inaccessible during Pujo", priceIncrease: "40-60%"},
	{name: "Onam", months: []int{8, 9}, states: []string{"Kerala"},
		note: "Kerala festival season", priceIncrease: "30-40%"},
	{name: "Ganesh Chaturthi", months: []int{8, 9}, states: []string{"Maharashtra"},
		note: "Mumbai, Pune very crowded", priceIncrease: "25-35%"},
}

func (p crowdPeriod) applies(month int, state string) bool {
	if !slices.Contains(p.months, month) {
		return false
	}
	if len(p.states) == 0 {
		return true
	}
	return slices.ContainsFunc(p.states, func(s string) bool { return strings.EqualFold(s, state) })
}

// CrowdWarnings lists the school holidays and festivals expected to crowd
// state in month, school holidays first. An invalid month yields nil.
func CrowdWarnings(month int, state string) []string {
	var out []string
	for _, p := range schoolHolidays {
		if p.applies(month, state) {
			out = append(out, fmt.Sprintf("%s: %s", p.name, p.note))
		}
	}
	for _, p := range festivals {
		if p.applies(month, state) {
			out = append(out, fmt.Sprintf("%s: %s (prices up %s)", p.name, p.note, p.priceIncrease))
		}
	}
	return out
}
