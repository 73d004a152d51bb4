package destination

// staticRecords is the built-in Indian destination dataset. It backs the
// static source and seeds the relational store.
var staticRecords = []Destination{
	{
		ID:          "goa",
		State:       "Goa",
		Categories:  []Category{CategoryBeach, CategoryParty},
		BestMonths:  []int{11, 12, 1, 2},
		AvoidMonths: []int{6, 7, 8},
		Climate:     ClimateTropical,
		Budget:      BudgetModerate,
		BookingSlug: "goa-in",
	},
	{
		ID:          "mumbai",
		State:       "Maharashtra",
		Categories:  []Category{CategoryCity, CategoryCoastal},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7, 8},
		Climate:     ClimateHumid,
		Budget:      BudgetPremium,
		BookingSlug: "mumbai-in",
	},
	{
		ID:          "pune",
		State:       "Maharashtra",
		Categories:  []Category{CategoryCity, CategoryHill},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7, 8},
		Climate:     ClimateModerate,
		Budget:      BudgetModerate,
		BookingSlug: "pune-in",
	},
	{
		ID:          "mahabaleshwar",
		State:       "Maharashtra",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "mahabaleshwar-in",
	},
	{
		ID:          "lonavala",
		State:       "Maharashtra",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCool,
		Budget:      BudgetLow,
		BookingSlug: "lonavala-in",
	},
	{
		ID:          "manali",
		State:       "Himachal Pradesh",
		Categories:  []Category{CategoryMountain, CategorySnow},
		BestMonths:  []int{3, 4, 5, 10},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCold,
		Budget:      BudgetLow,
		BookingSlug: "manali-in",
	},
	{
		ID:          "shimla",
		State:       "Himachal Pradesh",
		Categories:  []Category{CategoryHill, CategoryColonial},
		BestMonths:  []int{3, 4, 5, 10},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCold,
		Budget:      BudgetLow,
		BookingSlug: "shimla-in",
	},
	{
		ID:          "rishikesh",
		State:       "Uttarakhand",
		Categories:  []Category{CategorySpiritual, CategoryAdventure},
		BestMonths:  []int{2, 3, 4, 9, 10},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateModerate,
		Budget:      BudgetLow,
		BookingSlug: "rishikesh-in",
	},
	{
		ID:          "haridwar",
		State:       "Uttarakhand",
		Categories:  []Category{CategorySpiritual},
		BestMonths:  []int{10, 11, 12, 2, 3},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateModerate,
		Budget:      BudgetLow,
		BookingSlug: "haridwar-in",
	},
	{
		ID:          "jaipur",
		State:       "Rajasthan",
		Categories:  []Category{CategoryHeritage},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateHot,
		Budget:      BudgetLow,
		BookingSlug: "jaipur-in",
	},
	{
		ID:          "udaipur",
		State:       "Rajasthan",
		Categories:  []Category{CategoryRomantic},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateHot,
		Budget:      BudgetModerate,
		BookingSlug: "udaipur-in",
	},
	{
		ID:          "jodhpur",
		State:       "Rajasthan",
		Categories:  []Category{CategoryHeritage},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateHot,
		Budget:      BudgetLow,
		BookingSlug: "jodhpur-in",
	},
	{
		ID:          "leh",
		State:       "Ladakh",
		Categories:  []Category{CategoryAdventure},
		BestMonths:  []int{6, 7, 8, 9},
		AvoidMonths: []int{11, 12, 1, 2},
		Climate:     ClimateColdDesert,
		Budget:      BudgetPremium,
		BookingSlug: "leh-in",
	},
	{
		ID:          "srinagar",
		State:       "J&K",
		Categories:  []Category{CategoryNature},
		BestMonths:  []int{4, 5, 6, 9},
		AvoidMonths: []int{12, 1, 2},
		Climate:     ClimateCold,
		Budget:      BudgetModerate,
		BookingSlug: "srinagar-in",
	},
	{
		ID:          "gulmarg",
		State:       "J&K",
		Categories:  []Category{CategorySnow, CategorySki},
		BestMonths:  []int{1, 2, 12},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCold,
		Budget:      BudgetPremium,
		BookingSlug: "gulmarg-in",
	},
	{
		ID:          "delhi",
		State:       "Delhi",
		Categories:  []Category{CategoryCity, CategoryCulture},
		BestMonths:  []int{10, 11, 12, 2, 3},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateExtreme,
		Budget:      BudgetLow,
		BookingSlug: "new-delhi-in",
	},
	{
		ID:          "agra",
		State:       "Uttar Pradesh",
		Categories:  []Category{CategoryHeritage},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateHot,
		Budget:      BudgetLow,
		BookingSlug: "agra-in",
	},
	{
		ID:          "varanasi",
		State:       "Uttar Pradesh",
		Categories:  []Category{CategorySpiritual},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateHot,
		Budget:      BudgetLow,
		BookingSlug: "varanasi-in",
	},
	{
		ID:          "amritsar",
		State:       "Punjab",
		Categories:  []Category{CategorySpiritual},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateExtreme,
		Budget:      BudgetLow,
		BookingSlug: "amritsar-in",
	},
	{
		ID:          "kochi",
		State:       "Kerala",
		Categories:  []Category{CategoryBackwaters},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateTropical,
		Budget:      BudgetModerate,
		BookingSlug: "kochi-in",
	},
	{
		ID:          "munnar",
		State:       "Kerala",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{9, 10, 11, 12, 1},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "munnar-in",
	},
	{
		ID:          "alleppey",
		State:       "Kerala",
		Categories:  []Category{CategoryBackwaters},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateTropical,
		Budget:      BudgetModerate,
		BookingSlug: "alleppey-in",
	},
	{
		ID:          "varkala",
		State:       "Kerala",
		Categories:  []Category{CategoryBeach},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateTropical,
		Budget:      BudgetLow,
		BookingSlug: "varkala-in",
	},
	{
		ID:          "wayanad",
		State:       "Kerala",
		Categories:  []Category{CategoryNature},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateCool,
		Budget:      BudgetLow,
		BookingSlug: "wayanad-in",
	},
	{
		ID:          "ooty",
		State:       "Tamil Nadu",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "ooty-in",
	},
	{
		ID:          "kodaikanal",
		State:       "Tamil Nadu",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "kodaikanal-in",
	},
	{
		ID:          "pondicherry",
		State:       "Puducherry",
		Categories:  []Category{CategoryBeach, CategoryCulture},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{10},
		Climate:     ClimateHumid,
		Budget:      BudgetModerate,
		BookingSlug: "pondicherry-in",
	},
	{
		ID:          "hampi",
		State:       "Karnataka",
		Categories:  []Category{CategoryHeritage},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{5, 6},
		Climate:     ClimateHot,
		Budget:      BudgetLow,
		BookingSlug: "hampi-in",
	},
	{
		ID:          "coorg",
		State:       "Karnataka",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "coorg-in",
	},
	{
		ID:          "gokarna",
		State:       "Karnataka",
		Categories:  []Category{CategoryBeach},
		BestMonths:  []int{10, 11, 12, 1, 2},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateTropical,
		Budget:      BudgetLow,
		BookingSlug: "gokarna-in",
	},
	{
		ID:          "darjeeling",
		State:       "West Bengal",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{3, 4, 5, 10},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "darjeeling-in",
	},
	{
		ID:          "gangtok",
		State:       "Sikkim",
		Categories:  []Category{CategoryHill},
		BestMonths:  []int{3, 4, 5, 10},
		AvoidMonths: []int{7, 8},
		Climate:     ClimateCool,
		Budget:      BudgetModerate,
		BookingSlug: "gangtok-in",
	},
	{
		ID:          "shillong",
		State:       "Meghalaya",
		Categories:  []Category{CategoryNature},
		BestMonths:  []int{10, 11, 12, 3, 4},
		AvoidMonths: []int{6, 7},
		Climate:     ClimateCool,
		Budget:      BudgetLow,
		BookingSlug: "shillong-in",
	},
	{
		ID:          "kaziranga",
		State:       "Assam",
		Categories:  []Category{CategoryWildlife},
		BestMonths:  []int{11, 12, 1, 2, 3},
		AvoidMonths: []int{6, 7, 8},
		Climate:     ClimateHumid,
		Budget:      BudgetModerate,
		BookingSlug: "kaziranga-in",
	},
	{
		ID:          "andaman",
		State:       "Andaman & Nicobar",
		Categories:  []Category{CategoryIsland, CategoryBeach},
		BestMonths:  []int{11, 12, 1, 2, 3},
		AvoidMonths: []int{6, 7, 8},
		Climate:     ClimateTropical,
		Budget:      BudgetPremium,
		BookingSlug: "andaman-in",
	},
}

// StaticRecords returns a fresh copy of the built-in dataset.
func StaticRecords() []Destination {
	out := make([]Destination, len(staticRecords))
	for i, d := range staticRecords {
		out[i] = d.clone()
	}
	return out
}
