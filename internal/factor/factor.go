// Package factor holds the versioned emission factor tables. Factors are
// deployment-time constants, not database state; lookups on unknown keys
// fall back to a documented default and never fail.
package factor

// Recognized fuel types (Scope 1).
const (
	FuelDieselMK1 = "Diesel (MK1)"
	FuelHVO100    = "Diesel (HVO100)"
	FuelPetrol95  = "Petrol (95)"
	FuelPetrol98  = "Petrol (98)"
	FuelE85       = "E85"
	FuelBiogas    = "Biogas"
)

// fuelFactors is kg CO2e per liter, well-to-wheel where available.
var fuelFactors = map[string]float64{
	FuelDieselMK1: 2.54,
	FuelHVO100:    0.35, // varies strongly by feedstock, conservative value
	FuelPetrol95:  2.36,
	FuelPetrol98:  2.40,
	FuelE85:       1.65,
	FuelBiogas:    0.60, // kg per Nm3
}

// DefaultFuelFactor applies to unknown fuel types.
const DefaultFuelFactor = 2.5

// Fuel returns the kg CO2e per liter factor for a fuel type.
func Fuel(fuelType string) float64 {
	if f, ok := fuelFactors[fuelType]; ok {
		return f
	}
	return DefaultFuelFactor
}

// Scope 2 constants, kg CO2e per kWh.
const (
	// GridLocationBased is the national grid average used for the
	// location-based figure.
	GridLocationBased = 0.040
	// DistrictHeating is a flat factor added to both scope 2 figures.
	DistrictHeating = 0.060
	// ResidualMix is the conservative market-based fallback when the
	// electricity source is mixed or undeclared.
	ResidualMix = 0.350
)

// Declared electricity sources.
const (
	SourceRenewable = "Renewable"
	SourceNuclear   = "Nuclear"
	SourceMix       = "Mix"
)

// MarketBased returns the kg CO2e per kWh factor for a declared
// electricity source. Unknown sources get the residual mix.
func MarketBased(source string) float64 {
	switch source {
	case SourceRenewable:
		return 0.0
	case SourceNuclear:
		return 0.006 // life-cycle estimate
	case SourceMix:
		return ResidualMix
	default:
		return ResidualMix
	}
}

// Commute travel modes.
const (
	ModeCar         = "Car"
	ModeElectricCar = "Electric Car"
	ModeBus         = "Bus"
	ModeRail        = "Rail"
	ModeBicycle     = "Bicycle"
	ModeUnknown     = "Unknown"
)

// commuteFactors is kg CO2e per km.
var commuteFactors = map[string]float64{
	ModeCar:         0.12,
	ModeElectricCar: 0.02,
	ModeBus:         0.04,
	ModeRail:        0.006,
	ModeBicycle:     0.0,
	ModeUnknown:     0.08, // generic template value
}

// DefaultCommuteFactor applies to unrecognized modes.
const DefaultCommuteFactor = 0.08

// Commute returns the kg CO2e per km factor for a travel mode and
// whether the mode is a recognized table entry.
func Commute(mode string) (float64, bool) {
	if f, ok := commuteFactors[mode]; ok {
		return f, true
	}
	return DefaultCommuteFactor, false
}

// Spend categories, kg CO2e per SEK excluding VAT. Estimated sector
// averages from input-output data; reviewed yearly for inflation.
var spendFactors = map[string]float64{
	"IT Hardware (Laptops, Monitors)": 0.045,
	"IT Services & Licenses":          0.004,
	"Office Supplies & Consumables":   0.025,
	"Marketing & Print":               0.015,
	"Consulting (Management/HR)":      0.003,
	"Furniture & Fittings":            0.035,
	"Cleaning & Facility":             0.010,
	"Other":                           0.010,
}

// DefaultSpendFactor applies to unknown spend categories.
const DefaultSpendFactor = 0.010

// Spend returns the kg CO2e per SEK factor for a procurement category.
func Spend(category string) float64 {
	if f, ok := spendFactors[category]; ok {
		return f
	}
	return DefaultSpendFactor
}

// SpendCategories lists the recognized spend categories.
func SpendCategories() []string {
	out := make([]string, 0, len(spendFactors))
	for c := range spendFactors {
		out = append(out, c)
	}
	return out
}

// Business travel types.
const (
	TravelFlightShort  = "Flight-Short"  // < 1000 km
	TravelFlightMedium = "Flight-Medium" // 1000 - 3700 km
	TravelFlightLong   = "Flight-Long"   // > 3700 km
	TravelRail         = "Rail"
	TravelCar          = "Car"
)

// travelFactors is kg CO2e per km.
var travelFactors = map[string]float64{
	TravelFlightShort:  0.15,
	TravelFlightMedium: 0.12,
	TravelFlightLong:   0.10,
	TravelRail:         0.03,
	TravelCar:          0.18, // per vehicle-km, single passenger assumed
}

// Travel returns the kg CO2e per km factor for a travel type, adjusted
// for flight class. Unknown travel types return 0: emissions for them
// cannot be estimated and the record is stored without a derived figure.
func Travel(travelType, classType string) float64 {
	f, ok := travelFactors[travelType]
	if !ok {
		return 0.0
	}
	if travelType == TravelFlightShort || travelType == TravelFlightMedium || travelType == TravelFlightLong {
		switch classType {
		case "Business":
			f *= 1.5
		case "First":
			f *= 2.0
		}
	}
	return f
}

// Waste treatment methods.
const (
	DisposalLandfill    = "Landfill"
	DisposalRecycled    = "Recycled"
	DisposalIncinerated = "Incinerated"
)

// wasteFactors nests waste type under disposal method, kg CO2e per kg.
// Each disposal method carries its own default for unlisted waste types.
var wasteFactors = map[string]map[string]float64{
	DisposalLandfill: {
		"General":  0.25,
		"Food":     1.0, // methane driven
		"Plastics": 1.5,
	},
	DisposalRecycled: {
		"Paper/Cardboard": 0.1,
		"Plastics":        0.3,
	},
	DisposalIncinerated: {
		"General": 0.15,
	},
}

// wasteDefaults is the per-disposal-method fallback factor.
var wasteDefaults = map[string]float64{
	DisposalLandfill:    0.25,
	DisposalRecycled:    0.05,
	DisposalIncinerated: 0.15,
}

// Waste returns the kg CO2e per kg factor for a waste type and disposal
// method. Unknown disposal methods return 0.
func Waste(wasteType, disposalMethod string) float64 {
	types, ok := wasteFactors[disposalMethod]
	if !ok {
		return 0.0
	}
	if f, ok := types[wasteType]; ok {
		return f
	}
	return wasteDefaults[disposalMethod]
}
