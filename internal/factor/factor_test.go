package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuel(t *testing.T) {
	testCases := []struct {
		name     string
		fuelType string
		expected float64
	}{
		{"diesel MK1", FuelDieselMK1, 2.54},
		{"HVO100", FuelHVO100, 0.35},
		{"petrol 95", FuelPetrol95, 2.36},
		{"petrol 98", FuelPetrol98, 2.40},
		{"E85", FuelE85, 1.65},
		{"biogas", FuelBiogas, 0.60},
		{"unknown type falls back to default", "Jet A-1", DefaultFuelFactor},
		{"empty type falls back to default", "", DefaultFuelFactor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fuel(tc.fuelType))
		})
	}
}

func TestMarketBased(t *testing.T) {
	assert.Equal(t, 0.0, MarketBased(SourceRenewable))
	assert.Equal(t, 0.006, MarketBased(SourceNuclear))
	assert.Equal(t, ResidualMix, MarketBased(SourceMix))
	// Undeclared sources are treated as residual mix, conservatively.
	assert.Equal(t, ResidualMix, MarketBased(""))
	assert.Equal(t, ResidualMix, MarketBased("Coal"))
}

func TestCommute(t *testing.T) {
	f, known := Commute(ModeBicycle)
	assert.Equal(t, 0.0, f)
	assert.True(t, known)

	f, known = Commute(ModeUnknown)
	assert.Equal(t, 0.08, f)
	assert.True(t, known)

	f, known = Commute("Teleportation")
	assert.Equal(t, DefaultCommuteFactor, f)
	assert.False(t, known)
}

func TestSpend(t *testing.T) {
	assert.Equal(t, 0.045, Spend("IT Hardware (Laptops, Monitors)"))
	assert.Equal(t, 0.003, Spend("Consulting (Management/HR)"))
	assert.Equal(t, DefaultSpendFactor, Spend("Space Tourism"))
	assert.Len(t, SpendCategories(), 8)
}

func TestTravel(t *testing.T) {
	assert.Equal(t, 0.15, Travel(TravelFlightShort, "Economy"))
	assert.InDelta(t, 0.15*1.5, Travel(TravelFlightShort, "Business"), 1e-9)
	assert.InDelta(t, 0.10*2.0, Travel(TravelFlightLong, "First"), 1e-9)
	// Class multipliers only apply to flights.
	assert.Equal(t, 0.03, Travel(TravelRail, "Business"))
	assert.Equal(t, 0.0, Travel("Ferry", "Economy"))
}

func TestWaste(t *testing.T) {
	assert.Equal(t, 1.0, Waste("Food", DisposalLandfill))
	assert.Equal(t, 1.5, Waste("Plastics", DisposalLandfill))
	assert.Equal(t, 0.1, Waste("Paper/Cardboard", DisposalRecycled))
	// Per-disposal defaults for unlisted waste types.
	assert.Equal(t, 0.25, Waste("Textiles", DisposalLandfill))
	assert.Equal(t, 0.05, Waste("Glass", DisposalRecycled))
	assert.Equal(t, 0.15, Waste("Food", DisposalIncinerated))
	// Unknown disposal methods cannot be estimated.
	assert.Equal(t, 0.0, Waste("General", "Composted"))
}
