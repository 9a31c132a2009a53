package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/verdantlog/models"
)

func TestComputeZeroEntry(t *testing.T) {
	b := Compute(models.ActivityEntry{})
	assert.Zero(t, b.HomeEnergyKg)
	assert.Zero(t, b.TransportationKg)
	assert.Zero(t, b.FoodKg)
	assert.Zero(t, b.TotalKg)
}

func TestComputeElectricityOnly(t *testing.T) {
	b := Compute(models.ActivityEntry{ElectricityKWh: 100})
	assert.InDelta(t, 40.0, b.HomeEnergyKg, 1e-9)
	assert.Zero(t, b.TransportationKg)
	assert.Zero(t, b.FoodKg)
	assert.InDelta(t, 40.0, b.TotalKg, 1e-9)
}

func TestComputeCarMiles(t *testing.T) {
	// 25 miles at 25 mpg is one gallon of gasoline.
	b := Compute(models.ActivityEntry{CarMiles: 25})
	assert.InDelta(t, 8.887, b.TransportationKg, 1e-9)
	assert.InDelta(t, 8.887, b.TotalKg, 1e-9)
}

func TestComputeFoodServings(t *testing.T) {
	b := Compute(models.ActivityEntry{MeatServings: 2, DairyServings: 1, PlantServings: 3})
	assert.InDelta(t, 7.3, b.FoodKg, 1e-9)
}

func TestComputeFlights(t *testing.T) {
	b := Compute(models.ActivityEntry{ShortHaulFlights: 1, LongHaulFlights: 2})
	assert.InDelta(t, 500+2*1600, b.TransportationKg, 1e-9)
}

func TestComputeTotalIsSumOfCategories(t *testing.T) {
	e := models.ActivityEntry{
		ElectricityKWh:   31.5,
		NaturalGasTherms: 2.2,
		WaterGallons:     120,
		CarMiles:         18,
		TransitMiles:     6,
		ShortHaulFlights: 1,
		MeatServings:     1,
		DairyServings:    2,
		PlantServings:    4,
	}
	b := Compute(e)
	require.Positive(t, b.TotalKg)
	assert.Equal(t, b.HomeEnergyKg+b.TransportationKg+b.FoodKg, b.TotalKg)

	// Deterministic: same input, same output.
	assert.Equal(t, b, Compute(e))
}
