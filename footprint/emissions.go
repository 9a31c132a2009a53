// Package footprint implements the scoring and aggregation engine: the
// emission model, the streak transition rule, and the history summarizer.
// Everything in this package is a pure function over plain values; all
// persistence lives in the store package.
package footprint

import "github.com/cppla/verdantlog/models"

// Emission factors in kg CO2 per unit of activity.
const (
	ElectricityKgPerKWh  = 0.4
	NaturalGasKgPerTherm = 5.3
	WaterKgPerGallon     = 0.0002
	GasolineKgPerGallon  = 8.887
	CarMilesPerGallon    = 25.0
	TransitKgPerMile     = 0.17
	ShortHaulKgPerFlight = 500.0
	LongHaulKgPerFlight  = 1600.0
	MeatKgPerServing     = 3.0
	DairyKgPerServing    = 0.7
	PlantKgPerServing    = 0.2
)

// Compute derives the per-category and total emissions for one day's raw
// quantities. Inputs must already be validated non-negative by the caller;
// this function does not validate. All-zero input yields an all-zero
// breakdown.
func Compute(e models.ActivityEntry) models.EmissionBreakdown {
	home := e.ElectricityKWh*ElectricityKgPerKWh +
		e.NaturalGasTherms*NaturalGasKgPerTherm +
		e.WaterGallons*WaterKgPerGallon

	transport := (e.CarMiles/CarMilesPerGallon)*GasolineKgPerGallon +
		e.TransitMiles*TransitKgPerMile +
		e.ShortHaulFlights*ShortHaulKgPerFlight +
		e.LongHaulFlights*LongHaulKgPerFlight

	food := e.MeatServings*MeatKgPerServing +
		e.DairyServings*DairyKgPerServing +
		e.PlantServings*PlantKgPerServing

	return models.EmissionBreakdown{
		HomeEnergyKg:     home,
		TransportationKg: transport,
		FoodKg:           food,
		TotalKg:          home + transport + food,
	}
}
