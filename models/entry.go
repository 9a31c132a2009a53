package models

import "time"

// EmissionBreakdown holds per-category emissions derived from an entry's raw
// quantities. It is recomputed on every write and never edited directly.
type EmissionBreakdown struct {
	HomeEnergyKg     float64 `gorm:"not null;default:0" json:"home_energy_kg"`
	TransportationKg float64 `gorm:"not null;default:0" json:"transportation_kg"`
	FoodKg           float64 `gorm:"not null;default:0" json:"food_kg"`
	TotalKg          float64 `gorm:"not null;default:0" json:"total_kg"`
}

// ActivityEntry stores one user's raw activity quantities for one calendar day,
// together with the computed breakdown. At most one row per (user, date);
// resubmission for the same date replaces the previous quantities.
type ActivityEntry struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;index:idx_entries_user_date,unique;not null" json:"user_id"`
	Date   time.Time `gorm:"index:idx_entries_user_date,unique;type:date;not null" json:"date"`

	ElectricityKWh   float64 `gorm:"column:electricity_kwh;not null;default:0" json:"electricity_kwh"`
	NaturalGasTherms float64 `gorm:"not null;default:0" json:"natural_gas_therms"`
	WaterGallons     float64 `gorm:"not null;default:0" json:"water_gallons"`
	CarMiles         float64 `gorm:"not null;default:0" json:"car_miles"`
	TransitMiles     float64 `gorm:"not null;default:0" json:"transit_miles"`
	ShortHaulFlights float64 `gorm:"not null;default:0" json:"short_haul_flights"`
	LongHaulFlights  float64 `gorm:"not null;default:0" json:"long_haul_flights"`
	MeatServings     float64 `gorm:"not null;default:0" json:"meat_servings"`
	DairyServings    float64 `gorm:"not null;default:0" json:"dairy_servings"`
	PlantServings    float64 `gorm:"not null;default:0" json:"plant_servings"`

	EmissionBreakdown `gorm:"embedded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
