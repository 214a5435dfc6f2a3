package calc

// Product constants. These are business figures fixed by the product, not
// configuration.
const (
	// ProductCostPerLiter is the additive cost per liter of fuel treated.
	// It applies to the total volume consumed, not the volume saved.
	ProductCostPerLiter = 0.0463

	// CO2KgPerLiter is the emission factor for one liter of diesel or
	// heating oil.
	CO2KgPerLiter = 2.65
)

// Fallback defaults substituted for missing or unparseable raw input before
// clamping. Price fallbacks come from the resolved country defaults and are
// supplied by the caller.
const (
	DefaultVehicleCount   = 5
	DefaultAnnualKm       = 80000
	DefaultConsumption    = 32
	DefaultSavingsPercent = 7
	DefaultHeatingLiters  = 8000
)

// Input bounds. Raw values are clamped to these ranges before use.
var (
	VehicleCountBound   = Bound{Min: 1, Max: 1000}
	AnnualKmBound       = Bound{Min: 1000, Max: 300000}
	FuelPriceBound      = Bound{Min: 0.5, Max: 5}
	ConsumptionBound    = Bound{Min: 1, Max: 150}
	SavingsPercentBound = Bound{Min: 1, Max: 25}
	HeatingLitersBound  = Bound{Min: 500, Max: 500000}
)
