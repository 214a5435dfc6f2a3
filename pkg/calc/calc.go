package calc

import "math"

// Mode selects the calculation formula set.
type Mode string

const (
	ModeDiesel  Mode = "diesel"
	ModeHeating Mode = "heating"
)

// ParseMode maps a raw mode string to a Mode, defaulting to diesel.
func ParseMode(raw string) Mode {
	if raw == string(ModeHeating) {
		return ModeHeating
	}
	return ModeDiesel
}

// Defaults carries the per-country fallback prices used when a raw price
// field is missing or unparseable.
type Defaults struct {
	FuelPricePerLiter    float64
	HeatingPricePerLiter float64
}

// VehicleParams are the normalized inputs for the vehicle-fuel mode.
type VehicleParams struct {
	VehicleCount   float64
	AnnualKm       float64
	FuelPrice      float64
	Consumption    float64 // liters per 100 km
	SavingsPercent float64
}

// HeatingParams are the normalized inputs for the heating-oil mode.
type HeatingParams struct {
	AnnualLiters   float64
	HeatingPrice   float64
	SavingsPercent float64
}

// RawVehicleInputs are the unvalidated field values as read from the widget.
type RawVehicleInputs struct {
	VehicleCount   string
	AnnualKm       string
	FuelPrice      string
	Consumption    string
	SavingsPercent string
}

// RawHeatingInputs are the unvalidated field values as read from the widget.
type RawHeatingInputs struct {
	AnnualLiters   string
	HeatingPrice   string
	SavingsPercent string
}

// Result holds every derived quantity for one calculation. All fields are
// raw arithmetic results; rounding and the display ceiling are applied at
// formatting time only.
type Result struct {
	Mode               Mode
	TotalLiters        float64
	LitersSaved        float64
	GrossSavings       float64
	ProductCost        float64
	NetAnnualSavings   float64
	PerVehicleSavings  float64 // vehicle mode only, zero otherwise
	CO2TonnesReduced   float64
	CostWithoutProduct float64
	CostWithProduct    float64
}

// VehicleParamsFrom normalizes raw vehicle-mode fields: unparseable values
// fall back to the documented defaults (price: country default), then every
// value is clamped to its bound.
func VehicleParamsFrom(raw RawVehicleInputs, d Defaults) VehicleParams {
	return VehicleParams{
		VehicleCount:   VehicleCountBound.Clamp(math.Round(ParseField(raw.VehicleCount, DefaultVehicleCount))),
		AnnualKm:       AnnualKmBound.Clamp(ParseField(raw.AnnualKm, DefaultAnnualKm)),
		FuelPrice:      FuelPriceBound.Clamp(ParseField(raw.FuelPrice, d.FuelPricePerLiter)),
		Consumption:    ConsumptionBound.Clamp(ParseField(raw.Consumption, DefaultConsumption)),
		SavingsPercent: SavingsPercentBound.Clamp(ParseField(raw.SavingsPercent, DefaultSavingsPercent)),
	}
}

// HeatingParamsFrom normalizes raw heating-mode fields the same way.
func HeatingParamsFrom(raw RawHeatingInputs, d Defaults) HeatingParams {
	return HeatingParams{
		AnnualLiters:   HeatingLitersBound.Clamp(ParseField(raw.AnnualLiters, DefaultHeatingLiters)),
		HeatingPrice:   FuelPriceBound.Clamp(ParseField(raw.HeatingPrice, d.HeatingPricePerLiter)),
		SavingsPercent: SavingsPercentBound.Clamp(ParseField(raw.SavingsPercent, DefaultSavingsPercent)),
	}
}

// ComputeVehicleSavings computes the vehicle-fuel projection. Params are
// re-clamped so the function stays total even when called with hand-built
// values.
func ComputeVehicleSavings(p VehicleParams) Result {
	vehicles := VehicleCountBound.Clamp(math.Round(p.VehicleCount))
	km := AnnualKmBound.Clamp(p.AnnualKm)
	price := FuelPriceBound.Clamp(p.FuelPrice)
	consumption := ConsumptionBound.Clamp(p.Consumption)
	pct := SavingsPercentBound.Clamp(p.SavingsPercent)

	litersPerVehicle := km / 100 * consumption
	totalLiters := litersPerVehicle * vehicles
	litersSaved := totalLiters * pct / 100
	gross := litersSaved * price

	// Product cost scales with the total volume treated, not with the
	// savings realized. High price with a low savings percentage can
	// therefore show zero net savings even though gross was positive.
	productCost := totalLiters * ProductCostPerLiter
	net := math.Max(0, gross-productCost)

	costWithout := totalLiters * price

	return Result{
		Mode:               ModeDiesel,
		TotalLiters:        totalLiters,
		LitersSaved:        litersSaved,
		GrossSavings:       gross,
		ProductCost:        productCost,
		NetAnnualSavings:   net,
		PerVehicleSavings:  math.Max(0, net/vehicles),
		CO2TonnesReduced:   litersSaved * CO2KgPerLiter / 1000,
		CostWithoutProduct: costWithout,
		CostWithProduct:    costWithout - net,
	}
}

// ComputeHeatingSavings computes the heating-oil projection. There is no
// per-unit breakdown in this mode.
func ComputeHeatingSavings(p HeatingParams) Result {
	liters := HeatingLitersBound.Clamp(p.AnnualLiters)
	price := FuelPriceBound.Clamp(p.HeatingPrice)
	pct := SavingsPercentBound.Clamp(p.SavingsPercent)

	litersSaved := liters * pct / 100
	gross := litersSaved * price
	productCost := liters * ProductCostPerLiter
	net := math.Max(0, gross-productCost)

	costWithout := liters * price

	return Result{
		Mode:               ModeHeating,
		TotalLiters:        liters,
		LitersSaved:        litersSaved,
		GrossSavings:       gross,
		ProductCost:        productCost,
		NetAnnualSavings:   net,
		CO2TonnesReduced:   litersSaved * CO2KgPerLiter / 1000,
		CostWithoutProduct: costWithout,
		CostWithProduct:    costWithout - net,
	}
}
