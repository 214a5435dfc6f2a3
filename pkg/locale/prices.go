package locale

// Prices are the per-country default prices in the country's currency,
// used as fallback when a raw price field is absent or unparseable.
type Prices struct {
	DieselPerLiter  float64
	HeatingPerLiter float64
}

var defaultPrices = map[Country]Prices{
	Switzerland: {DieselPerLiter: 1.95, HeatingPerLiter: 1.35},
	Austria:     {DieselPerLiter: 1.75, HeatingPerLiter: 1.10},
	Germany:     {DieselPerLiter: 1.85, HeatingPerLiter: 1.15},
	France:      {DieselPerLiter: 1.80, HeatingPerLiter: 1.20},
	Italy:       {DieselPerLiter: 1.90, HeatingPerLiter: 1.25},
}
