package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tecblu/savings-widget/pkg/calc"
	"github.com/tecblu/savings-widget/pkg/i18n"
	"github.com/tecblu/savings-widget/pkg/locale"
	"github.com/tecblu/savings-widget/translations"
)

type localePayload struct {
	Language             string  `json:"language"`
	Country              string  `json:"country"`
	Currency             string  `json:"currency"`
	DieselPricePerLiter  float64 `json:"dieselPricePerLiter"`
	HeatingPricePerLiter float64 `json:"heatingPricePerLiter"`
}

type resultsPayload struct {
	TotalLiters        float64 `json:"totalLiters"`
	LitersSaved        float64 `json:"litersSaved"`
	GrossSavings       float64 `json:"grossSavings"`
	ProductCost        float64 `json:"productCost"`
	NetAnnualSavings   float64 `json:"netAnnualSavings"`
	PerVehicleSavings  float64 `json:"perVehicleSavings,omitempty"`
	CO2TonnesReduced   float64 `json:"co2TonnesReduced"`
	CostWithoutProduct float64 `json:"costWithoutProduct"`
	CostWithProduct    float64 `json:"costWithProduct"`
}

type calculateResponse struct {
	Locale   localePayload     `json:"locale"`
	Mode     string            `json:"mode"`
	Results  resultsPayload    `json:"results"`
	Display  map[string]string `json:"display"`
	QuoteURL string            `json:"quoteUrl"`
}

// resolveLocale determines the widget locale for one request: explicit query
// overrides first, then the embedding site's hostname, with Accept-Language
// consulted only when neither decided the language.
func (s *Server) resolveLocale(r *http.Request) locale.Info {
	q := r.URL.Query()
	o := locale.Overrides{
		Language: q.Get("lang"),
		Country:  q.Get("country"),
	}

	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}

	if o.Language == "" {
		if _, matched := locale.LanguageFromHost(host); !matched {
			if lang, ok := locale.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
				o.Language = string(lang)
			}
		}
	}

	return locale.Resolve(host, o)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	info := s.resolveLocale(r)

	defaults := calc.Defaults{
		FuelPricePerLiter:    info.DefaultPrices.DieselPerLiter,
		HeatingPricePerLiter: info.DefaultPrices.HeatingPerLiter,
	}

	mode := calc.ParseMode(q.Get("mode"))

	var result calc.Result
	switch mode {
	case calc.ModeHeating:
		result = calc.ComputeHeatingSavings(calc.HeatingParamsFrom(calc.RawHeatingInputs{
			AnnualLiters:   q.Get("liters"),
			HeatingPrice:   q.Get("price"),
			SavingsPercent: q.Get("savings"),
		}, defaults))
	default:
		result = calc.ComputeVehicleSavings(calc.VehicleParamsFrom(calc.RawVehicleInputs{
			VehicleCount:   q.Get("vehicles"),
			AnnualKm:       q.Get("km"),
			FuelPrice:      q.Get("price"),
			Consumption:    q.Get("consumption"),
			SavingsPercent: q.Get("savings"),
		}, defaults))
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		Locale:   toLocalePayload(info),
		Mode:     string(result.Mode),
		Results:  toResultsPayload(result),
		Display:  s.displayStrings(info, result),
		QuoteURL: calc.QuoteURL(s.quotePath(info), result),
	})
}

func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toLocalePayload(s.resolveLocale(r)))
}

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")

	table := s.bundle.Strings(lang, translations.Namespace)
	if len(table) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unsupported language"})
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// displayStrings renders every result quantity with the locale's fixed
// display conventions. Currency values are whole units; liters have no
// decimals; CO2 keeps three.
func (s *Server) displayStrings(info locale.Info, r calc.Result) map[string]string {
	lf := i18n.FormatFor(string(info.Currency), string(info.Language))

	display := map[string]string{
		"netAnnualSavings":   lf.FormatCurrency(r.NetAnnualSavings),
		"litersSaved":        lf.FormatNumber(r.LitersSaved, 0),
		"co2TonnesReduced":   lf.FormatNumber(r.CO2TonnesReduced, 3),
		"costWithoutProduct": lf.FormatCurrency(r.CostWithoutProduct),
		"costWithProduct":    lf.FormatCurrency(r.CostWithProduct),
	}
	if r.Mode == calc.ModeDiesel {
		display["perVehicleSavings"] = lf.FormatCurrency(r.PerVehicleSavings)
	}
	return display
}

// quotePath picks the call-to-action base path: the deployment override
// when configured, otherwise the language's translated path.
func (s *Server) quotePath(info locale.Info) string {
	if s.cfg.QuotePath != "" {
		return s.cfg.QuotePath
	}
	return s.bundle.T(string(info.Language), translations.Namespace, "cta.path")
}

func toLocalePayload(info locale.Info) localePayload {
	return localePayload{
		Language:             string(info.Language),
		Country:              string(info.Country),
		Currency:             string(info.Currency),
		DieselPricePerLiter:  info.DefaultPrices.DieselPerLiter,
		HeatingPricePerLiter: info.DefaultPrices.HeatingPerLiter,
	}
}

func toResultsPayload(r calc.Result) resultsPayload {
	return resultsPayload{
		TotalLiters:        r.TotalLiters,
		LitersSaved:        r.LitersSaved,
		GrossSavings:       r.GrossSavings,
		ProductCost:        r.ProductCost,
		NetAnnualSavings:   r.NetAnnualSavings,
		PerVehicleSavings:  r.PerVehicleSavings,
		CO2TonnesReduced:   r.CO2TonnesReduced,
		CostWithoutProduct: r.CostWithoutProduct,
		CostWithProduct:    r.CostWithProduct,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
