package calc

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// QuoteURL builds the call-to-action link for a computed result:
//
//	/<path>?type=<diesel|heating>&savings=<rounded net>&liters=<rounded total>
//
// The parameter order is part of the widget contract, so the query string is
// assembled by hand instead of url.Values (which sorts keys).
func QuoteURL(basePath string, r Result) string {
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	var b strings.Builder
	b.WriteString(basePath)
	b.WriteString("?type=")
	b.WriteString(url.QueryEscape(string(r.Mode)))
	b.WriteString("&savings=")
	b.WriteString(strconv.FormatInt(int64(math.Round(r.NetAnnualSavings)), 10))
	b.WriteString("&liters=")
	b.WriteString(strconv.FormatInt(int64(math.Round(r.TotalLiters)), 10))
	return b.String()
}
