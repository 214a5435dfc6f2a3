package i18n

const (
	pluralOne   = "one"
	pluralOther = "other"
)

// pluralForm selects the plural form for the supported languages. French
// treats zero as singular; German, English, and Italian do not.
func pluralForm(lang string, n int) string {
	if n < 0 {
		n = -n
	}
	switch lang {
	case "fr":
		if n <= 1 {
			return pluralOne
		}
	default:
		if n == 1 {
			return pluralOne
		}
	}
	return pluralOther
}
