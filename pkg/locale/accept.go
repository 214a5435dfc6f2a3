package locale

import "golang.org/x/text/language"

var supportedTags = []language.Tag{
	language.German, // first entry is the matcher fallback
	language.English,
	language.French,
	language.Italian,
}

var supportedLangs = []Language{German, English, French, Italian}

var matcher = language.NewMatcher(supportedTags)

// MatchAcceptLanguage matches an Accept-Language header against the
// supported languages. Used only as a fallback when neither an override nor
// a hostname rule decided the language; Resolve itself never consults it.
func MatchAcceptLanguage(header string) (Language, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return supportedLangs[idx], true
}
