package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const LangKey = "lang"

var (
	// Order matters: index into langCodes must follow the matcher's
	// supported list.
	supported = []language.Tag{language.French, language.Arabic}
	langCodes = []string{"fr", "ar"}
	matcher   = language.NewMatcher(supported)
)

// Lang resolves the request language, in order: explicit "lang" query
// parameter, Accept-Language header, configured default. Only "fr" and "ar"
// are served; anything else falls back to the default.
func Lang(defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pref := c.Query("lang")
		if pref == "" {
			pref = c.GetHeader("Accept-Language")
		}
		c.Set(LangKey, normalizeLang(pref, defaultLang))
		c.Next()
	}
}

// normalizeLang matches a weighted Accept-Language list (or a bare tag)
// against the served languages.
func normalizeLang(pref, defaultLang string) string {
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultLang
	}
	return langCodes[idx]
}
