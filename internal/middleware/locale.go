package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Goldlee001/CoeCarbon/internal/i18n"
)

// LangCookie stores the visitor's chosen locale.
const LangCookie = "lang"

const langCookieMaxAge = int(24 * time.Hour / time.Second)

const (
	translatorKey  = "translator"
	localeKey      = "locale"
	currentPathKey = "currentPath"
)

// LocaleResolver resolves the display locale for the request. A ?lang= query
// parameter that changes the locale is persisted to a cookie and answered
// with a redirect to the same path with the query stripped, so the switch is
// not re-applied on every navigation. Otherwise the translator, locale, and
// query-stripped path are exposed to the rest of the pipeline.
func LocaleResolver(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := bundle.DefaultLocale()
		if v, err := c.Cookie(LangCookie); err == nil && bundle.Supported(v) {
			current = v
		}

		if q := c.Query("lang"); q != "" && q != current {
			if bundle.Supported(q) {
				c.SetCookie(LangCookie, q, langCookieMaxAge, "/", "", false, false)
			}
			c.Redirect(http.StatusFound, c.Request.URL.Path)
			c.Abort()
			return
		}

		c.Set(translatorKey, bundle.Translator(current))
		c.Set(localeKey, current)
		c.Set(currentPathKey, c.Request.URL.Path)
		c.Next()
	}
}

// Translator returns the request's translator set by LocaleResolver.
func Translator(c *gin.Context) *i18n.Translator {
	v, _ := c.Get(translatorKey)
	tr, _ := v.(*i18n.Translator)
	return tr
}

// Locale returns the resolved locale code for the request.
func Locale(c *gin.Context) string {
	return c.GetString(localeKey)
}

// CurrentPath returns the request path with the query string stripped.
func CurrentPath(c *gin.Context) string {
	return c.GetString(currentPathKey)
}
