package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// LocalLocale is the Locals key carrying the negotiated storefront locale.
const LocalLocale = "locale"

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English, // default
	language.Chinese,
})

// LocaleMiddleware negotiates the storefront locale ("en" or "zh"). The
// ?lang= query overrides the Accept-Language header.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pref := c.Query("lang")
		if pref == "" {
			pref = c.Get("Accept-Language")
		}
		tag, _ := language.MatchStrings(localeMatcher, pref)
		base, _ := tag.Base()
		locale := base.String()
		if locale != "zh" {
			locale = "en"
		}
		c.Locals(LocalLocale, locale)
		return c.Next()
	}
}

// GetLocale returns the negotiated locale ("en" when none was negotiated).
func GetLocale(c *fiber.Ctx) string {
	v := c.Locals(LocalLocale)
	if v == nil {
		return "en"
	}
	s, _ := v.(string)
	if s == "" {
		return "en"
	}
	return s
}
