// Package theme tracks the shopper's visual theme preference.
package theme

import "github.com/fitgirl/storefront/internal/domain"

// Theme names a storefront color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
	Pink  Theme = "pink"
)

// Default is the theme applied when the shopper has no stored preference.
const Default = Dark

// Parse validates a raw theme value. Unknown or empty values fall back
// to the default rather than erroring, so stale cookies never break a page.
func Parse(raw string) Theme {
	switch Theme(raw) {
	case Light, Dark, Pink:
		return Theme(raw)
	default:
		return Default
	}
}

// Validate reports whether the value names a known theme. Unlike Parse it
// rejects bad input, so write paths can refuse instead of silently defaulting.
func Validate(raw string) (Theme, error) {
	switch Theme(raw) {
	case Light, Dark, Pink:
		return Theme(raw), nil
	default:
		return "", domain.Errorf(domain.EINVALID, "theme.Validate", "unknown theme %q", raw)
	}
}
