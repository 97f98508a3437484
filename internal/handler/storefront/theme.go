package storefront

import (
	"net/http"

	"github.com/fitgirl/storefront/internal/cookie"
	"github.com/fitgirl/storefront/internal/handler"
	"github.com/fitgirl/storefront/internal/theme"
)

// themeMaxAge keeps the preference for a year.
const themeMaxAge = 365 * 24 * 60 * 60

// ThemeHandler serves the shopper's theme preference, persisted in a
// cookie rather than server state.
type ThemeHandler struct {
	cookies *cookie.Config
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(cookies *cookie.Config) *ThemeHandler {
	return &ThemeHandler{cookies: cookies}
}

// Get handles GET /theme. A missing or stale cookie yields the default.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	current := theme.Parse(cookie.Get(r, cookie.ThemeCookieName))

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"theme": current,
	})
}

// Put handles PUT /theme.
func (h *ThemeHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	selected, err := theme.Validate(req.Theme)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.cookies.Set(w, cookie.ThemeCookieName, string(selected), themeMaxAge)

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"theme": selected,
	})
}
