package storefront

import (
	"net/http"

	"github.com/fitgirl/storefront/internal/cookie"
	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/service"
)

// sessionMaxAge keeps shopper sessions alive for 30 days.
const sessionMaxAge = 30 * 24 * 60 * 60

// GetSessionID extracts the session ID from the request cookie.
// Returns empty string if no session exists yet.
func GetSessionID(r *http.Request) string {
	return cookie.Get(r, cookie.SessionCookieName)
}

// EnsureSession returns the shopper's session ID, minting a new one and
// setting the cookie when the request carries none.
func EnsureSession(w http.ResponseWriter, r *http.Request, cookies *cookie.Config) (string, error) {
	if sessionID := GetSessionID(r); sessionID != "" {
		return sessionID, nil
	}

	sessionID, err := service.GenerateSessionID()
	if err != nil {
		return "", domain.Internal(err, "storefront.EnsureSession", "failed to create session")
	}

	cookies.Set(w, cookie.SessionCookieName, sessionID, sessionMaxAge)
	return sessionID, nil
}
