package auth

import (
	"net/http"
	"time"

	"github.com/Decanton/Twitter-Clone/internal/server/config"
)

// CookieName is the session cookie written by the issuer and read by the
// auth middleware.
const CookieName = "jwt"

// CookieIssuer mints session tokens and manages the cookie that carries
// them. The signing secret and environment are injected through the server
// Config rather than read from process-wide state.
type CookieIssuer struct {
	secret   []byte
	validity time.Duration
	secure   bool
}

// NewCookieIssuer constructs a CookieIssuer from the server config. The
// Secure cookie attribute is dropped only in the development environment.
func NewCookieIssuer(cfg *config.Config) *CookieIssuer {
	return &CookieIssuer{
		secret:   []byte(cfg.SecretKey),
		validity: cfg.TokenValidityDuration,
		secure:   !cfg.IsDevelopment(),
	}
}

// Issue creates a signed session token for the given user id.
func (i *CookieIssuer) Issue(userID string) (string, error) {
	return GenerateToken(userID, i.secret, i.validity)
}

// Verify validates a session token and returns the embedded user id.
func (i *CookieIssuer) Verify(token string) (string, error) {
	return GetUserIDFromToken(token, i.secret)
}

// Attach sets the session cookie on the response: HTTP-only, same-site
// strict, max-age equal to the token validity.
func (i *CookieIssuer) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(i.validity.Seconds()),
		HttpOnly: true,
		Secure:   i.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear overwrites the session cookie with an already-expired empty value so
// the client drops it immediately.
func (i *CookieIssuer) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   i.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
