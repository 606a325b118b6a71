package httpapi

import "net/http"

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "jwt"

// setSessionCookie attaches the token with the full security posture:
// HttpOnly keeps it away from scripts, SameSite=Strict keeps it off
// cross-site navigations, Secure is on everywhere except development.
// Any relaxation must come through configuration, never a default.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.secureCookies,
	})
}

// clearSessionCookie overwrites the cookie with an empty value and Max-Age=0
// (MaxAge < 0 serializes as Max-Age=0) so the browser discards it. Same
// attributes as issuance, so the overwrite matches the original cookie.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.secureCookies,
	})
}
