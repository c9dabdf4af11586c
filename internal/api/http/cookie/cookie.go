// Package cookie sets and reads the browser cookies of the sign-in flows.
package cookie

import (
	"net/http"
	"time"
)

const (
	// SessionName carries the session token.
	SessionName = "access_token"
	// StateName carries the federation state nonce between login and callback.
	StateName = "oauth_state"

	stateTTL = 10 * time.Minute
)

// Jar writes HTTP-only, SameSite=Lax cookies scoped to the whole site.
type Jar struct {
	secure     bool
	sessionTTL time.Duration
}

// NewJar creates a Jar. secure marks every cookie Secure.
func NewJar(secure bool, sessionTTL time.Duration) *Jar {
	return &Jar{secure: secure, sessionTTL: sessionTTL}
}

// SetSession stores token for the session lifetime.
func (j *Jar) SetSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, j.cookie(SessionName, token, j.sessionTTL))
}

// ClearSession expires the session cookie.
func (j *Jar) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, j.cookie(SessionName, "", -1))
}

// SetState stores the federation state nonce.
func (j *Jar) SetState(w http.ResponseWriter, state string) {
	http.SetCookie(w, j.cookie(StateName, state, stateTTL))
}

// PopState returns the stored state nonce and expires its cookie.
func (j *Jar) PopState(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, err := r.Cookie(StateName)
	if err != nil || c.Value == "" {
		return "", false
	}
	http.SetCookie(w, j.cookie(StateName, "", -1))
	return c.Value, true
}

// Session returns the session token presented by the browser, if any.
func Session(r *http.Request) string {
	c, err := r.Cookie(SessionName)
	if err != nil {
		return ""
	}
	return c.Value
}

// A negative ttl deletes the cookie.
func (j *Jar) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		return c
	}
	c.MaxAge = int(ttl.Seconds())
	return c
}
