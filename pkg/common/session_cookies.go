package common

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hopecreatives/officialhope/pkg/tracking"
)

const sessionCookieName = "sid"

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionId,
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// HandleSessionCookie returns the visitor's session id, minting one on first
// contact. New sessions are reported to tracking when it is configured.
func HandleSessionCookie(trk tracking.Tracking, w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err == nil && c.Value != "" {
		return c.Value
	}

	sessionId := uuid.NewString()
	if trk != nil {
		go trk.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
