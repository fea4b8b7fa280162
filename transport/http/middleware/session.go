package middleware

import (
	"barber/shared/session"
	"net/http"

	"github.com/google/uuid"
)

const defaultSessionCookie = "barber_session"

// Session attaches the visitor's session id, issuing a new cookie when the
// request carries none or an id this service did not mint.
func (a *appMiddleware) Session(next http.Handler) http.Handler {
	cfg := a.config.Session
	if cfg.CookieName == "" {
		cfg.CookieName = defaultSessionCookie
	}

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := ""

		if cookie, err := request.Cookie(cfg.CookieName); err == nil {
			if parsed, err := uuid.Parse(cookie.Value); err == nil {
				id = parsed.String()
			}
		}

		if id == "" {
			id = uuid.NewString()

			http.SetCookie(writer, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   cfg.MaxAgeSeconds,
				HttpOnly: true,
				Secure:   cfg.Secure || a.config.IsProduction(),
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(writer, request.WithContext(session.WithID(request.Context(), id)))
	})
}
