package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/session"
	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

const (
	IdentityKey  = "identity"
	SessionIDKey = "session_id"
)

// SessionMiddleware resolves the caller from the session cookie and stores
// an Identity value in the gin context. Requests without a session get an
// anonymous one so flash messages work before login.
func SessionMiddleware(store port.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.Cookie)

		if err == nil && sid != "" {
			sess, ok, err := store.Get(c.Request.Context(), sid)

			if err != nil {
				log.Error().Err(err).Msg("session lookup failed")
			}

			if ok {
				c.Set(SessionIDKey, sid)
				c.Set(IdentityKey, sess.Identity())
				c.Next()
				return
			}
		}

		sid, err = store.Create(c.Request.Context(), domain.Session{}, session.DefaultTTL)

		if err != nil {
			log.Error().Err(err).Msg("anonymous session creation failed")
			c.Set(IdentityKey, domain.Identity{})
			c.Next()
			return
		}

		SetSessionCookie(c, sid, session.DefaultTTL)
		c.Set(SessionIDKey, sid)
		c.Set(IdentityKey, domain.Identity{})

		c.Next()
	}
}

// RequireAuth redirects anonymous callers to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) domain.Identity {
	if val, ok := c.Get(IdentityKey); ok {
		if ident, ok := val.(domain.Identity); ok {
			return ident
		}
	}

	return domain.Identity{}
}

func CurrentSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

func SetSessionCookie(c *gin.Context, sid string, ttl time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.Cookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
}

func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.Cookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
