package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/core/domain"
	"github.com/memberhub/members-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "session_id"

// SessionStrategy keeps identity state server-side: the client holds only
// an unguessable session ID, and every resolution costs one session-store
// lookup plus one user fetch.
type SessionStrategy struct {
	sessions ports.SessionStore
	users    ports.UserRepository
	ttl      time.Duration
	secure   bool
}

// NewSessionStrategy builds the strategy. TTL <= 0 falls back to 7 days.
func NewSessionStrategy(sessions ports.SessionStore, users ports.UserRepository, ttl time.Duration, secure bool) *SessionStrategy {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionStrategy{sessions: sessions, users: users, ttl: ttl, secure: secure}
}

func (s *SessionStrategy) Name() string { return StrategySession }

// Issue creates a session record holding only the user ID and hands the
// session identifier to the client as an HTTP-only cookie.
func (s *SessionStrategy) Issue(c echo.Context, user *domain.User) error {
	sessionID, err := s.sessions.Create(c.Request().Context(), user.ID, s.ttl)
	if err != nil {
		return err
	}
	c.SetCookie(proofCookie(SessionCookieName, sessionID, int(s.ttl.Seconds()), s.secure))
	return nil
}

// Resolve looks up the session and re-fetches the current user record, so
// role changes take effect on the next request rather than at re-login.
func (s *SessionStrategy) Resolve(c echo.Context) (*domain.User, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	ctx := c.Request().Context()
	userID, err := s.sessions.Get(ctx, cookie.Value)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Clear destroys the server-side session record and expires the cookie.
func (s *SessionStrategy) Clear(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := s.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(expireCookie(SessionCookieName, s.secure))
	return nil
}
