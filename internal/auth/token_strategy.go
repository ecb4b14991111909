package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/core/domain"
)

// TokenCookieName is the cookie carrying the signed token.
const TokenCookieName = "token"

// TokenStrategy issues stateless, self-contained signed tokens. The server
// keeps no record of issued tokens, so a proof stays valid until expiry;
// role changes only take effect when the token is re-issued at next login.
type TokenStrategy struct {
	codec  *TokenCodec
	secure bool
}

// NewTokenStrategy builds the strategy. secure controls the cookie Secure
// flag and should be true in production.
func NewTokenStrategy(codec *TokenCodec, secure bool) *TokenStrategy {
	return &TokenStrategy{codec: codec, secure: secure}
}

func (s *TokenStrategy) Name() string { return StrategyToken }

// Issue signs a token for the user and delivers it as an HTTP-only cookie
// with Max-Age matching the token lifetime.
func (s *TokenStrategy) Issue(c echo.Context, user *domain.User) error {
	signed, err := s.codec.Sign(user)
	if err != nil {
		return err
	}
	c.SetCookie(proofCookie(TokenCookieName, signed, int(s.codec.TTL().Seconds()), s.secure))
	return nil
}

// Resolve reads the token from the cookie, falling back to an
// Authorization: Bearer header for non-browser clients. Verification is
// pure computation; no store round-trip happens here.
func (s *TokenStrategy) Resolve(c echo.Context) (*domain.User, error) {
	tokenStr := s.extract(c)
	if tokenStr == "" {
		return nil, nil
	}

	claims, err := s.codec.Verify(tokenStr)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:       claims.Subject,
		Username: claims.Username,
		Admin:    claims.Admin,
	}, nil
}

// Clear expires the token cookie. The token itself remains valid until its
// expiry; there is no server-side revocation list in this design.
func (s *TokenStrategy) Clear(c echo.Context) error {
	c.SetCookie(expireCookie(TokenCookieName, s.secure))
	return nil
}

func (s *TokenStrategy) extract(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
