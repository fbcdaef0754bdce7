package middleware

import (
	"net/http"
	"strings"

	"drip/app/common/consts/biz"
	"drip/app/common/consts/errno"
	"drip/app/common/util"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// AuthMiddleware validates bearer tokens issued by the stylist backend. The
// backend signs HS256 tokens with a shared secret and puts the user id in the
// subject claim, so the gateway can resolve identity without a network call.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		userId, err := m.subject(token)
		if err != nil {
			httpx.Error(w, err)
			return
		}

		util.InjectIdentity2Ctx(r, userId, token)
		next(w, r)
	}
}

// HandleOptional lets anonymous requests through untouched but still resolves
// identity when a valid token is present. The chat paths use this so logged-in
// users keep their id while visitors stay anonymous.
func (m *AuthMiddleware) HandleOptional(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token != "" {
			if userId, err := m.subject(token); err == nil {
				util.InjectIdentity2Ctx(r, userId, token)
			}
		}
		next(w, r)
	}
}

func (m *AuthMiddleware) subject(token string) (string, error) {
	if m.secret == "" {
		return "", errors.New(int(errno.TokenInvalid), "token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(int(errno.TokenInvalid), "unexpected signing method")
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			return "", errors.New(int(errno.TokenExpired), "token expired")
		}
		return "", errors.New(int(errno.TokenInvalid), "invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", errors.New(int(errno.TokenInvalid), "invalid token claims")
	}
	return claims.Subject, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(biz.AUTHORIZATION)
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, biz.BEARER_PREFIX) {
		return strings.TrimSpace(strings.TrimPrefix(header, biz.BEARER_PREFIX))
	}
	return strings.TrimSpace(header)
}
