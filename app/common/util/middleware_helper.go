package util

import (
	"context"
	"net/http"

	"drip/app/common/consts/biz"
	"drip/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func UserIdFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.TokenEmpty), "missing context")
	}

	if val, ok := ctx.Value(biz.USER_KEY).(string); ok && val != "" {
		return val, nil
	}

	return "", errors.New(int(errno.TokenEmpty), "unauthorized")
}

// TokenFromCtx returns the raw bearer token carried by the request, or an
// empty string for anonymous callers.
func TokenFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(biz.TOKEN_KEY).(string); ok {
		return val
	}
	return ""
}

func InjectIdentity2Ctx(r *http.Request, userId, token string) {
	ctx := context.WithValue(r.Context(), biz.USER_KEY, userId)
	ctx = context.WithValue(ctx, biz.TOKEN_KEY, token)
	*r = *r.WithContext(ctx)
}
