// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package auth

import (
	"context"
	"strings"

	"drip/app/api/assistant/internal/backend"
	"drip/app/api/assistant/internal/svc"
	"drip/app/api/assistant/internal/types"
	"drip/app/common/consts/errno"
	"drip/app/common/response"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (resp *types.TokenResponse, err error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, errors.New(int(errno.InvalidParam), "email and password are required")
	}

	token, err := l.svcCtx.Backend.Login(l.ctx, &backend.LoginRequest{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		l.Logger.Error("logic: backend login failed: ", err)
		return nil, errors.New(int(errno.InvalidCredentials), "incorrect email or password")
	}

	resp = &types.TokenResponse{
		Response:    response.NewResponse(errno.StatusOK, "ok"),
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}
	return
}
