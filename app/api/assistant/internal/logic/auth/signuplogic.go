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

type SignupLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSignupLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupLogic {
	return &SignupLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SignupLogic) Signup(req *types.SignupRequest) (resp *types.TokenResponse, err error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || len(req.Password) < 6 {
		return nil, errors.New(int(errno.InvalidParam), "email and a password of at least 6 characters are required")
	}

	in := &backend.SignupRequest{
		Email:    email,
		Password: req.Password,
	}
	if req.DisplayName != "" {
		in.DisplayName = &req.DisplayName
	}
	if req.Gender != "" {
		in.Gender = &req.Gender
	}

	token, err := l.svcCtx.Backend.Signup(l.ctx, in)
	if err != nil {
		l.Logger.Error("logic: backend signup failed: ", err)
		return nil, errors.New(int(errno.BackendError), "signup failed")
	}

	resp = &types.TokenResponse{
		Response:    response.NewResponse(errno.StatusOK, "ok"),
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}
	return
}
