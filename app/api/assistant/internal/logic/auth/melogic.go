// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package auth

import (
	"context"
	"time"

	"drip/app/api/assistant/internal/svc"
	"drip/app/api/assistant/internal/types"
	"drip/app/common/consts/errno"
	"drip/app/common/response"
	"drip/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type MeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MeLogic {
	return &MeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MeLogic) Me() (resp *types.MeResponse, err error) {
	token := util.TokenFromCtx(l.ctx)

	user, err := l.svcCtx.Backend.Me(l.ctx, token)
	if err != nil {
		l.Logger.Error("logic: backend me failed: ", err)
		return nil, errors.New(int(errno.BackendError), "fetch profile failed")
	}

	resp = &types.MeResponse{
		Response:  response.NewResponse(errno.StatusOK, "ok"),
		Id:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.DisplayName != nil {
		resp.DisplayName = *user.DisplayName
	}
	if user.Gender != nil {
		resp.Gender = *user.Gender
	}
	return
}
