// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	"drip/app/api/assistant/internal/logic/helper"
	"drip/app/api/assistant/internal/svc"
	"drip/app/api/assistant/internal/types"
	"drip/app/common/consts/errno"
	"drip/app/common/response"
	"drip/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type OpenSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOpenSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OpenSessionLogic {
	return &OpenSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OpenSessionLogic) OpenSession(req *types.OpenSessionRequest) (resp *types.OpenSessionResponse, err error) {
	// Anonymous visitors are fine here; they get a generated identity that
	// stays stable for the session.
	userID, _ := util.UserIdFromCtx(l.ctx)

	conv := l.svcCtx.Sessions.Open(userID)

	resp = &types.OpenSessionResponse{
		Response:   response.NewResponse(errno.StatusOK, "ok"),
		SessionId:  conv.ID,
		UserId:     conv.UserID,
		Transcript: helper.ToMessages(conv.Transcript()),
	}
	return
}
