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

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type TranscriptLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTranscriptLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TranscriptLogic {
	return &TranscriptLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *TranscriptLogic) Transcript(req *types.TranscriptRequest) (resp *types.TranscriptResponse, err error) {
	conv, ok := l.svcCtx.Sessions.Get(req.SessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}

	resp = &types.TranscriptResponse{
		Response:   response.NewResponse(errno.StatusOK, "ok"),
		SessionId:  conv.ID,
		Transcript: helper.ToMessages(conv.Transcript()),
	}
	return
}
