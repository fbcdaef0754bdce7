// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"
	"time"

	"drip/app/api/assistant/internal/agent/chat"
	"drip/app/api/assistant/internal/logic/helper"
	"drip/app/api/assistant/internal/mq"
	"drip/app/api/assistant/internal/svc"
	"drip/app/api/assistant/internal/types"
	"drip/app/common/consts/errno"
	"drip/app/common/response"
	"drip/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SendMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendMessageLogic {
	return &SendMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SendMessageLogic) SendMessage(req *types.SendMessageRequest) (resp *types.SendMessageResponse, err error) {
	if req == nil || req.SessionId == "" {
		return nil, errors.New(int(errno.InvalidParam), "session_id is required")
	}

	conv, ok := l.svcCtx.Sessions.Get(req.SessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}

	token := util.TokenFromCtx(l.ctx)
	turn, err := l.svcCtx.Agent.Send(l.ctx, conv, req.Content, token)
	if err == chat.ErrEmptyMessage {
		return nil, errors.New(int(errno.InvalidParam), "message is empty")
	}
	if err != nil {
		l.Logger.Error("logic: send message failed: ", err)
		return nil, errors.New(int(errno.InternalError), "send message failed")
	}

	l.publishTurn(conv, turn)

	resp = &types.SendMessageResponse{
		Response: response.NewResponse(errno.StatusOK, "ok"),
		Messages: []types.Message{
			helper.ToMessage(turn.User),
			helper.ToMessage(turn.Assistant),
		},
	}
	return
}

func (l *SendMessageLogic) publishTurn(conv *chat.Conversation, turn *chat.Turn) {
	path := mq.PathChat
	if turn.Recommend {
		path = mq.PathRecommend
	}
	evt := mq.TurnEvent{
		SessionId: conv.ID,
		UserId:    conv.UserID,
		Path:      path,
		Failed:    turn.Failed,
		At:        time.Now(),
	}
	go func() {
		if err := mq.PublishTurnEvent(l.svcCtx.Config.KafkaConf, evt); err != nil {
			logx.Errorf("publish turn event failed: %v", err)
		}
	}()
}
