// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package outfits

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

type HistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HistoryLogic {
	return &HistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HistoryLogic) History() (resp *types.HistoryResponse, err error) {
	token := util.TokenFromCtx(l.ctx)

	history, err := l.svcCtx.Backend.History(l.ctx, token)
	if err != nil {
		l.Logger.Error("logic: fetch history failed: ", err)
		return nil, errors.New(int(errno.BackendError), "fetch history failed")
	}

	resp = &types.HistoryResponse{
		Response: response.NewResponse(errno.StatusOK, "ok"),
		UserId:   history.UserID,
		Entries:  make([]types.HistoryEntry, 0, len(history.Entries)),
	}
	for _, entry := range history.Entries {
		resp.Entries = append(resp.Entries, types.HistoryEntry{
			UserId:    entry.UserID,
			OutfitId:  entry.OutfitID,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
			Payload:   entry.Payload,
		})
	}
	return
}
