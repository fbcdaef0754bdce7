// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package outfits

import (
	"context"

	"drip/app/api/assistant/internal/svc"
	"drip/app/api/assistant/internal/types"
	"drip/app/common/consts/errno"
	"drip/app/common/response"
	"drip/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SaveOutfitLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSaveOutfitLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SaveOutfitLogic {
	return &SaveOutfitLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SaveOutfit forwards the outfit payload untouched; the backend derives the
// outfit id from it.
func (l *SaveOutfitLogic) SaveOutfit(payload map[string]interface{}) (resp *types.OkResponse, err error) {
	if len(payload) == 0 {
		return nil, errors.New(int(errno.InvalidParam), "outfit payload is empty")
	}

	token := util.TokenFromCtx(l.ctx)

	reply, err := l.svcCtx.Backend.SaveOutfit(l.ctx, token, payload)
	if err != nil {
		l.Logger.Error("logic: save outfit failed: ", err)
		return nil, errors.New(int(errno.BackendError), "save outfit failed")
	}

	resp = &types.OkResponse{
		Response: response.NewResponse(errno.StatusOK, "ok"),
		Ok:       reply.OK,
	}
	return
}
