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

type DeleteOutfitLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteOutfitLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteOutfitLogic {
	return &DeleteOutfitLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteOutfitLogic) DeleteOutfit(req *types.DeleteOutfitRequest) (resp *types.OkResponse, err error) {
	if req.OutfitId == "" {
		return nil, errors.New(int(errno.InvalidParam), "outfit_id is required")
	}

	token := util.TokenFromCtx(l.ctx)

	reply, err := l.svcCtx.Backend.DeleteOutfit(l.ctx, token, req.OutfitId)
	if err != nil {
		l.Logger.Error("logic: delete outfit failed: ", err)
		return nil, errors.New(int(errno.BackendError), "delete outfit failed")
	}

	resp = &types.OkResponse{
		Response: response.NewResponse(errno.StatusOK, "ok"),
		Ok:       reply.OK,
	}
	return
}
