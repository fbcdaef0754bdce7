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

type SavedOutfitsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSavedOutfitsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SavedOutfitsLogic {
	return &SavedOutfitsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SavedOutfitsLogic) SavedOutfits() (resp *types.SavedOutfitsResponse, err error) {
	token := util.TokenFromCtx(l.ctx)

	rows, err := l.svcCtx.Backend.SavedOutfits(l.ctx, token)
	if err != nil {
		l.Logger.Error("logic: list saved outfits failed: ", err)
		return nil, errors.New(int(errno.BackendError), "list saved outfits failed")
	}

	resp = &types.SavedOutfitsResponse{
		Response: response.NewResponse(errno.StatusOK, "ok"),
		Outfits:  make([]types.SavedOutfit, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Outfits = append(resp.Outfits, types.SavedOutfit{
			Id:        row.ID,
			UserId:    row.UserID,
			OutfitId:  row.OutfitID,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
			Payload:   row.Payload,
		})
	}
	return
}
