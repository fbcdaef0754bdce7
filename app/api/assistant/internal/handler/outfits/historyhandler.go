// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package outfits

import (
	"net/http"

	"drip/app/api/assistant/internal/logic/outfits"
	"drip/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func HistoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := outfits.NewHistoryLogic(r.Context(), svcCtx)
		resp, err := l.History()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
