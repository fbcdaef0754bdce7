// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"net/http"

	"drip/app/api/assistant/internal/logic/assistant"
	"drip/app/api/assistant/internal/svc"
	"drip/app/api/assistant/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func OpenSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.OpenSessionRequest

		l := assistant.NewOpenSessionLogic(r.Context(), svcCtx)
		resp, err := l.OpenSession(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
