// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package outfits

import (
	"encoding/json"
	"net/http"

	"drip/app/api/assistant/internal/logic/outfits"
	"drip/app/api/assistant/internal/svc"
	"drip/app/common/consts/errno"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

func SaveOutfitHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The outfit body is free-form; it is forwarded to the backend
		// untouched, so there is no typed request here.
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(int(errno.InvalidParam), "invalid outfit payload"))
			return
		}

		l := outfits.NewSaveOutfitLogic(r.Context(), svcCtx)
		resp, err := l.SaveOutfit(payload)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
