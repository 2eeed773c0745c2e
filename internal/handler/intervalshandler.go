package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"heatmap-api/internal/logic"
	"heatmap-api/internal/svc"
)

func IntervalsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewIntervalsLogic(r.Context(), svcCtx)
		resp, err := l.Intervals()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
