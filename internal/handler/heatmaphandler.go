package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"heatmap-api/internal/logic"
	"heatmap-api/internal/svc"
	"heatmap-api/internal/types"
)

func HeatmapHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.HeatmapReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewHeatmapLogic(r.Context(), svcCtx)
		resp, err := l.Heatmap(&req)
		if err != nil {
			if errors.Is(err, logic.ErrUnknownInterval) {
				httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
