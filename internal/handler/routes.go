// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"heatmap-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/instruments",
				Handler: InstrumentsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/intervals",
				Handler: IntervalsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/heatmap",
				Handler: HeatmapHandler(serverCtx),
			},
		},
	)
}
