package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"heatmap-api/internal/svc"
	"heatmap-api/internal/types"
)

type IntervalsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIntervalsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IntervalsLogic {
	return &IntervalsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Intervals lists the selectable lookback windows in declaration order.
func (l *IntervalsLogic) Intervals() (*types.IntervalsResp, error) {
	intervals := l.svcCtx.Universe.Intervals
	resp := &types.IntervalsResp{Intervals: make([]types.IntervalView, len(intervals))}
	for i, iv := range intervals {
		resp.Intervals[i] = types.IntervalView{Label: iv.Label, Days: iv.Days}
	}
	return resp, nil
}
