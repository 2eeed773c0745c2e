package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"heatmap-api/internal/svc"
	"heatmap-api/internal/types"
)

type InstrumentsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewInstrumentsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *InstrumentsLogic {
	return &InstrumentsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Instruments lists the configured universe in declaration order.
func (l *InstrumentsLogic) Instruments() (*types.InstrumentsResp, error) {
	instruments := l.svcCtx.Universe.Instruments
	resp := &types.InstrumentsResp{Instruments: make([]types.InstrumentView, len(instruments))}
	for i, inst := range instruments {
		resp.Instruments[i] = types.InstrumentView{Symbol: inst.Symbol, Name: inst.Name}
	}
	return resp, nil
}
