package logic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"heatmap-api/internal/svc"
	"heatmap-api/internal/types"
	"heatmap-api/pkg/heatmap"
)

// ErrUnknownInterval reports a heatmap request for an interval label the
// universe does not define.
var ErrUnknownInterval = errors.New("unknown interval")

const emptyDatasetMessage = "No valid data to display. Try a different interval or selection."

type HeatmapLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
	now    func() time.Time
}

func NewHeatmapLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HeatmapLogic {
	return &HeatmapLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
		now:    time.Now,
	}
}

// Heatmap resolves the requested interval and selection, gathers market data
// through the gateway and assembles the treemap dataset. Symbols without a
// resolvable return or market cap are dropped, never rendered with
// placeholder values.
func (l *HeatmapLogic) Heatmap(req *types.HeatmapReq) (*types.HeatmapResp, error) {
	interval, ok := l.svcCtx.Universe.IntervalByLabel(req.Interval)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInterval, req.Interval)
	}

	instruments := l.svcCtx.Universe.Select(splitSymbols(req.Symbols))
	symbols := make([]string, len(instruments))
	for i, inst := range instruments {
		symbols[i] = inst.Symbol
	}

	minDays := interval.Days + l.svcCtx.Config.HistoryPaddingDays
	data := l.svcCtx.Gateway.FetchAll(l.ctx, symbols, minDays)

	returns := make(map[string]float64, len(data))
	caps := make(map[string]float64, len(data))
	for _, d := range data {
		if r, ok := heatmap.Return(d.History, interval.Days); ok {
			returns[d.Symbol] = r
		}
		if d.Cap != nil {
			caps[d.Symbol] = d.Cap.MarketCap
		}
	}

	resp := &types.HeatmapResp{
		Interval:     interval.Label,
		LookbackDays: interval.Days,
		AsOf:         l.now().UTC().Format(time.RFC3339),
		Rows:         []types.HeatmapRow{},
	}

	dataset, err := heatmap.Assemble(instruments, returns, caps)
	if err != nil {
		if errors.Is(err, heatmap.ErrEmptyDataset) {
			l.Infof("heatmap: empty dataset interval=%q symbols=%d", interval.Label, len(symbols))
			resp.Message = emptyDatasetMessage
			return resp, nil
		}
		return nil, err
	}

	resp.ScaleBound = dataset.ScaleBound
	resp.Rows = make([]types.HeatmapRow, len(dataset.Rows))
	for i, row := range dataset.Rows {
		resp.Rows[i] = types.HeatmapRow{
			Symbol:    row.Symbol,
			Name:      row.Name,
			ReturnPct: math.Round(row.Return*10000) / 100,
			MarketCap: row.MarketCap,
		}
	}
	return resp, nil
}

func splitSymbols(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
