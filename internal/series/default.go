package series

import (
	"encoding/json"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/opts"

	"chartd/pkg/types"
)

// baseline mirrors the top-level option blocks using go-echarts' typed
// option structs so the JSON field names follow ECharts exactly.
type baseline struct {
	Title   opts.Title   `json:"title"`
	Tooltip opts.Tooltip `json:"tooltip"`
	Legend  opts.Legend  `json:"legend"`
	XAxis   opts.XAxis   `json:"xAxis"`
	YAxis   opts.YAxis   `json:"yAxis"`
}

// DefaultOption returns a fresh baseline option: centered title, item
// tooltip, legend, category x axis and value y axis. It has no series; the
// chart facade supplies those.
func DefaultOption() types.Option {
	b := baseline{
		Title:   opts.Title{Title: "Main title", Subtitle: "Subtitle (optional)", Left: "center"},
		Tooltip: opts.Tooltip{Trigger: "item"},
		XAxis:   opts.XAxis{Type: "category"},
		YAxis:   opts.YAxis{Type: "value"},
	}
	out := mustOption(b)
	// omitempty drops these zero values; ECharts wants them explicit.
	if x, ok := out["xAxis"].(map[string]any); ok {
		x["data"] = []any{}
		x["axisLabel"] = map[string]any{"rotate": 0}
	}
	return out
}

// mustOption converts a constant option struct into its map form.
func mustOption(v any) types.Option {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("series: encode baseline option: %v", err))
	}
	out := types.Option{}
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("series: decode baseline option: %v", err))
	}
	return out
}
