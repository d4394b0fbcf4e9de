// Package series builds ECharts series descriptors and the baseline chart
// option. Builders are pure: every call returns fresh values.
package series

import "chartd/pkg/types"

// Kind names a chart kind understood by Build.
type Kind string

const (
	KindLine    Kind = "line"
	KindBar     Kind = "bar"
	KindBoxPlot Kind = "boxplot"
	KindPie     Kind = "pie"
	KindDonut   Kind = "donut"
)

// Box is one boxplot point: [Q1, Q3, min, max].
type Box [4]float64

// placeholder names for series built without one
var defaultNames = map[Kind]string{
	KindLine:    "Insert line name",
	KindBar:     "Insert bar name",
	KindBoxPlot: "Insert boxplot name",
	KindPie:     "Insert pie name",
	KindDonut:   "Insert donuts name",
}

func nameOr(name string, kind Kind) string {
	if name == "" {
		return defaultNames[kind]
	}
	return name
}

// apply shallow-merges overrides onto s; override values win.
func apply(s types.Series, overrides types.Option) []types.Series {
	for k, v := range overrides {
		s[k] = v
	}
	return []types.Series{s}
}

// Line returns a line series. data is one value per category.
func Line(name string, data []float64, overrides types.Option) []types.Series {
	return apply(types.Series{
		"name": nameOr(name, KindLine),
		"type": "line",
		"data": data,
	}, overrides)
}

// Bar returns a bar series. data is one value per category.
func Bar(name string, data []float64, overrides types.Option) []types.Series {
	return apply(types.Series{
		"name": nameOr(name, KindBar),
		"type": "bar",
		"data": data,
	}, overrides)
}

// BoxPlot returns a box series drawn with the candlestick renderer, whose
// [open, close, lowest, highest] layout matches [Q1, Q3, min, max].
func BoxPlot(name string, data []Box, overrides types.Option) []types.Series {
	return apply(types.Series{
		"name": nameOr(name, KindBoxPlot),
		"type": "candlestick",
		"data": data,
	}, overrides)
}

// Pie returns a 50% radius pie series with a shadow on hover.
func Pie(name string, data []types.PieItem, overrides types.Option) []types.Series {
	return apply(types.Series{
		"name":   nameOr(name, KindPie),
		"type":   "pie",
		"radius": "50%",
		"data":   data,
		"emphasis": map[string]any{
			"itemStyle": map[string]any{
				"shadowBlur":    10,
				"shadowOffsetX": 0,
				"shadowColor":   "rgba(0, 0, 0, 0.5)",
			},
		},
	}, overrides)
}

// Donut returns a ring pie series whose label shows in the center on hover.
// cornerRounding rounds each segment with a white 2px border.
func Donut(name string, data []types.PieItem, overrides types.Option, cornerRounding bool) []types.Series {
	itemStyle := map[string]any{}
	if cornerRounding {
		itemStyle = map[string]any{
			"borderRadius": 10,
			"borderColor":  "#fff",
			"borderWidth":  2,
		}
	}
	return apply(types.Series{
		"name":              nameOr(name, KindDonut),
		"type":              "pie",
		"radius":            []string{"40%", "70%"},
		"avoidLabelOverlap": true,
		"itemStyle":         itemStyle,
		"label": map[string]any{
			"show":     false,
			"position": "center",
		},
		"emphasis": map[string]any{
			"label": map[string]any{
				"show":       true,
				"fontSize":   20,
				"fontWeight": "bold",
			},
		},
		"labelLine": map[string]any{"show": false},
		"data":      data,
	}, overrides)
}
