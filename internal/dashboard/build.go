package dashboard

import (
	"fmt"

	"chartd/internal/config"
	"chartd/internal/series"
	"chartd/pkg/types"
)

// BuildOption derives the base option for spec: the default option with the
// spec's title, trigger and categories applied, and spec.Option merged over
// it one level deep. Charts made only of pie or donut series drop the
// cartesian axes.
func BuildOption(spec config.ChartSpec) types.Option {
	opt := series.DefaultOption()
	if title, ok := opt["title"].(map[string]any); ok {
		title["text"] = spec.Title
		title["subtext"] = spec.Subtitle
	}
	if spec.Trigger != "" {
		if tip, ok := opt["tooltip"].(map[string]any); ok {
			tip["trigger"] = spec.Trigger
		}
	}
	if len(spec.Categories) > 0 {
		if x, ok := opt["xAxis"].(map[string]any); ok {
			data := make([]any, len(spec.Categories))
			for i, c := range spec.Categories {
				data[i] = c
			}
			x["data"] = data
		}
	}
	if polarOnly(spec.Series) {
		delete(opt, "xAxis")
		delete(opt, "yAxis")
	}
	for k, v := range spec.Option {
		src, sok := v.(map[string]any)
		dst, dok := opt[k].(map[string]any)
		if sok && dok {
			for kk, vv := range src {
				dst[kk] = vv
			}
			continue
		}
		opt[k] = v
	}
	return opt
}

func polarOnly(specs []config.SeriesSpec) bool {
	if len(specs) == 0 {
		return false
	}
	for _, s := range specs {
		k := series.Kind(s.Kind)
		if k != series.KindPie && k != series.KindDonut {
			return false
		}
	}
	return true
}

// BuildSeries runs the series builder for every entry of spec.
func BuildSeries(spec config.ChartSpec) ([]any, error) {
	out := make([]any, 0, len(spec.Series))
	for i, s := range spec.Series {
		built, err := series.Build(series.Spec{
			Kind:           series.Kind(s.Kind),
			Name:           s.Name,
			Data:           s.Data,
			Options:        types.Option(s.Options),
			CornerRounding: s.CornerRounding,
		})
		if err != nil {
			return nil, fmt.Errorf("chart %q series %d: %w", spec.ID, i, err)
		}
		out = append(out, built)
	}
	return out, nil
}
