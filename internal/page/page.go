// Package page renders a self-contained HTML document that boots the
// dashboard in a browser with ECharts loaded from a CDN.
package page

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"chartd/internal/config"
	"chartd/pkg/types"
)

// Source is what the page needs from a dashboard.
type Source interface {
	Config() config.Config
	List() []types.ChartSummary
	Option(id string) (types.Option, error)
	Themes() []string
	Theme(name string) (map[string]any, error)
}

type themeView struct {
	Name string
	Data template.JS
}

type chartView struct {
	Element string
	Theme   string
	Group   string
	Width   int
	Height  int
	Resize  bool
	Option  template.JS
}

type view struct {
	Title      string
	EChartsURL string
	Themes     []themeView
	Charts     []chartView
	Groups     []string
}

var tmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.EChartsURL}}"></script>
<style>.chartd-chart{display:inline-block;margin:8px}</style>
</head>
<body>
{{range .Charts}}<div id="{{.Element}}" class="chartd-chart" style="width:{{.Width}}px;height:{{.Height}}px"></div>
{{end}}<script>
{{range .Themes}}echarts.registerTheme({{.Name}}, {{.Data}});
{{end}}{{range .Charts}}(function () {
  var el = document.getElementById({{.Element}});
  var chart = echarts.init(el, {{.Theme}} || null);
  chart.setOption({{.Option}});
{{if .Group}}  chart.group = {{.Group}};
{{end}}{{if .Resize}}  new ResizeObserver(function () { chart.resize(); }).observe(el);
{{end}}})();
{{end}}{{range .Groups}}echarts.connect({{.}});
{{end}}</script>
</body>
</html>
`))

// Render writes the page for src to w.
func Render(w io.Writer, src Source) error {
	cfg := src.Config()
	cfg.Defaults()
	v := view{Title: "chartd", EChartsURL: cfg.EChartsURL}

	for _, name := range src.Themes() {
		data, err := src.Theme(name)
		if err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
		v.Themes = append(v.Themes, themeView{Name: name, Data: template.JS(b)})
	}

	sizes := make(map[string][2]int, len(cfg.Charts))
	for _, c := range cfg.Charts {
		sizes[c.ID] = [2]int{c.Width, c.Height}
	}
	seen := map[string]bool{}
	for _, s := range src.List() {
		opt, err := src.Option(s.ID)
		if err != nil {
			return fmt.Errorf("chart %q: %w", s.ID, err)
		}
		b, err := json.Marshal(opt)
		if err != nil {
			return fmt.Errorf("chart %q: %w", s.ID, err)
		}
		size := sizes[s.ID]
		if size[0] <= 0 {
			size[0] = 600
		}
		if size[1] <= 0 {
			size[1] = 400
		}
		v.Charts = append(v.Charts, chartView{
			Element: s.Element,
			Theme:   s.Theme,
			Group:   s.Group,
			Width:   size[0],
			Height:  size[1],
			Resize:  s.Resize,
			Option:  template.JS(b),
		})
		if s.Group != "" && !seen[s.Group] {
			seen[s.Group] = true
			v.Groups = append(v.Groups, s.Group)
		}
	}
	return tmpl.Execute(w, v)
}
