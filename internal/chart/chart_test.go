package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"chartd/internal/render"
	"chartd/internal/render/memory"
	"chartd/internal/series"
	"chartd/pkg/types"
)

type fixture struct {
	r    *memory.Renderer
	host *memory.Host
}

func newFixture(ids ...string) fixture {
	f := fixture{r: memory.New(), host: memory.NewHost()}
	for _, id := range ids {
		f.host.AddElement(id, 400, 300)
	}
	return f
}

func (f fixture) chart(t *testing.T, id string, s ...any) *Chart {
	t.Helper()
	c, err := New(f.r, f.host, Config{ElementID: id, Option: series.DefaultOption(), Series: s})
	if err != nil {
		t.Fatalf("New(%s): %v", id, err)
	}
	return c
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })
	return &buf
}

func optionSeries(t *testing.T, c *Chart) []any {
	t.Helper()
	s, ok := c.Chart().Option()["series"].([]any)
	if !ok {
		t.Fatalf("option has no series: %#v", c.Chart().Option())
	}
	return s
}

func TestNew_AppliesBaseOptionAndFlattenedSeries(t *testing.T) {
	f := newFixture("main")
	c := f.chart(t, "main", []any{series.Bar("a", []float64{1}, nil), []any{series.Line("b", []float64{2}, nil)}})
	if c.TargetElementID() != "main" || c.TargetElement().ID() != "main" {
		t.Fatalf("accessors: %q %v", c.TargetElementID(), c.TargetElement())
	}
	if got := optionSeries(t, c); len(got) != 2 {
		t.Fatalf("series=%#v", got)
	}
	if c.Chart().Option()["title"] == nil {
		t.Fatalf("base option not applied")
	}
	if len(c.Series()) != 2 || c.Series()[1].Name() != "b" {
		t.Fatalf("Series()=%v", c.Series())
	}
}

func TestNew_MissingElement(t *testing.T) {
	buf := captureLogs(t)
	f := newFixture()
	c, err := New(f.r, f.host, Config{ElementID: "ghost"})
	if c != nil || !IsElementNotFound(err) {
		t.Fatalf("c=%v err=%v", c, err)
	}
	if !strings.Contains(buf.String(), "ghost") {
		t.Fatalf("expected logged error, got %q", buf.String())
	}
	// Every operation on the missing chart degrades to an error.
	if err := c.UpdateSeriesData([]any{series.Bar("a", nil, nil)}, false); !IsNotInitialized(err) {
		t.Fatalf("update: %v", err)
	}
	if _, err := c.On("click", func(render.Params) {}, ""); !IsNotInitialized(err) {
		t.Fatalf("on: %v", err)
	}
	if err := c.StartResizeObserver(); !IsNotInitialized(err) {
		t.Fatalf("resize: %v", err)
	}
	if c.Chart() != nil || c.GroupName() != "" || c.EventList() != nil {
		t.Fatalf("accessors on nil chart")
	}
}

func TestUpdateSeriesData_EmptyIsNoop(t *testing.T) {
	buf := captureLogs(t)
	f := newFixture("c")
	c := f.chart(t, "c", series.Bar("a", []float64{1, 2}, nil))
	before := c.Chart().Option()
	if err := c.UpdateSeriesData(nil, false); !IsEmptySeries(err) {
		t.Fatalf("err=%v", err)
	}
	if err := c.UpdateSeriesData([]any{}, true); !IsEmptySeries(err) {
		t.Fatalf("err=%v", err)
	}
	if len(optionSeries(t, c)) != len(before["series"].([]any)) {
		t.Fatalf("series changed")
	}
	if !strings.Contains(buf.String(), "no series data to update") {
		t.Fatalf("expected logged error, got %q", buf.String())
	}
}

func TestUpdateSeriesData_NonSeriesValuesRejected(t *testing.T) {
	buf := captureLogs(t)
	f := newFixture("c")
	c := f.chart(t, "c", series.Line("a", []float64{1, 2}, nil))

	if err := c.UpdateSeriesData([]any{5, "x"}, true); !IsEmptySeries(err) {
		t.Fatalf("err=%v", err)
	}
	opt := c.Chart().Option()
	if opt["title"] == nil || opt["xAxis"] == nil || len(optionSeries(t, c)) != 1 {
		t.Fatalf("rejected update changed the option: %#v", opt)
	}
	if !strings.Contains(buf.String(), "no series descriptors") {
		t.Fatalf("expected logged rejection, got %q", buf.String())
	}

	buf.Reset()
	mixed := []any{map[string]any{"name": "b", "type": "bar", "data": []float64{3}}, 7}
	if err := c.UpdateSeriesData(mixed, false); err != nil {
		t.Fatalf("mixed update: %v", err)
	}
	if len(c.Series()) != 1 || c.Series()[0].Name() != "b" {
		t.Fatalf("Series()=%v", c.Series())
	}
	if !strings.Contains(buf.String(), "skipped non-series values") {
		t.Fatalf("expected skipped values logged, got %q", buf.String())
	}

	if err := c.UpdateSeriesData([]any{[]any{}}, false); err != nil {
		t.Fatalf("nested empty list should apply: %v", err)
	}
}

func TestUpdateSeriesData_MergeVersusReplace(t *testing.T) {
	f := newFixture("m", "r")
	initial := types.Series{"name": "a", "type": "bar", "data": []float64{9}, "barWidth": 12}
	update := []any{[]any{map[string]any{"name": "a", "type": "bar", "data": []float64{1, 2, 3}}}}

	merged := f.chart(t, "m", initial)
	if err := merged.UpdateSeriesData(update, false); err != nil {
		t.Fatalf("merge: %v", err)
	}
	s := optionSeries(t, merged)[0].(map[string]any)
	if s["barWidth"] != 12 || len(s["data"].([]float64)) != 3 {
		t.Fatalf("merge result: %#v", s)
	}
	if merged.Chart().Option()["title"] == nil {
		t.Fatalf("merge dropped title")
	}

	replaced := f.chart(t, "r", initial)
	if err := replaced.UpdateSeriesData(update, true); err != nil {
		t.Fatalf("replace: %v", err)
	}
	s = optionSeries(t, replaced)[0].(map[string]any)
	if _, ok := s["barWidth"]; ok {
		t.Fatalf("replace kept barWidth: %#v", s)
	}
	if len(replaced.Series()) != 1 {
		t.Fatalf("Series()=%v", replaced.Series())
	}
}

func TestSetOption_Forwards(t *testing.T) {
	f := newFixture("c")
	c := f.chart(t, "c")
	if err := c.SetOption(types.Option{"legend": map[string]any{"top": "bottom"}}, false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if c.Chart().Option()["legend"].(map[string]any)["top"] != "bottom" {
		t.Fatalf("legend=%#v", c.Chart().Option()["legend"])
	}
}

func TestBaseOption_IsCopy(t *testing.T) {
	f := newFixture("c")
	base := types.Option{"title": map[string]any{"text": "x"}}
	c, err := New(f.r, f.host, Config{ElementID: "c", Option: base})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	base["legend"] = map[string]any{}
	if _, ok := c.BaseOption()["legend"]; ok {
		t.Fatalf("base option aliased caller map")
	}
}

func TestDestroy_Idempotent(t *testing.T) {
	f := newFixture("c")
	c := f.chart(t, "c")
	if err := c.StartResizeObserver(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.On("click", func(render.Params) {}, ""); err != nil {
		t.Fatalf("on: %v", err)
	}
	if err := c.Destroy(); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := c.Destroy(); err != nil {
		t.Fatalf("second destroy: %v", err)
	}
	if !c.Chart().IsDisposed() || !c.Destroyed() {
		t.Fatalf("handle not disposed")
	}
	if f.host.Observers("c") != 0 || c.ResizeObserving() {
		t.Fatalf("observer left running")
	}
	if len(c.EventList()) != 0 {
		t.Fatalf("registry not cleared")
	}
	if err := c.UpdateSeriesData([]any{series.Bar("a", nil, nil)}, false); !IsDisposed(err) {
		t.Fatalf("update after destroy: %v", err)
	}
	var nilChart *Chart
	if err := nilChart.Destroy(); !IsNotInitialized(err) {
		t.Fatalf("nil destroy: %v", err)
	}
}
