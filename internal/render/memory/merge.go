package memory

import (
	"chartd/internal/render"
	"chartd/pkg/types"
)

// normalize copies maps and generic slices recursively so the stored option
// never aliases caller state. Named map types collapse to map[string]any and
// slices of components to []any; other values (typed data slices, scalars)
// are kept as-is.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case types.Option:
		return normalizeMap(t)
	case types.Series:
		return normalizeMap(t)
	case render.Params:
		return normalizeMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []types.Series:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeMap(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeMap(e)
		}
		return out
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

// mergeOption merges src into dst following ECharts' setOption merge mode:
// an object value is one component, an array holds components matched by
// index, everything else is replaced.
func mergeOption(dst, src map[string]any) {
	for k, sv := range src {
		sv = normalize(sv)
		dv, ok := dst[k]
		if !ok {
			dst[k] = sv
			continue
		}
		dst[k] = mergeComponents(dv, sv)
	}
}

func mergeComponents(dv, sv any) any {
	switch s := sv.(type) {
	case map[string]any:
		switch d := dv.(type) {
		case map[string]any:
			mergeObject(d, s)
			return d
		case []any:
			if len(d) > 0 {
				if first, ok := d[0].(map[string]any); ok {
					mergeObject(first, s)
					return d
				}
			}
		}
		return s
	case []any:
		var d []any
		switch t := dv.(type) {
		case []any:
			d = t
		case map[string]any:
			d = []any{t}
		default:
			return s
		}
		n := len(d)
		if len(s) > n {
			n = len(s)
		}
		out := make([]any, n)
		copy(out, d)
		for i, e := range s {
			em, ok := e.(map[string]any)
			if !ok {
				out[i] = e
				continue
			}
			if i < len(d) {
				if dm, ok := d[i].(map[string]any); ok {
					mergeObject(dm, em)
					out[i] = dm
					continue
				}
			}
			out[i] = em
		}
		return out
	default:
		return sv
	}
}

// mergeObject merges inside one component: nested objects merge, arrays and
// scalars replace.
func mergeObject(dst, src map[string]any) {
	for k, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				mergeObject(dm, sm)
				continue
			}
		}
		dst[k] = sv
	}
}
