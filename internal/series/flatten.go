package series

import (
	"reflect"

	"chartd/pkg/types"
)

// Flatten collapses arbitrarily nested series lists into one flat list.
// Elements may be types.Series, map[string]any, or slices of either at any
// depth. Other values are skipped.
func Flatten(items ...any) []types.Series {
	out, _ := FlattenSkipped(items...)
	return out
}

// FlattenSkipped is Flatten that also returns the non-nil leaf values that
// are not series descriptors.
func FlattenSkipped(items ...any) ([]types.Series, []any) {
	f := flattener{out: make([]types.Series, 0, len(items))}
	for _, it := range items {
		f.add(it)
	}
	return f.out, f.skipped
}

type flattener struct {
	out     []types.Series
	skipped []any
}

func (f *flattener) add(v any) {
	switch t := v.(type) {
	case nil:
		return
	case types.Series:
		f.out = append(f.out, t)
		return
	case map[string]any:
		f.out = append(f.out, types.Series(t))
		return
	case types.Option:
		f.out = append(f.out, types.Series(t))
		return
	case []types.Series:
		f.out = append(f.out, t...)
		return
	case []any:
		for _, e := range t {
			f.add(e)
		}
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			f.add(rv.Index(i).Interface())
		}
		return
	}
	f.skipped = append(f.skipped, v)
}
