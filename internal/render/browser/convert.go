//go:build js && wasm

package browser

import (
	"encoding/json"
	"fmt"
	"syscall/js"
)

// toJS converts a Go value into a plain JS value through JSON.
func toJS(v any) (js.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return js.Undefined(), err
	}
	return js.Global().Get("JSON").Call("parse", string(b)), nil
}

// fromJS converts a JS object into a Go map through JSON.
func fromJS(v js.Value) (map[string]any, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	out, err := decodeJS(v)
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %T", out)
	}
	return m, nil
}

// decodeJS round-trips v through JSON.stringify. Values that cannot be
// serialized (cyclic, host objects) yield an error.
func decodeJS(v js.Value) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stringify: %v", r)
		}
	}()
	s := js.Global().Get("JSON").Call("stringify", v)
	if s.Type() != js.TypeString {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(s.String()), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// eventKeys are the fields copied from an ECharts event object. The object
// itself carries DOM references and cannot be serialized as a whole.
var eventKeys = []string{
	"type", "componentType", "componentSubType", "componentIndex",
	"seriesType", "seriesIndex", "seriesId", "seriesName",
	"name", "dataIndex", "dataType", "value", "color",
	"batch", "selected", "start", "end", "from",
}

func paramsFromJS(v js.Value) map[string]any {
	if v.Type() != js.TypeObject {
		return nil
	}
	p := make(map[string]any)
	for _, k := range eventKeys {
		f := v.Get(k)
		switch f.Type() {
		case js.TypeUndefined, js.TypeFunction, js.TypeSymbol:
		case js.TypeNull:
			p[k] = nil
		case js.TypeString:
			p[k] = f.String()
		case js.TypeNumber:
			p[k] = f.Float()
		case js.TypeBoolean:
			p[k] = f.Bool()
		case js.TypeObject:
			if d, err := decodeJS(f); err == nil {
				p[k] = d
			}
		}
	}
	return p
}
