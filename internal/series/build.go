package series

import (
	"encoding/json"
	"errors"
	"fmt"

	"chartd/pkg/types"
)

// Spec is a loosely typed series definition as it arrives from configuration
// files or HTTP bodies.
type Spec struct {
	Kind           Kind
	Name           string
	Data           any
	Options        types.Option
	CornerRounding *bool
}

// Build decodes spec.Data into the payload shape of spec.Kind and runs the
// matching builder.
func Build(spec Spec) ([]types.Series, error) {
	switch spec.Kind {
	case KindLine, KindBar:
		var data []float64
		if err := decode(spec.Data, &data); err != nil {
			return nil, fmt.Errorf("%s series %q: %w", spec.Kind, spec.Name, err)
		}
		if spec.Kind == KindLine {
			return Line(spec.Name, data, spec.Options), nil
		}
		return Bar(spec.Name, data, spec.Options), nil
	case KindBoxPlot:
		var data []Box
		if err := decode(spec.Data, &data); err != nil {
			return nil, fmt.Errorf("boxplot series %q: %w", spec.Name, err)
		}
		return BoxPlot(spec.Name, data, spec.Options), nil
	case KindPie, KindDonut:
		var data []types.PieItem
		if err := decode(spec.Data, &data); err != nil {
			return nil, fmt.Errorf("%s series %q: %w", spec.Kind, spec.Name, err)
		}
		if spec.Kind == KindPie {
			return Pie(spec.Name, data, spec.Options), nil
		}
		rounding := true
		if spec.CornerRounding != nil {
			rounding = *spec.CornerRounding
		}
		return Donut(spec.Name, data, spec.Options, rounding), nil
	default:
		return nil, ErrUnknownKind(string(spec.Kind))
	}
}

// decode converts YAML/TOML/JSON-decoded values into dst by way of JSON.
func decode(src any, dst any) error {
	if src == nil {
		return nil
	}
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

type unknownKindError struct{ kind string }

func (e unknownKindError) Error() string { return "unknown series kind: " + e.kind }

// ErrUnknownKind reports a kind Build has no builder for.
func ErrUnknownKind(kind string) error { return unknownKindError{kind: kind} }

// IsUnknownKind reports whether err came from an unsupported kind.
func IsUnknownKind(err error) bool {
	var e unknownKindError
	return errors.As(err, &e)
}
