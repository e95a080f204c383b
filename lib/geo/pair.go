package geo

import (
	"encoding/json"
	"fmt"
)

// Pair holds an independent horizontal and vertical value, such as a gap or a grid unit.
// Inputs may give a single number for both axes; that form is resolved by Uniform
// as soon as it enters the API.
type Pair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Uniform(v float64) Pair {
	return Pair{X: v, Y: v}
}

// Cell is the area of one X by Y cell.
func (p Pair) Cell() float64 {
	return p.X * p.Y
}

func (p Pair) ToString() string {
	if p.X == p.Y {
		return fmt.Sprintf("%v", p.X)
	}
	return fmt.Sprintf("%vx%v", p.X, p.Y)
}

// UnmarshalJSON accepts 8, [8, 4] or {"x": 8, "y": 4}.
func (p *Pair) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return p.set(v)
}

// UnmarshalTOML accepts the same forms as UnmarshalJSON.
func (p *Pair) UnmarshalTOML(v interface{}) error {
	return p.set(v)
}

func (p *Pair) set(v interface{}) error {
	switch v := v.(type) {
	case []interface{}:
		if len(v) != 2 {
			return fmt.Errorf("expected 2 values but got %d", len(v))
		}
		x, err := toFloat(v[0])
		if err != nil {
			return err
		}
		y, err := toFloat(v[1])
		if err != nil {
			return err
		}
		*p = Pair{X: x, Y: y}
		return nil
	case map[string]interface{}:
		x, err := toFloat(v["x"])
		if err != nil {
			return fmt.Errorf("x: %w", err)
		}
		y, err := toFloat(v["y"])
		if err != nil {
			return fmt.Errorf("y: %w", err)
		}
		*p = Pair{X: x, Y: y}
		return nil
	default:
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		*p = Uniform(f)
		return nil
	}
}

func toFloat(v interface{}) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("expected a number but got %T", v)
	}
}
