package gctarget

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"oss.terrastruct.com/xdefer"
)

// Validate reports every structural problem in l at once: missing or duplicate ids,
// non-positive sizes and non-finite coordinates. The engine itself never validates.
func Validate(l Layout) (err error) {
	defer xdefer.Errorf(&err, "invalid layout")

	seen := make(map[string]int, len(l))
	for i, it := range l {
		name := it.ID
		if name == "" {
			err = multierr.Append(err, fmt.Errorf("item %d: missing id", i))
			name = fmt.Sprintf("#%d", i)
		} else if j, ok := seen[it.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("items %d and %d share id %q", j, i, it.ID))
		} else {
			seen[it.ID] = i
		}

		if !(it.Width > 0) {
			err = multierr.Append(err, fmt.Errorf("item %s: width must be positive, got %v", name, it.Width))
		}
		if !(it.Height > 0) {
			err = multierr.Append(err, fmt.Errorf("item %s: height must be positive, got %v", name, it.Height))
		}
		for _, f := range []struct {
			field string
			v     float64
		}{
			{"x", it.X},
			{"y", it.Y},
			{"width", it.Width},
			{"height", it.Height},
			{"rotation", it.Rotation},
		} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				err = multierr.Append(err, fmt.Errorf("item %s: %s is not finite", name, f.field))
			}
		}
	}
	return err
}
