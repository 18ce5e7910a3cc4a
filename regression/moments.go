package regression

import (
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

func checkSamples(op string, x, y []float64) error {
	if len(x) != len(y) {
		return errors.NewDimensionError(op, len(x), len(y), 0)
	}
	return nil
}

// hasDistinct reports whether x holds at least k distinct values.
func hasDistinct(x []float64, k int) bool {
	seen := make([]float64, 0, k)
	for _, v := range x {
		dup := false
		for _, s := range seen {
			if s == v {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, v)
			if len(seen) >= k {
				return true
			}
		}
	}
	return len(seen) >= k
}
