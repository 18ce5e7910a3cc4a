package regression

import (
	"strings"

	"github.com/YuminosukeSato/curvefit/core/model"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Kind identifies a curve family. The numeric values match the menu
// numbers accepted by ParseKind.
type Kind uint8

const (
	KindLinear Kind = iota + 1
	KindQuadratic
	KindExponential
)

var kindNames = map[Kind]string{
	KindLinear:      "linear",
	KindQuadratic:   "quadratic",
	KindExponential: "exponential",
}

var kindAliases = map[string]Kind{
	"linear":      KindLinear,
	"line":        KindLinear,
	"1":           KindLinear,
	"quadratic":   KindQuadratic,
	"parabola":    KindQuadratic,
	"2":           KindQuadratic,
	"exponential": KindExponential,
	"exp":         KindExponential,
	"3":           KindExponential,
}

// String returns the canonical name of k, or "unknown".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds returns every supported kind in menu order.
func Kinds() []Kind {
	return []Kind{KindLinear, KindQuadratic, KindExponential}
}

// ParseKind maps a name, alias or menu number ("1", "2", "3") to a Kind.
// Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, errors.NewValueError("ParseKind", "unknown model "+strings.TrimSpace(s)+"; want linear, quadratic or exponential")
}

// New returns an unfitted estimator for kind.
func New(kind Kind, opts ...Option) (model.Curve, error) {
	switch kind {
	case KindLinear:
		return NewLinearRegression(opts...), nil
	case KindQuadratic:
		return NewQuadraticRegression(opts...), nil
	case KindExponential:
		return NewExponentialRegression(opts...), nil
	default:
		return nil, errors.Newf("curvefit: unsupported model kind %d", kind)
	}
}
