package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// ErrNoPoints is returned when the input holds no samples.
var ErrNoPoints = errors.New("invalid number of points: 0")

// ReadPoints parses one "x y" pair per line. Values may be separated by
// whitespace or a comma. Blank lines and text after '#' are ignored.
func ReadPoints(r io.Reader) (x, y []float64, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, errors.Newf("line %d: expected 2 values, got %d", lineNo, len(fields))
		}

		xi, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d: x", lineNo)
		}
		yi, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d: y", lineNo)
		}
		x = append(x, xi)
		y = append(y, yi)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read points")
	}
	if len(x) == 0 {
		return nil, nil, ErrNoPoints
	}
	return x, y, nil
}
