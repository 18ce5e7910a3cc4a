// Command curvefit fits a linear, quadratic or exponential curve to (x, y)
// samples by least squares.
//
// Usage:
//
//	curvefit -model quadratic -input points.txt [-plot fit.png] [-save fit.json]
//
// Samples are read as "x y" pairs, one per line, from -input or stdin.
package main

import (
	"os"

	"github.com/YuminosukeSato/curvefit/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
