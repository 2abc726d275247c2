// Funcall measures repeated function call overhead by counting the
// quadratic residues mod 5000, one call per candidate value. It takes
// no arguments and prints its result and elapsed time to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/speedtoor/bench"
)

func main() {
	if _, err := bench.Run(os.Stdout, bench.FunctionCall()); err != nil {
		fmt.Fprintf(os.Stderr, "funcall: %v\n", err)
		os.Exit(1)
	}
}
