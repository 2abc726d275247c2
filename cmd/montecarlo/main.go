// Montecarlo estimates pi from ten million random samples and reports
// how long the sampling took. It takes no arguments, seeds itself from
// the clock, and prints its result and elapsed time to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/speedtoor/bench"
)

func main() {
	if _, err := bench.Run(os.Stdout, bench.MonteCarloPi(0, 0)); err != nil {
		fmt.Fprintf(os.Stderr, "montecarlo: %v\n", err)
		os.Exit(1)
	}
}
