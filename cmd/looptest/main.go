// Looptest measures nested loop arithmetic: 999x999 iterations of a
// per-step modular accumulation. It takes no arguments and prints its
// result and elapsed time to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/weiihann/speedtoor/bench"
)

func main() {
	if _, err := bench.Run(os.Stdout, bench.LoopTest()); err != nil {
		fmt.Fprintf(os.Stderr, "looptest: %v\n", err)
		os.Exit(1)
	}
}
