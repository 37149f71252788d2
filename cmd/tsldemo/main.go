// Command tsldemo drives a tslog sink with concurrent producers and
// prints the effective settings.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipp01105/tslog/sink"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var interrupted *sink.InterruptedError
		if errors.As(err, &interrupted) {
			os.Exit(sink.ExitInterrupted)
		}
		os.Exit(1)
	}
}
