package consolehandler_test

import (
	"os"

	"github.com/philipp01105/tslog/handler/consolehandler"
)

// Mirror a line to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
	})
	defer h.Close()

	h.WriteLine([]byte("[INF] (12:00:00.000) > ready"))
	// Output:
	// [INF] (12:00:00.000) > ready
}
