// Command api serves the transfer quote and draft workflow over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/ayo6706/remittance-engine/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "remittance-engine: %v\n", err)
		os.Exit(1)
	}
}
