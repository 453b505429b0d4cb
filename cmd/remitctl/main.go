package main

import (
	"os"

	"github.com/ayo6706/remittance-engine/cmd/remitctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
