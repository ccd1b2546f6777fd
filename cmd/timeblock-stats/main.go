package main

import (
	"fmt"
	"os"

	"timeblock-stats/cmd/timeblock-stats/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
