package main

import (
	"os"

	"github.com/scottcagno/strsearch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
