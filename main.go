package main

import (
	"os"

	"github.com/vocamaster/vocamaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
