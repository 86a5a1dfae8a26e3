package main

import (
	"os"

	"github.com/slimkhemiri/slim-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
