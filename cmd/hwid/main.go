package main

import (
	"os"

	"github.com/slashdevops/hwid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
