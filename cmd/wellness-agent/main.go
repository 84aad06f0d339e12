package main

import (
	"os"

	"github.com/sanjaykm/wellness-agent/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
