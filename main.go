package main

import (
	"os"

	"github.com/spigell/jobmail/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
