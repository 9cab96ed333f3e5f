package main

import (
	"os"

	"github.com/msto63/qLib/cmd/qlib/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
