package main

import (
	"os"

	"github.com/pateldev/intern-scout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
