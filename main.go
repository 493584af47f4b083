package main

import (
	"os"

	"github.com/carwise/vehicle-advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
