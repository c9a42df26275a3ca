package main

import (
	"os"

	"latlng-api/cmd/latlng/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
