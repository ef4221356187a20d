package main

import (
	"os"

	"quoteloc/cmd/quoteloc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
