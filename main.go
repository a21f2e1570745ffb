package main

import (
	"os"

	"github.com/adalundhe/strikegate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
