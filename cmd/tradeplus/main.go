package main

import (
	"os"

	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/cmd/tradeplus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
