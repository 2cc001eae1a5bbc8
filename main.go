package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/landrecords/landdeck/internal/cmd"
)

func main() {
	err := cmd.Root().Execute()
	if err != nil {
		log.Error("landdeck failed", "err", err)
		os.Exit(1)
	}
}
