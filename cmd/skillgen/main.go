package main

import (
	"os"

	"github.com/AmanSikarwar/agent-skills-generator/cmd/skillgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
