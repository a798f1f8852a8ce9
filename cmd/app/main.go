package main

import (
	"os"

	"github.com/platanus-hack/platanus-hack-25-team-41/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
