package main

import (
	"os"

	"github.com/przant/jeopardy-trainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
