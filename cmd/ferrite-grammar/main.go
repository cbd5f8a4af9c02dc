package main

import (
	"os"

	"github.com/ferrite-lang/ferrite/cmd/ferrite-grammar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
