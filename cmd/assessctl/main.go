package main

import (
	"fmt"
	"os"

	"github.com/kikoolz/desishub-assessment-app/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
