package main

import (
	"os"

	"github.com/markdown2resume/md2resume/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
