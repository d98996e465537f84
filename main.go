package main

import (
	"os"

	"github.com/Lucas345987/Python-Master/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
