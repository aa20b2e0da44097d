package main

import (
	"os"

	"github.com/ahmadkhatib02/echolearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
