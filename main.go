package main

import (
	"os"

	"github.com/kilianp07/flexrate/cmd"
)

func main() {
	code := cmd.Execute()
	cmd.PauseOnExit()
	os.Exit(code)
}
