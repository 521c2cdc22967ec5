package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// PauseOnExit keeps a double-clicked console window open on Windows until
// Enter is pressed. It does nothing when stdin is not a terminal.
func PauseOnExit() {
	if runtime.GOOS != "windows" || !isatty.IsTerminal(os.Stdin.Fd()) {
		return
	}
	waitForEnter(os.Stdin, os.Stdout)
}

func waitForEnter(in io.Reader, out io.Writer) {
	_, _ = fmt.Fprintln(out, "Press Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
