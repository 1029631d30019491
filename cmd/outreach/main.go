// Command outreach sends one message with an attachment to every address of a
// contact sheet, over HTTP or from the terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
