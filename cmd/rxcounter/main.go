// rxcounter drives a counter stream from four actions: start a new
// counter, count, raise an error and complete. Every emission is shown
// as the current count, and even emissions also as the even count.
//
// Two front-ends are available:
//
// tui (default): an interactive terminal UI with four buttons. Raising
// an error prompts for the message.
//
// replay: runs a script of actions headlessly and prints what the
// display ends up showing, for example
//
//	rxcounter replay "start,inc,inc,error:boom"
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
