// breeze is a terminal-based file explorer.
//
// It takes a directory as its only argument, either on the command line or,
// when stdin is not a terminal, as text piped on stdin:
//
//	breeze ~/src
//	fd -t d | fzf | breeze
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/w31r4/breeze/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "breeze: %v\n", err)
		os.Exit(1)
	}
}
