// Command depthquote reads an order-add/reduce event stream on standard
// input and prints, on standard output, the best possible total cost or
// income of immediately clearing a fixed target quantity against the
// opposite side of the book, every time that total changes.
package main

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"depthquote/internal/book"
	"depthquote/internal/bookerr"
	"depthquote/internal/dispatch"
)

func main() {
	app := &cli.App{
		Name:      "depthquote",
		Usage:     "report the cost/income of clearing a target quantity against a live order book",
		ArgsUsage: "<target-size>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("depthquote: exactly one argument required: the target quantity", 2)
	}

	target, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil || target <= 0 {
		return cli.Exit("depthquote: target quantity must be a positive integer", 2)
	}

	bk := book.NewBook(target)
	if err := dispatch.Run(os.Stdin, os.Stdout, bk); err != nil {
		if errors.Is(err, bookerr.ErrUnknownOrderID) {
			return cli.Exit("depthquote: "+err.Error(), 1)
		}
		return cli.Exit("depthquote: i/o error: "+err.Error(), 1)
	}

	return nil
}
