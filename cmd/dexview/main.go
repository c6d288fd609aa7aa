package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"dexview/internal/errors"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err for the user. Input errors also list the values
// that were rejected and point at the help.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, errorText(err.Error()))
	if !errors.IsInvalidInputError(err) {
		return
	}

	var inputErr *errors.InvalidInputError
	if errors.As(err, &inputErr) {
		ctx := inputErr.Context()
		keys := make([]string, 0, len(ctx))
		for k := range ctx {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintln(w, mutedText(fmt.Sprintf("  %s: %v", k, ctx[k])))
		}
	}
	fmt.Fprintln(w, mutedText("Run 'dexview --help' for usage."))
}
