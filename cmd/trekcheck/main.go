// Command trekcheck checks whether a car may tow a trailer under a driving
// license class.
//
// Usage:
//
//	trekcheck check --car car.json --trailer trailer.json --license BE
//	trekcheck licenses
//	trekcheck schema request
//	trekcheck serve
//
// See --help for the flags of each command.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=1.2.3".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process status: 2 when the checked
// combination is not allowed, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCombinationNotAllowed):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "trekcheck: %v\n", err)
		return 1
	}
}
