package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/llehouerou/nerdcli/internal/cli"
	"github.com/llehouerou/nerdcli/internal/config"
)

var version string // set with -ldflags "-X main.version=..."

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version)
	if err := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, config.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Run `nerdcli init` to create the default configuration.")
		}
		os.Exit(1)
	}
}
