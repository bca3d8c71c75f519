// Command salesman generates random stops on a plane and solves the tour
// over them three ways: brute force (small inputs only), hill climbing and
// simulated annealing.
//
// Usage:
//
//	salesman [flags] [node-count]
//
// See config.BindFlags for the flag set; every flag can also come from a
// YAML file (--config) or a SALESMAN_* environment variable.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/app"
	"github.com/katalvlaran/salesman/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("salesman", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: salesman [flags] [node-count]")
		fs.PrintDefaults()
	}
	config.BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(viper.New(), fs)
	if err != nil {
		fmt.Fprintln(stderr, "salesman:", err)
		return err
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "salesman:", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	if _, err = app.New(cfg, logger, stdout).Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	return nil
}
