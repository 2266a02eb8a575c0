package main

import (
	"fmt"
	"os"

	"github.com/jonalee1/adstock-visualization/internal/cli"
	"github.com/jonalee1/adstock-visualization/internal/config"
	"github.com/jonalee1/adstock-visualization/internal/lib/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return cli.ExitInvalid
	}

	logger, err := log.NewLogger(&cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		return cli.ExitInvalid
	}

	app := cli.NewApp(cfg, logger)
	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}
