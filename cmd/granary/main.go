package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "granary",
		Usage:   "convert between ActivityStreams 1.0 and Bluesky lexicon JSON",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"GRANARY_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdToBsky,
		cmdToProfile,
		cmdToAS1,
		cmdDIDWeb,
	}
	return app.Run(args)
}
