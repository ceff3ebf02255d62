package main

import (
	"github.com/vergenzt/granary/bluesky"

	"github.com/urfave/cli/v2"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "input format: json or yaml",
		Value:   "json",
	},
	&cli.BoolFlag{
		Name:  "pretty",
		Usage: "indent JSON output",
	},
}

var cmdToBsky = &cli.Command{
	Name:      "to-bsky",
	Usage:     "convert an AS1 object or activity to a Bluesky lexicon document",
	ArgsUsage: `<file>`,
	Flags:     inputFlags,
	Action:    runToBsky,
}

var cmdToProfile = &cli.Command{
	Name:      "to-profile",
	Usage:     "convert an AS1 actor to an app.bsky.actor.profile record",
	ArgsUsage: `<file>`,
	Flags:     inputFlags,
	Action:    runToProfile,
}

var cmdToAS1 = &cli.Command{
	Name:      "to-as1",
	Usage:     "convert a Bluesky lexicon document to AS1",
	ArgsUsage: `<file>`,
	Flags:     inputFlags,
	Action:    runToAS1,
}

func runToBsky(cctx *cli.Context) error {
	doc, err := readDocument(cctx)
	if err != nil {
		return err
	}
	out, err := bluesky.FromAS1(doc)
	if err != nil {
		return err
	}
	return printJSON(cctx, out)
}

func runToProfile(cctx *cli.Context) error {
	doc, err := readDocument(cctx)
	if err != nil {
		return err
	}
	out, err := bluesky.AS1ToProfile(doc)
	if err != nil {
		return err
	}
	return printJSON(cctx, out)
}

func runToAS1(cctx *cli.Context) error {
	doc, err := readDocument(cctx)
	if err != nil {
		return err
	}
	out, err := bluesky.ToAS1(doc)
	if err != nil {
		return err
	}
	return printJSON(cctx, out)
}
