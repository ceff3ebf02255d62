package main

import (
	"fmt"

	"github.com/vergenzt/granary/did"

	"github.com/urfave/cli/v2"
)

var cmdDIDWeb = &cli.Command{
	Name:  "did-web",
	Usage: "convert between URLs and did:web identifiers",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "encode",
			Usage:     "convert a URL to a did:web",
			ArgsUsage: `<url>`,
			Action:    runDIDWebEncode,
		},
		&cli.Command{
			Name:      "decode",
			Usage:     "convert a did:web to its https URL",
			ArgsUsage: `<did>`,
			Action:    runDIDWebDecode,
		},
		&cli.Command{
			Name:      "normalize",
			Usage:     "print the URL a did:web round trip produces",
			ArgsUsage: `<url>`,
			Action:    runDIDWebNormalize,
		},
	},
}

func runDIDWebEncode(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide a URL as an argument")
	}
	d, err := did.WebFromURL(s)
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

func runDIDWebDecode(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide a did:web as an argument")
	}
	u, err := did.WebToURL(s)
	if err != nil {
		return err
	}
	fmt.Println(u)
	return nil
}

func runDIDWebNormalize(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide a URL as an argument")
	}
	u, err := did.NormalizeWebURL(s)
	if err != nil {
		return err
	}
	fmt.Println(u)
	return nil
}
