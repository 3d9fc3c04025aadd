package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/repr"
	"github.com/andrewpillar/blk"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "blk",
		Usage: "parse and canonicalize BLK configuration files",
		Commands: []*cli.Command{
			{
				Name:      "fmt",
				Usage:     "rewrite a BLK file in canonical form",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "write the result back to the source file",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the result to `FILE` instead of stdout",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Usage:   "parse only, write nothing",
					},
				},
				Action: fmtFile,
			},
			{
				Name:      "dump",
				Usage:     "parse a BLK file and print its tree",
				ArgsUsage: "<file>",
				Action:    dumpFile,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "blk:", err)
		os.Exit(1)
	}
}

func load(ctx *cli.Context) (*blk.Config, error) {
	path := ctx.Args().First()

	if path == "" {
		return nil, fmt.Errorf("missing file argument")
	}

	b, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%s: input is not valid UTF-8", path)
	}

	c, leftover, err := blk.Parse(path, string(b))

	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(leftover) != "" {
		fmt.Fprintf(os.Stderr, "blk: warning: %s: unparsed content remaining: %q\n", path, leftover)
	}
	return c, nil
}

func fmtFile(ctx *cli.Context) error {
	c, err := load(ctx)

	if err != nil {
		return err
	}

	if ctx.Bool("dry-run") {
		return nil
	}

	out := ctx.String("output")

	if ctx.Bool("write") {
		out = ctx.Args().First()
	}

	if out == "" {
		return blk.Emit(os.Stdout, c)
	}

	f, err := os.Create(out)

	if err != nil {
		return err
	}

	if err := blk.Emit(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dumpFile(ctx *cli.Context) error {
	c, err := load(ctx)

	if err != nil {
		return err
	}

	repr.Println(c, repr.Indent("    "), repr.OmitEmpty(true))
	return nil
}
