// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pinboat/pinboat"
	"github.com/pinboat/pinboat/internal/config"
	"github.com/pinboat/pinboat/pkg/build"
	"github.com/pinboat/pinboat/pkg/logging"
	"github.com/pinboat/pinboat/pkg/pinboard"
)

var log = logging.GetLogger("")

// auth token loaded in the Before hook, consumed by the action
var authToken string

func main() {
	app := cli.Command{}
	app.Version = build.Version()

	app.Name = "pinboat"
	app.Usage = "pin newsboat articles to pinboard.in"
	app.Description = `
pinboat posts a bookmark to pinboard.in with a single API call. It reads the
URL, title and an optional description from the command line, which makes it
suitable as a newsboat/newsbeuter bookmark-cmd hook:

  bookmark-cmd "pinboat -t rss"

The auth token is read from a local config file (default ~/.pinboard-auth)
holding a single auth_token=USER:TOKEN line. The file must not be readable
by group or others.`
	app.UsageText = "pinboat [OPTIONS] URL TITLE [DESCRIPTION]"
	app.ArgsUsage = "URL TITLE [DESCRIPTION]"
	app.CustomRootCommandHelpTemplate = AppHelpTemplate

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   config.DefaultConfigFile,
			Usage:   "path to config `FILE`",
		},
		&cli.StringSliceFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "tag, multiple allowed",
		},
		&cli.BoolFlag{
			Name:    "replace",
			Aliases: []string{"r"},
			Usage:   "replace an existing URL",
		},
		&cli.BoolFlag{
			Name:    "shared",
			Aliases: []string{"s"},
			Usage:   "share the URL publicly",
		},
		&cli.BoolFlag{
			Name:    "later",
			Aliases: []string{"l"},
			Usage:   "mark to read later",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: pinboard.DefaultTimeout,
			Usage: "request timeout",
		},
		logging.DebugFlag,
	}

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		token, err := config.LoadToken(c.String("config"))
		if err != nil {
			return ctx, err
		}
		authToken = token

		return ctx, nil
	}

	app.Action = pinBookmark

	app.ExitErrHandler = func(ctx context.Context, cli *cli.Command, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func pinBookmark(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return errors.New("missing URL and TITLE arguments")
	}

	bk := &pinboat.Bookmark{
		URL:     c.Args().Get(0),
		Title:   c.Args().Get(1),
		Desc:    c.Args().Get(2),
		Tags:    c.StringSlice("tag"),
		Replace: c.Bool("replace"),
		Shared:  c.Bool("shared"),
		ToRead:  c.Bool("later"),
	}

	log.Debug("pinning",
		"url", bk.URL,
		"title", bk.Title,
		"desc", bk.Desc,
		"tags", bk.Tags,
		"replace", bk.Replace,
		"shared", bk.Shared,
		"toread", bk.ToRead,
	)

	client := pinboard.NewClient(authToken, pinboard.WithTimeout(c.Duration("timeout")))

	// fire and forget: a failed API call is reported but does not change
	// the exit status
	if err := client.Add(ctx, bk); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
	}

	return nil
}
