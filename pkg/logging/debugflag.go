// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"

	log "github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// DebugFlag raises the log level to debug for all units. At debug level the
// parsed arguments and the outgoing payload are echoed to stderr.
var DebugFlag = &cli.BoolFlag{
	Name:    "debug",
	Aliases: []string{"d"},
	Usage:   "turn on debugging output",
	Sources: cli.EnvVars(EnvPinboatDebug),
	Action: func(_ context.Context, _ *cli.Command, val bool) error {
		if val {
			SetLevel(log.DebugLevel)
		}
		return nil
	},
}
