// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

const EnvPinboatDebug = "PINBOAT_DEBUG"

// Silent drops all records. Used by tests.
const Silent log.Level = log.FatalLevel + 1

var (
	globalLevel = log.WarnLevel

	loggers = map[string]*log.Logger{}

	logLevelStyles = map[log.Level]lipgloss.Style{
		log.DebugLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.DebugLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("63")),
		log.InfoLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.InfoLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("36")),
		log.WarnLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.WarnLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("178")),
		log.ErrorLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.ErrorLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("204")),
		log.FatalLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.FatalLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("134")),
	}
)

// GetLogger returns the logger for the given unit, creating it on first
// use. All loggers write to stderr so the command output stays pipeable.
func GetLogger(unit string) *log.Logger {
	if lg, ok := loggers[unit]; ok {
		return lg
	}

	lg := log.New(os.Stderr)
	if len(unit) > 0 {
		lg.SetPrefix(fmt.Sprintf("[%.4s]", strings.ToUpper(unit)))
	}

	styles := log.DefaultStyles()
	styles.Levels = logLevelStyles
	lg.SetStyles(styles)
	lg.SetLevel(globalLevel)
	if globalLevel >= Silent {
		lg.SetOutput(io.Discard)
	}

	loggers[unit] = lg
	return lg
}

// SetLevel sets the level on every registered logger and on loggers created
// afterwards.
func SetLevel(lvl log.Level) {
	globalLevel = lvl
	for _, lg := range loggers {
		lg.SetLevel(lvl)
		if lvl >= Silent {
			lg.SetOutput(io.Discard)
		} else {
			lg.SetOutput(os.Stderr)
		}
	}
}

func init() {
	if env := os.Getenv(EnvPinboatDebug); env != "" {
		if lvl, err := log.ParseLevel(env); err == nil {
			SetLevel(lvl)
		} else {
			SetLevel(log.DebugLevel)
		}
	}
}
