// SPDX-License-Identifier: MIT

// Package event holds the process-wide logger of the lvsci command.
package event

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Library packages never log; only the command layer does.
var Log = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		DisableSorting:   false,
		QuoteEmptyFields: true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.InfoLevel,
}

// SetLevel parses a level name such as "debug" and applies it to Log.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)

	return nil
}
