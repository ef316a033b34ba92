// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flagger is implemented by config types that bind their
// fields to command line flags.
type Flagger interface {
	Flags(fs *pflag.FlagSet)
}

// Parse sets cfg from its `default:` tags and then from the given
// command line arguments (not including the program name).
// It returns [pflag.ErrHelp] if help was requested.
func Parse(cfg Flagger, appName string, args []string) error {
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SortFlags = false
	cfg.Flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments %q", appName, fs.Args())
	}
	return nil
}
