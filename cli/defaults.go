// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the config plumbing for command line tools:
// default values from struct tags, flag parsing and TOML output.
package cli

import (
	"fmt"

	"cogentcore.org/spintri/base/reflectx"
)

// SetFromDefaults resets the fields of the given config object to
// their `default:` struct tag values, so that flags start from them.
// cfg must be a pointer to a struct. A tag that does not parse as
// its field type is an error naming the config type.
func SetFromDefaults(cfg any) error {
	if err := reflectx.SetFromDefaultTags(cfg); err != nil {
		return fmt.Errorf("cli: defaults of %T: %w", cfg, err)
	}
	return nil
}
