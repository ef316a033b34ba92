// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

// WriteTOML writes the given config object to the given writer
// in TOML format, with the fields in declaration order.
func WriteTOML(w io.Writer, cfg any) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}
