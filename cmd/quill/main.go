// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quill renders a gallery of example charts to SVG and PNG files.
package main

import (
	"os"

	"cogentcore.org/quill/base/errors"
	"cogentcore.org/quill/cmd/quill/cmd"
)

func main() {
	if errors.Log(cmd.NewRoot().Execute()) != nil {
		os.Exit(1)
	}
}
