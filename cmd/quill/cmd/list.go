// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// List writes the name, title and description of every example to w.
func List(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	title := cases.Title(language.English)
	for _, ex := range Examples {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.Name, title.String(strings.ReplaceAll(ex.Name, "-", " ")), ex.Description)
	}
	return tw.Flush()
}
