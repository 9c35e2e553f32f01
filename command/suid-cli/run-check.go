// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/Download/suid-go/suid"
)

func runCheck(c *cli.Context) error {
	if 0 == c.NArg() {
		return fmt.Errorf("missing arguments: STRING...")
	}
	invalid := 0
	for _, arg := range c.Args() {
		verdict := "ok"
		if !suid.LooksValid(arg) {
			verdict = "invalid"
			invalid += 1
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", arg, verdict)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d strings do not look valid", invalid, c.NArg())
	}
	return nil
}
