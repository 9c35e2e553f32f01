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

func runSplit(c *cli.Context) error {
	if 0 == c.NArg() {
		return fmt.Errorf("missing arguments: SUID...")
	}
	for _, arg := range c.Args() {
		id, err := suid.FromString(arg)
		if nil != err {
			return fmt.Errorf("split: %q: %s", arg, err)
		}
		fmt.Fprintf(c.App.Writer, "suid: %s  value: %d  block: %d  id: %d\n",
			id, id.Int64(), id.Block(), id.ID())
	}
	return nil
}
