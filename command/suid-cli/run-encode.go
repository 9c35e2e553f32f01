// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/Download/suid-go/suid"
)

func runEncode(c *cli.Context) error {
	if 0 == c.NArg() {
		return fmt.Errorf("missing arguments: VALUE...")
	}
	for _, arg := range c.Args() {
		value, err := strconv.ParseInt(arg, 10, 64)
		if nil != err {
			return fmt.Errorf("invalid value: %q", arg)
		}
		fmt.Fprintf(c.App.Writer, "%s\n", suid.FromInt64(value))
	}
	return nil
}
