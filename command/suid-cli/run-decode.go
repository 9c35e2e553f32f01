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

func runDecode(c *cli.Context) error {
	if 0 == c.NArg() {
		return fmt.Errorf("missing arguments: SUID...")
	}
	ids, err := suid.FromStrings(c.Args())
	if nil != err {
		return fmt.Errorf("decode: %s", err)
	}
	for _, value := range suid.ToInt64s(ids) {
		fmt.Fprintf(c.App.Writer, "%d\n", value)
	}
	return nil
}
