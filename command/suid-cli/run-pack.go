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

func runPack(c *cli.Context) error {
	block := c.Int64("block")
	id := c.Uint("id")
	if id >= suid.IDSize {
		return fmt.Errorf("id out of range 0..%d: %d", suid.IDSize-1, id)
	}
	fmt.Fprintf(c.App.Writer, "%s\n", suid.New(block, byte(id)))
	return nil
}
