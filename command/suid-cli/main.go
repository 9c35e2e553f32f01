// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "suid-cli"
	app.Usage = "encode, decode and inspect scoped unique identifiers"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "convert decimal values to base-36 suid strings",
			ArgsUsage: "VALUE...",
			Action:    runEncode,
		},
		{
			Name:      "decode",
			Usage:     "convert base-36 suid strings to decimal values",
			ArgsUsage: "SUID...",
			Action:    runDecode,
		},
		{
			Name:      "pack",
			Usage:     "pack a block number and an id into a suid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*block number `BLOCK`",
				},
				cli.UintFlag{
					Name:  "id, i",
					Value: 0,
					Usage: " id number 0..15 `ID`",
				},
			},
			Action: runPack,
		},
		{
			Name:      "split",
			Usage:     "show the value, block and id fields of each suid",
			ArgsUsage: "SUID...",
			Action:    runSplit,
		},
		{
			Name:      "check",
			Usage:     "report whether each argument looks like a valid suid string",
			ArgsUsage: "STRING...",
			Action:    runCheck,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
