// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package suid - scoped unique identifiers
//
// A suid stores a 52-bit scoped unique id in a 64-bit integer.
// The bits are distributed as depicted below:
//
//	                    HIGH INT                                         LOW INT
//	__________________________________________________________________________________________
//	|                                           ||                                           |
//	| 0000 0000  0000 bbbb  bbbb bbbb  bbbb bbbb  bbbb bbbb  bbbb bbbb  bbbb bbbb  bbbb iiii |
//	|___________________________________________||___________________________________________|
//
//	  0 = 12 reserved bits
//	  b = 48 block bits
//	  i = 4 id bits
//
// The top 12 bits are reserved and always zero. The next 48 bits
// hold the block number, handed out by an external allocation
// service in non-overlapping ranges. The low 4 bits are id bits,
// filled in locally by the client that holds the block, so up to 16
// identifiers can be minted per block without further coordination.
//
// To keep suids short, human readable and pronounceable they are
// rendered as lowercase base-36 strings of 1 to 11 characters. That
// string is the canonical form whenever a suid crosses a
// serialization boundary; only at a database column does the raw
// integer take over (see NullSuid).
//
// This package allocates no block numbers itself and decides no
// sharding policy; it only defines the value type with its codec,
// comparison and validity operations.
package suid
