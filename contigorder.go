// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"strconv"
	"strings"
)

// contigLess is the ordering used to lay out contigs left to right.
// Numeric chromosome names (with or without a "chr" prefix) compare
// numerically and sort before everything else; non-numeric contigs
// (chrX, chrM, unplaced scaffolds) follow in plain string order.
//
// All output ordering goes through this one comparator so the layout
// policy lives in exactly one place.
func contigLess(a, b string) bool {
	an, aok := contigNumber(a)
	bn, bok := contigNumber(b)
	switch {
	case aok && bok:
		return an < bn
	case aok != bok:
		return aok
	default:
		return a < b
	}
}

func contigNumber(seqname string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(seqname, "chr"))
	return n, err == nil
}
