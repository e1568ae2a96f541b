// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"sort"

	"gopkg.in/check.v1"
)

type contigOrderSuite struct{}

var _ = check.Suite(&contigOrderSuite{})

func (s *contigOrderSuite) TestNumericBeforeNamed(c *check.C) {
	seqnames := []string{"chrX", "chr10", "chr2", "chrM", "chr1", "chrUn_KI270302v1", "chr22", "chrY"}
	sort.SliceStable(seqnames, func(i, j int) bool { return contigLess(seqnames[i], seqnames[j]) })
	c.Check(seqnames, check.DeepEquals, []string{"chr1", "chr2", "chr10", "chr22", "chrM", "chrUn_KI270302v1", "chrX", "chrY"})
}

func (s *contigOrderSuite) TestBarePrefixMix(c *check.C) {
	// "2" and "chr2" are the same chromosome number; ordering must
	// still be total and consistent with the numeric compare.
	c.Check(contigLess("2", "chr10"), check.Equals, true)
	c.Check(contigLess("chr10", "2"), check.Equals, false)
	c.Check(contigLess("chr9", "chr10"), check.Equals, true)
	c.Check(contigLess("chr10", "chr9"), check.Equals, false)
	c.Check(contigLess("chr22", "chrX"), check.Equals, true)
	c.Check(contigLess("chrX", "chr22"), check.Equals, false)
	c.Check(contigLess("chrM", "chrX"), check.Equals, true)
}

func (s *contigOrderSuite) TestStableUnderInputOrder(c *check.C) {
	want := []string{"chr1", "chr3", "chr11", "chrM", "chrX"}
	for trial := 0; trial < len(want); trial++ {
		shuffled := append([]string(nil), want[trial:]...)
		shuffled = append(shuffled, want[:trial]...)
		sort.SliceStable(shuffled, func(i, j int) bool { return contigLess(shuffled[i], shuffled[j]) })
		c.Check(shuffled, check.DeepEquals, want, check.Commentf("trial %d", trial))
	}
}
