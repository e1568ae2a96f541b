// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"os"

	"gopkg.in/check.v1"
)

type samplesSuite struct{}

var _ = check.Suite(&samplesSuite{})

func (s *samplesSuite) TestLoadSampleList(c *check.C) {
	fnm := c.MkDir() + "/samples.csv"
	err := os.WriteFile(fnm, []byte(`Index,SampleID,Training/Validation
0,HG00100,1
1,HG001005,0
2,HG00100,1
`), 0644)
	c.Assert(err, check.IsNil)
	samples, err := loadSampleList(fnm)
	c.Assert(err, check.IsNil)
	// order preserved, duplicates preserved, header dropped
	c.Check(samples, check.DeepEquals, []string{"HG00100", "HG001005", "HG00100"})
}

func (s *samplesSuite) TestSubstringMatchHitsAllContainingSamples(c *check.C) {
	// "HG00100" is a substring of "HG001005", so one phenotype
	// record is expected to label both samples.
	fnm := c.MkDir() + "/phenotype.csv"
	err := os.WriteFile(fnm, []byte("HG00100,GBR,0\n"), 0644)
	c.Assert(err, check.IsNil)
	samples := []string{"HG00100", "HG001005", "NA12878"}
	labels, flagged, err := loadPhenotypes(fnm, samples, 1, 2)
	c.Assert(err, check.IsNil)
	c.Check(labels, check.DeepEquals, map[string]string{
		"HG00100":  "GBR",
		"HG001005": "GBR",
	})
	c.Check(flagged["HG00100"], check.Equals, false)
	_, ok := labels["NA12878"]
	c.Check(ok, check.Equals, false)
}

func (s *samplesSuite) TestLastMatchWins(c *check.C) {
	fnm := c.MkDir() + "/phenotype.csv"
	err := os.WriteFile(fnm, []byte(`HG00100,GBR,1
HG00100,FIN,0
`), 0644)
	c.Assert(err, check.IsNil)
	labels, flagged, err := loadPhenotypes(fnm, []string{"HG00100"}, 1, 2)
	c.Assert(err, check.IsNil)
	c.Check(labels["HG00100"], check.Equals, "FIN")
	// the second record also overwrites the flag
	c.Check(flagged["HG00100"], check.Equals, false)
}

func (s *samplesSuite) TestDelimiterSniffing(c *check.C) {
	tmpdir := c.MkDir()
	err := os.WriteFile(tmpdir+"/a.tsv", []byte("HG00100\tGBR\t1\nNA12878\tYRI\t0\n"), 0644)
	c.Assert(err, check.IsNil)
	err = os.WriteFile(tmpdir+"/b.csv", []byte("NA12878,LWK,2\n"), 0644)
	c.Assert(err, check.IsNil)
	samples := []string{"HG00100", "NA12878"}
	labels, flagged, err := loadPhenotypes(tmpdir, samples, 1, 2)
	c.Assert(err, check.IsNil)
	c.Check(labels["HG00100"], check.Equals, "GBR")
	c.Check(flagged["HG00100"], check.Equals, true)
	// b.csv sorts after a.tsv and overrides NA12878
	c.Check(labels["NA12878"], check.Equals, "LWK")
	c.Check(flagged["NA12878"], check.Equals, true)
}

func (s *samplesSuite) TestNoSecondCategory(c *check.C) {
	fnm := c.MkDir() + "/phenotype.csv"
	err := os.WriteFile(fnm, []byte("HG00100,GBR\n"), 0644)
	c.Assert(err, check.IsNil)
	labels, flagged, err := loadPhenotypes(fnm, []string{"HG00100"}, 1, -1)
	c.Assert(err, check.IsNil)
	c.Check(labels["HG00100"], check.Equals, "GBR")
	c.Check(flagged, check.HasLen, 0)
}
