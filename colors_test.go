// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"image/color"

	"gopkg.in/check.v1"
)

type colorsSuite struct{}

var _ = check.Suite(&colorsSuite{})

func (s *colorsSuite) TestFallbackColor(c *check.C) {
	samples := []string{"s1", "s2", "s3", "s4"}
	labels := map[string]string{
		"s1": "GBR",
		"s2": "NOPE", // not a known population
		// s3 has no label at all
		"s4": "4",
	}
	colors := colorsForSamples(samples, labels)
	c.Check(colors, check.DeepEquals, []color.RGBA{
		colorGreen,
		unknownColor,
		unknownColor,
		colorCoral,
	})
}

func (s *colorsSuite) TestFallbackIsNotAPaletteColor(c *check.C) {
	for label, rgba := range labelColors {
		c.Check(rgba == unknownColor, check.Equals, false, check.Commentf("label %s", label))
	}
}
