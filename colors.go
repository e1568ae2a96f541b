// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"image/color"
)

var (
	colorFirebrick  = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	colorGreen      = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorCoral      = color.RGBA{R: 255, G: 127, B: 80, A: 255}
	colorRoyalblue  = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	colorBlueviolet = color.RGBA{R: 138, G: 43, B: 226, A: 255}
	colorNavy       = color.RGBA{R: 0, G: 0, B: 128, A: 255}

	// unknownColor marks samples whose label is missing or not in
	// labelColors. It is deliberately not a value of labelColors.
	unknownColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// labelColors maps 1000 Genomes population codes (and the equivalent
// numeric superpopulation codes some phenotype files use) to display
// colors, one color per superpopulation. Static configuration; never
// modified after init.
var labelColors = map[string]color.RGBA{
	"PUR": colorFirebrick,
	"CLM": colorFirebrick,
	"MXL": colorFirebrick,
	"PEL": colorFirebrick,
	"1":   colorFirebrick,

	"TSI": colorGreen,
	"IBS": colorGreen,
	"CEU": colorGreen,
	"GBR": colorGreen,
	"FIN": colorGreen,
	"5":   colorGreen,

	"LWK": colorCoral,
	"MSL": colorCoral,
	"GWD": colorCoral,
	"YRI": colorCoral,
	"ESN": colorCoral,
	"ACB": colorCoral,
	"ASW": colorCoral,
	"4":   colorCoral,

	"KHV": colorRoyalblue,
	"CDX": colorRoyalblue,
	"CHS": colorRoyalblue,
	"CHB": colorRoyalblue,
	"JPT": colorRoyalblue,
	"2":   colorRoyalblue,

	"STU": colorBlueviolet,
	"ITU": colorBlueviolet,
	"BEB": colorBlueviolet,
	"GIH": colorBlueviolet,
	"PJL": colorBlueviolet,

	"3": colorNavy,
}

func labelColor(label string) color.RGBA {
	if c, ok := labelColors[label]; ok {
		return c
	}
	return unknownColor
}

// colorsForSamples returns one color per sample, index-aligned with
// samples: the palette color for the sample's label, or unknownColor.
func colorsForSamples(samples []string, labels map[string]string) []color.RGBA {
	colors := make([]color.RGBA, len(samples))
	for i, sampleid := range samples {
		colors[i] = labelColor(labels[sampleid])
	}
	return colors
}
