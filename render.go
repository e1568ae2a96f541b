// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bandColors alternate from one contig to the next so adjacent
// chromosomes are distinguishable without per-chromosome legends.
var bandColors = []color.RGBA{
	{R: 69, G: 117, B: 180, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
}

// renderManhattan draws rows (already in final order; nothing here
// re-sorts or re-buckets) with contigs laid end to end on the x axis
// and -log10(p) on the y axis. A threshold > 0 adds a horizontal
// significance line at y=threshold.
func renderManhattan(fnm string, rows []pvalueRow, threshold float64) error {
	p := plot.New()
	p.Y.Label.Text = "-log10(p)"
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	// Each contig's points start where the previous contig's span
	// ended, so x is a genome-wide coordinate.
	seqnames := distinctSeqnames(rows)
	span := map[string]float64{}
	for _, row := range rows {
		if float64(row.pos) > span[row.seqname] {
			span[row.seqname] = float64(row.pos)
		}
	}
	var ticks []plot.Tick
	var logp []float64
	base := 0.0
	for ci, seqname := range seqnames {
		xys := plotter.XYs{}
		for _, row := range rowsForSeqname(rows, seqname) {
			y := -math.Log10(row.p)
			xys = append(xys, plotter.XY{X: base + float64(row.pos), Y: y})
			logp = append(logp, y)
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Color = bandColors[ci%len(bandColors)]
		p.Add(s)
		ticks = append(ticks, plot.Tick{Value: base + span[seqname]/2, Label: seqname})
		base += span[seqname]
	}
	if base == 0 {
		base = 1
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = 0, base
	p.Y.Min = 0
	if len(logp) > 0 {
		p.Y.Max = floats.Max(logp) + 1
	}
	if threshold > 0 {
		if threshold+1 > p.Y.Max {
			p.Y.Max = threshold + 1
		}
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: threshold}, {X: base, Y: threshold}})
		if err != nil {
			return err
		}
		line.LineStyle.Color = colorFirebrick
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(line)
	}
	return p.Save(12*vg.Inch, 4*vg.Inch, fnm)
}

type scatterPoint struct {
	x, y    float64
	c       color.RGBA
	flagged bool
}

// renderScatter draws points in the order given (the caller decides
// z-order). Flagged points render as crosses, the rest as filled
// circles.
func renderScatter(fnm string, points []scatterPoint, xLabel, yLabel string) error {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	// Consecutive points sharing a marker shape go into one
	// scatter, so plotting order matches input order exactly.
	for start := 0; start < len(points); {
		end := start + 1
		for end < len(points) && points[end].flagged == points[start].flagged {
			end++
		}
		batch := points[start:end]
		xys := make(plotter.XYs, len(batch))
		for i, pt := range batch {
			xys[i] = plotter.XY{X: pt.x, Y: pt.y}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		base := draw.GlyphStyle{Radius: vg.Points(4)}
		if batch[0].flagged {
			base.Shape = draw.CrossGlyph{}
		} else {
			base.Shape = draw.CircleGlyph{}
		}
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			gs := base
			gs.Color = color.RGBA{R: batch[i].c.R, G: batch[i].c.G, B: batch[i].c.B, A: 128}
			return gs
		}
		p.Add(s)
		start = end
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, fnm)
}
