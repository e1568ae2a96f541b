// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/pgzip"
	log "github.com/sirupsen/logrus"
)

type manhattanPlot struct{}

// pvalueRow is one plotted point: one p-value for one tile variant,
// placed at its tag's reference coordinate.
type pvalueRow struct {
	tag     tagID
	seqname string
	pos     int
	p       float64
}

func (cmd *manhattanPlot) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	inputDirectory := flags.String("i", ".", "input `directory` (output of slice-numpy -single-onehot)")
	outputFilename := flags.String("o", "", "output `filename` (e.g., './plot.png')")
	csvOutputFilename := flags.String("csv-output", "", "csv output `filename` (e.g., './tile-locations-pvalues.csv'; .gz for gzip)")
	csvOutputThreshold := flags.Float64("csv-output-threshold", 0, "logpvalue threshold for csv output (0 for none)")
	perChromosome := flags.Bool("per-chromosome", false, "also write one plot per chromosome, named by inserting the chromosome before the output filename extension")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 0 {
		err = fmt.Errorf("errant command line arguments after parsed flags: %v", flags.Args())
		return 2
	}
	if *outputFilename == "" {
		err = errors.New("must specify -o filename.png (or try -help)")
		return 2
	}

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	pvalue, err := loadTagPvalues(*inputDirectory)
	if err != nil {
		return 1
	}
	tilepos, err := loadTilePos(*inputDirectory)
	if err != nil {
		return 1
	}
	rows := buildPvalueTable(tilepos, pvalue)
	log.Infof("plotting %d points", len(rows))

	err = writePvalueCSV(*csvOutputFilename, rows, *csvOutputThreshold)
	if err != nil {
		return 1
	}

	err = renderManhattan(*outputFilename, rows, *csvOutputThreshold)
	if err != nil {
		return 1
	}
	if *perChromosome {
		// Partitions are independent: keep going after a
		// failed one, then report everything that failed.
		var failed []string
		for _, seqname := range distinctSeqnames(rows) {
			fnm := partitionFilename(*outputFilename, seqname)
			if err := renderManhattan(fnm, rowsForSeqname(rows, seqname), *csvOutputThreshold); err != nil {
				log.Errorf("%s: %s", fnm, err)
				failed = append(failed, seqname)
			}
		}
		if len(failed) > 0 {
			err = fmt.Errorf("failed to plot %s", strings.Join(failed, ", "))
			return 1
		}
	}
	return 0
}

// buildPvalueTable joins coordinates with p-values into the plotted
// row sequence: contigs ordered by contigLess, positions ascending
// within a contig, tags ascending at equal positions, and each tag's
// p-values in onehot column order. A tag missing from either side of
// the join contributes no rows.
func buildPvalueTable(tilepos map[tagID]tilePos, pvalue map[tagID][]float64) []pvalueRow {
	tags := make([]tagID, 0, len(tilepos))
	for tag := range tilepos {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		pi, pj := tilepos[tags[i]], tilepos[tags[j]]
		if pi.seqname != pj.seqname {
			return contigLess(pi.seqname, pj.seqname)
		}
		if pi.pos != pj.pos {
			return pi.pos < pj.pos
		}
		return tags[i] < tags[j]
	})
	var rows []pvalueRow
	for _, tag := range tags {
		chrpos := tilepos[tag]
		for _, p := range pvalue[tag] {
			rows = append(rows, pvalueRow{tag: tag, seqname: chrpos.seqname, pos: chrpos.pos, p: p})
		}
	}
	return rows
}

// writePvalueCSV writes one "tag,seqname,pos,p" line for each row
// whose p-value is below 10^-threshold. An empty filename or a
// threshold <= 0 means the export was not requested.
func writePvalueCSV(fnm string, rows []pvalueRow, threshold float64) error {
	if fnm == "" || threshold <= 0 {
		return nil
	}
	cutoff := math.Pow(10, -threshold)
	f, err := os.OpenFile(fnm, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0777)
	if err != nil {
		return err
	}
	defer f.Close()
	var out io.Writer = f
	var gzw *pgzip.Writer
	if strings.HasSuffix(fnm, ".gz") {
		gzw = pgzip.NewWriter(f)
		out = gzw
	}
	bufw := bufio.NewWriter(out)
	n := 0
	for _, row := range rows {
		if row.p < cutoff {
			_, err = fmt.Fprintf(bufw, "%d,%s,%d,%v\n", row.tag, row.seqname, row.pos, row.p)
			if err != nil {
				return err
			}
			n++
		}
	}
	err = bufw.Flush()
	if err != nil {
		return err
	}
	if gzw != nil {
		err = gzw.Close()
		if err != nil {
			return err
		}
	}
	log.Infof("%s: %d rows with p < %g", fnm, n, cutoff)
	return f.Close()
}

// distinctSeqnames returns the contigs present in rows, in the order
// they first appear (i.e., contigLess order, rows being sorted).
func distinctSeqnames(rows []pvalueRow) []string {
	var seqnames []string
	for _, row := range rows {
		if len(seqnames) == 0 || seqnames[len(seqnames)-1] != row.seqname {
			seqnames = append(seqnames, row.seqname)
		}
	}
	return seqnames
}

func rowsForSeqname(rows []pvalueRow, seqname string) []pvalueRow {
	var out []pvalueRow
	for _, row := range rows {
		if row.seqname == seqname {
			out = append(out, row)
		}
	}
	return out
}

// partitionFilename names a per-chromosome output artifact by
// inserting the chromosome before the extension: "plot.png", "chr2"
// => "plot.chr2.png".
func partitionFilename(base, seqname string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + seqname + ext
}
